package alarm

import "sync"

// ActiveAlarms deduplicates recurring fault conditions so a sensor
// that stays broken is reported once, not every cycle.
type ActiveAlarms struct {
	active map[string]bool
	sync.Mutex
}

// Raise marks the alarm active and returns true if it was not already.
func (a *ActiveAlarms) Raise(alarm string) bool {
	a.Lock()
	defer a.Unlock()
	if a.active[alarm] {
		return false
	}
	if a.active == nil {
		a.active = make(map[string]bool)
	}
	a.active[alarm] = true
	return true
}

// Clear removes the alarm and returns true if it was active.
func (a *ActiveAlarms) Clear(alarm string) bool {
	a.Lock()
	defer a.Unlock()
	if !a.active[alarm] {
		return false
	}
	delete(a.active, alarm)
	return true
}
