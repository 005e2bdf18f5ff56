package dummy

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Fan records applied bands instead of touching hardware. Repeated
// bands are dropped like the real actuator drops repeated writes.
type Fan struct {
	bands []int
	err   error
	sync.Mutex
}

func New() *Fan {
	return &Fan{}
}

func (f *Fan) Set(band int) error {
	f.Lock()
	defer f.Unlock()
	if f.err != nil {
		return f.err
	}
	if len(f.bands) > 0 && f.bands[len(f.bands)-1] == band {
		return nil
	}
	logrus.Debug("dummy: Set: ", band)
	f.bands = append(f.bands, band)
	return nil
}

func (f *Fan) SetError(err error) {
	f.Lock()
	f.err = err
	f.Unlock()
}

// Bands returns every band applied so far, duplicates removed.
func (f *Fan) Bands() []int {
	f.Lock()
	defer f.Unlock()
	bands := make([]int, len(f.bands))
	copy(bands, f.bands)
	return bands
}

// Last returns the most recent band, or -1 before the first Set.
func (f *Fan) Last() int {
	f.Lock()
	defer f.Unlock()
	if len(f.bands) == 0 {
		return -1
	}
	return f.bands[len(f.bands)-1]
}
