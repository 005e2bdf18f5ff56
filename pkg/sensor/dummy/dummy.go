package dummy

import "sync"

// Source returns a settable temperature, or a settable error.
type Source struct {
	value float64
	err   error
	sync.Mutex
}

func New(value float64) *Source {
	return &Source{value: value}
}

func (s *Source) Read() (float64, error) {
	s.Lock()
	defer s.Unlock()
	if s.err != nil {
		return 0, s.err
	}
	return s.value, nil
}

func (s *Source) Set(value float64) {
	s.Lock()
	s.value = value
	s.err = nil
	s.Unlock()
}

func (s *Source) SetError(err error) {
	s.Lock()
	s.err = err
	s.Unlock()
}
