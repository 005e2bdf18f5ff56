package sensor

// Source produces one temperature reading per call, in degrees
// celsius. A failed read is reported once and never retried here,
// the control loop decides what a missing reading means.
type Source interface {
	Read() (float64, error)
}
