package state

import "time"

// State is one control cycle's telemetry snapshot. Temperature is
// omitted while the sensor is unreadable.
type State struct {
	Time         time.Time `json:"time"`
	Temperature  *float64  `json:"temperature,omitempty"`
	Band         int       `json:"band"`
	SpeedPercent int       `json:"speedPercent"`
	SensorOK     bool      `json:"sensorOk"`
}
