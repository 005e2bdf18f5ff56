package fan

import "math"

// Fan is the actuator side of the control loop. Implementations must
// treat a repeated band as a no-op so a steady temperature causes no
// bus traffic.
type Fan interface {
	Set(band int) error
}

// Duty converts a percent of full speed to the controller's native
// 0-255 duty value. Values outside 0-100 saturate, a byte conversion
// must never wrap the duty downward.
func Duty(percent int) byte {
	if percent >= 100 {
		return 255
	}
	if percent <= 0 {
		return 0
	}
	return byte(math.Round(float64(percent) * 255.0 / 100.0))
}
