package config

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	minTemperaturePoint = 30
	minSpeedPercent     = 0
	maxSpeedPercent     = 100
	minIntervalS        = 4
	maxIntervalS        = 60
)

type CliConfig struct {
	// Degrees a reading must fall below a band's entry threshold
	// before the band is left downward.
	Hysteresis int `default:"3"`

	// Ascending celsius boundaries for bands 1..4.
	TemperaturePoint1 int `default:"40"`
	TemperaturePoint2 int `default:"60"`
	TemperaturePoint3 int `default:"65"`
	TemperaturePoint4 int `default:"70"`

	// Percent of full speed for each band.
	BandSpeed0 int `default:"0"`
	BandSpeed1 int `default:"25"`
	BandSpeed2 int `default:"50"`
	BandSpeed3 int `default:"75"`
	BandSpeed4 int `default:"100"`

	MeasurementIntervalS int `default:"8"`

	// The CM4 IO board fan controller sits on port I2C10,
	// 7-bit address 0x2f, duty register 0x30.
	Device      string `default:"/dev/i2c-10"`
	FanAddress  int    `default:"47"`
	FanRegister int    `default:"48"`

	// Sensor is "vcgencmd" or the path of a plain-text milli-celsius
	// file such as /sys/class/thermal/thermal_zone0/temp.
	Sensor string `default:"vcgencmd"`

	// Telemetry broker listen address, for example ":1883".
	// Empty disables the broker.
	MQTTAddress string `default:""`

	LogLevel string `default:"info"`
}

// Normalize corrects out-of-range settings in place, warning about
// every correction. A corrected configuration is never an error.
func (c *CliConfig) Normalize() {
	points := []*int{
		&c.TemperaturePoint1,
		&c.TemperaturePoint2,
		&c.TemperaturePoint3,
		&c.TemperaturePoint4,
	}
	if *points[0] < minTemperaturePoint {
		logrus.Warnf("TemperaturePoint1 too low (%d°) - setting to %d", *points[0], minTemperaturePoint)
		*points[0] = minTemperaturePoint
	}
	for i := 1; i < len(points); i++ {
		if *points[i] < *points[i-1] {
			logrus.Warnf("TemperaturePoint%d too low (%d°) - setting to %d", i+1, *points[i], *points[i-1])
			*points[i] = *points[i-1]
		}
	}

	speeds := []*int{&c.BandSpeed0, &c.BandSpeed1, &c.BandSpeed2, &c.BandSpeed3, &c.BandSpeed4}
	if *speeds[0] < minSpeedPercent {
		logrus.Warnf("BandSpeed0 too low (%d%%) - setting to %d", *speeds[0], minSpeedPercent)
		*speeds[0] = minSpeedPercent
	}
	for i := range speeds {
		if *speeds[i] > maxSpeedPercent {
			logrus.Warnf("BandSpeed%d too high (%d%%) - setting to %d", i, *speeds[i], maxSpeedPercent)
			*speeds[i] = maxSpeedPercent
		}
	}
	for i := 1; i < len(speeds); i++ {
		if *speeds[i] < *speeds[i-1] {
			logrus.Warnf("BandSpeed%d too low (%d%%) - setting to %d", i, *speeds[i], *speeds[i-1])
			*speeds[i] = *speeds[i-1]
		}
	}

	// hysteresis only makes sense well inside the narrowest band, and
	// a negative margin would raise the falling point above the entry
	// threshold.
	if c.Hysteresis < 0 {
		logrus.Warnf("Hysteresis negative (%d°) - setting to 0", c.Hysteresis)
		c.Hysteresis = 0
	}
	smallest := c.TemperaturePoint2 - c.TemperaturePoint1
	if gap := c.TemperaturePoint3 - c.TemperaturePoint2; gap < smallest {
		smallest = gap
	}
	if gap := c.TemperaturePoint4 - c.TemperaturePoint3; gap < smallest {
		smallest = gap
	}
	if c.Hysteresis > smallest-2 {
		chosen := 0
		if smallest >= 5 {
			chosen = 2
		}
		logrus.Warnf("Hysteresis too high (%d°), and your smallest band is %d° - setting to %d", c.Hysteresis, smallest, chosen)
		c.Hysteresis = chosen
	}

	if c.MeasurementIntervalS < minIntervalS {
		logrus.Warnf("MeasurementIntervalS too low (%d seconds) - setting to %d", c.MeasurementIntervalS, minIntervalS)
		c.MeasurementIntervalS = minIntervalS
	} else if c.MeasurementIntervalS > maxIntervalS {
		logrus.Warnf("MeasurementIntervalS too high (%d seconds) - setting to %d", c.MeasurementIntervalS, maxIntervalS)
		c.MeasurementIntervalS = maxIntervalS
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		logrus.Warnf("LogLevel not recognised (%s) - setting to info", c.LogLevel)
		c.LogLevel = "info"
	}
}

func (c *CliConfig) Interval() time.Duration {
	return time.Duration(c.MeasurementIntervalS) * time.Second
}

func (c *CliConfig) Points() [4]float64 {
	return [4]float64{
		float64(c.TemperaturePoint1),
		float64(c.TemperaturePoint2),
		float64(c.TemperaturePoint3),
		float64(c.TemperaturePoint4),
	}
}

func (c *CliConfig) Speeds() [5]int {
	return [5]int{c.BandSpeed0, c.BandSpeed1, c.BandSpeed2, c.BandSpeed3, c.BandSpeed4}
}
