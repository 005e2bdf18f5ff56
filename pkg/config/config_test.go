package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func defaults() *CliConfig {
	return &CliConfig{
		Hysteresis:           3,
		TemperaturePoint1:    40,
		TemperaturePoint2:    60,
		TemperaturePoint3:    65,
		TemperaturePoint4:    70,
		BandSpeed1:           25,
		BandSpeed2:           50,
		BandSpeed3:           75,
		BandSpeed4:           100,
		MeasurementIntervalS: 8,
		LogLevel:             "info",
	}
}

func TestNormalizeKeepsDefaults(t *testing.T) {
	c := defaults()
	c.Normalize()
	assert.Equal(t, [4]float64{40, 60, 65, 70}, c.Points())
	assert.Equal(t, [5]int{0, 25, 50, 75, 100}, c.Speeds())
	assert.Equal(t, 3, c.Hysteresis)
	assert.Equal(t, 8*time.Second, c.Interval())
	assert.Equal(t, "info", c.LogLevel)
}

func TestNormalizeFloorsFirstPoint(t *testing.T) {
	c := defaults()
	c.TemperaturePoint1 = 10
	c.Normalize()
	assert.Equal(t, 30, c.TemperaturePoint1)
}

func TestNormalizeOrdersPoints(t *testing.T) {
	c := defaults()
	c.TemperaturePoint3 = 50
	c.Normalize()
	// raised to its predecessor, never reordered.
	assert.Equal(t, [4]float64{40, 60, 60, 70}, c.Points())
}

func TestNormalizeOrdersSpeeds(t *testing.T) {
	c := defaults()
	c.BandSpeed0 = -5
	c.BandSpeed2 = 10
	c.Normalize()
	assert.Equal(t, [5]int{0, 25, 25, 75, 100}, c.Speeds())
}

func TestNormalizeCapsSpeeds(t *testing.T) {
	// an overshooting speed must clamp to full, not wrap the duty byte.
	c := defaults()
	c.BandSpeed4 = 150
	c.Normalize()
	assert.Equal(t, [5]int{0, 25, 50, 75, 100}, c.Speeds())

	c = defaults()
	c.BandSpeed2 = 150
	c.Normalize()
	assert.Equal(t, [5]int{0, 25, 100, 100, 100}, c.Speeds())
}

func TestNormalizeFloorsNegativeHysteresis(t *testing.T) {
	c := defaults()
	c.Hysteresis = -5
	c.Normalize()
	assert.Equal(t, 0, c.Hysteresis)
}

func TestNormalizeClampsHysteresis(t *testing.T) {
	c := defaults()
	c.Hysteresis = 7
	c.Normalize()
	// smallest gap is 5 (65..70), wide enough for the fallback of 2.
	assert.Equal(t, 2, c.Hysteresis)
}

func TestNormalizeDisablesHysteresisWhenBandsAreNarrow(t *testing.T) {
	c := defaults()
	c.TemperaturePoint2 = 42
	c.Normalize()
	assert.Equal(t, 0, c.Hysteresis)
}

func TestNormalizeHysteresisUsesNarrowestGap(t *testing.T) {
	// only the last gap is narrow, the first two are fine.
	c := defaults()
	c.TemperaturePoint4 = 68
	c.Hysteresis = 3
	c.Normalize()
	assert.Equal(t, 0, c.Hysteresis)
}

func TestNormalizeClampsInterval(t *testing.T) {
	c := defaults()
	c.MeasurementIntervalS = 1
	c.Normalize()
	assert.Equal(t, 4*time.Second, c.Interval())

	c = defaults()
	c.MeasurementIntervalS = 3600
	c.Normalize()
	assert.Equal(t, 60*time.Second, c.Interval())
}

func TestNormalizeFallsBackToInfoLevel(t *testing.T) {
	c := defaults()
	c.LogLevel = "chatty"
	c.Normalize()
	assert.Equal(t, "info", c.LogLevel)

	c = defaults()
	c.LogLevel = "debug"
	c.Normalize()
	assert.Equal(t, "debug", c.LogLevel)
}
