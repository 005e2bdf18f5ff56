// Package band holds the fan speed band state machine. Temperature
// readings move the controller between five discrete bands, with a
// hysteresis margin below each band's entry threshold so it does not
// oscillate when the temperature hovers near a boundary.
package band

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Highest is the maximum speed band.
const Highest = 4

type Controller struct {
	current    int
	points     [4]float64
	hysteresis float64
}

// New returns a controller at the highest band. The fan runs at full
// speed until the first reading says otherwise.
func New(points [4]float64, hysteresis float64) *Controller {
	return &Controller{
		current:    Highest,
		points:     points,
		hysteresis: hysteresis,
	}
}

func (c *Controller) Current() int {
	return c.current
}

// point returns the entry threshold for band b (1..Highest).
func (c *Controller) point(b int) float64 {
	return c.points[b-1]
}

// ForceMax jumps straight to the highest band, ignoring hysteresis.
// Used when the temperature cannot be read.
func (c *Controller) ForceMax() int {
	if c.current != Highest {
		logrus.WithFields(logrus.Fields{
			"from": c.current,
			"to":   Highest,
		}).Info("forcing highest band")
	}
	c.current = Highest
	return c.current
}

// Next calculates the new band for the given temperature. Moving up,
// the first threshold reached above the current band wins, one step per
// cycle unless the reading skips several bands downward. Moving down
// requires the temperature to fall below the entry threshold minus the
// hysteresis margin, and the downward result wins if both could apply.
func (c *Controller) Next(temperature float64) (int, error) {
	next := c.current

	for b := c.current + 1; b <= Highest; b++ {
		if temperature >= c.point(b) {
			next = b
			break
		}
	}

	down := c.current
	for down > 0 && temperature <= c.point(down)-c.hysteresis {
		down--
	}
	if down < c.current {
		next = down
	}

	if next < 0 || next > Highest {
		return c.current, fmt.Errorf("band %d out of range", next)
	}

	if next != c.current {
		direction := "up"
		if next < c.current {
			direction = "down"
		}
		logrus.WithFields(logrus.Fields{
			"direction": direction,
			"from":      c.current,
			"to":        next,
		}).Info("band change")
	}
	c.current = next
	return next, nil
}
