// Package cm4 drives the fan controller on the Raspberry Pi CM4 IO
// board, a single duty register written over the low speed I2C bus.
package cm4

import (
	"fmt"

	"github.com/alanbchristie/cm4-fan-controller/pkg/fan"
	"github.com/alanbchristie/cm4-fan-controller/pkg/i2cclient"
	"github.com/sirupsen/logrus"
)

// unknown makes the first Set reach the hardware whatever the band.
const unknown = -1

type Fan struct {
	client   i2cclient.Client
	register byte
	speeds   [5]int
	current  int
}

func New(client i2cclient.Client, register byte, speeds [5]int) *Fan {
	return &Fan{
		client:   client,
		register: register,
		speeds:   speeds,
		current:  unknown,
	}
}

// Set writes the duty for the band. Repeating the active band is a
// no-op, the bus sees at most one write per change.
func (f *Fan) Set(band int) error {
	if band < 0 || band >= len(f.speeds) {
		return fmt.Errorf("band %d out of range", band)
	}
	if band == f.current {
		return nil
	}

	percent := f.speeds[band]
	logrus.Infof("setting fan speed to %d%%", percent)
	err := f.client.WriteByteData(f.register, fan.Duty(percent))
	if err != nil {
		return err
	}
	f.current = band
	return nil
}
