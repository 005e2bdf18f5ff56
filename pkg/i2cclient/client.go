package i2cclient

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type Client interface {
	WriteByteData(command, value byte) error
	Close() error
}

type client struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

func New(device string, address uint16) (*client, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("error initialising host: %w", err)
	}
	bus, err := i2creg.Open(device)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", device, err)
	}
	logrus.Debugf("opened %s address %#x", device, address)
	return &client{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: address},
	}, nil
}

// WriteByteData performs an SMBus write-byte-data transaction,
// command register first then the value.
func (c *client) WriteByteData(command, value byte) error {
	err := c.dev.Tx([]byte{command, value}, nil)
	if err != nil {
		return fmt.Errorf("error writing register %#x value %d: %w", command, value, err)
	}
	return nil
}

func (c *client) Close() error {
	return c.bus.Close()
}
