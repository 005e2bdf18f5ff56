package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alanbchristie/cm4-fan-controller/pkg/app"
	"github.com/alanbchristie/cm4-fan-controller/pkg/config"
	"github.com/alanbchristie/cm4-fan-controller/pkg/fan/cm4"
	"github.com/alanbchristie/cm4-fan-controller/pkg/i2cclient"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor/sysfs"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor/vcgencmd"
	"github.com/alanbchristie/cm4-fan-controller/pkg/version"
	"github.com/koding/multiconfig"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
	defer stop()
	err := Run(ctx)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func Run(ctx context.Context) error {
	config := &config.CliConfig{}
	err := multiconfig.New().Load(config)
	if err != nil {
		return err
	}
	config.Normalize()
	lvl, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return fmt.Errorf("error setting logrus loglevel: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.Infof("fancontroller %s running", version.Version)

	client, err := i2cclient.New(config.Device, uint16(config.FanAddress))
	if err != nil {
		return err
	}
	defer client.Close()

	app := app.New(config, newSource(config), cm4.New(client, byte(config.FanRegister), config.Speeds()))

	err = app.Start(ctx)
	if err != nil {
		return err
	}

	return app.Wait()
}

func newSource(c *config.CliConfig) sensor.Source {
	if strings.HasPrefix(c.Sensor, "/") {
		return sysfs.New(c.Sensor)
	}
	return vcgencmd.New()
}
