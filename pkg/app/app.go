package app

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/alanbchristie/cm4-fan-controller/pkg/alarm"
	"github.com/alanbchristie/cm4-fan-controller/pkg/band"
	"github.com/alanbchristie/cm4-fan-controller/pkg/config"
	"github.com/alanbchristie/cm4-fan-controller/pkg/fan"
	"github.com/alanbchristie/cm4-fan-controller/pkg/mqtt"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor"
	"github.com/alanbchristie/cm4-fan-controller/pkg/state"
	mqttv2 "github.com/mochi-mqtt/server/v2"
	"github.com/sirupsen/logrus"
)

const (
	sensorAlarm = "temperature-read-failed"
	stateTopic  = "fancontroller/state"
)

type App struct {
	wg     *sync.WaitGroup
	config *config.CliConfig

	source sensor.Source
	fan    fan.Fan
	bands  *band.Controller
	alarms *alarm.ActiveAlarms
	broker *mqttv2.Server

	err error
}

func New(config *config.CliConfig, source sensor.Source, fan fan.Fan) *App {
	return &App{
		wg:     &sync.WaitGroup{},
		config: config,
		source: source,
		fan:    fan,
		bands:  band.New(config.Points(), float64(config.Hysteresis)),
		alarms: &alarm.ActiveAlarms{},
	}
}

func (a *App) Start(ctx context.Context) error {
	logrus.Infof("measurement interval %s", a.config.Interval())
	logrus.Infof("hysteresis %d°", a.config.Hysteresis)
	points := a.config.Points()
	logrus.Infof("temperature points (celsius) %.0f|%.0f|%.0f|%.0f", points[0], points[1], points[2], points[3])
	speeds := a.config.Speeds()
	logrus.Infof("band speeds (percent) %d|%d|%d|%d|%d", speeds[0], speeds[1], speeds[2], speeds[3], speeds[4])

	if a.config.MQTTAddress != "" {
		broker, err := mqtt.Start(ctx, a.wg, a.config.MQTTAddress)
		if err != nil {
			return err
		}
		a.broker = broker
	}

	// full speed until the first reading says otherwise.
	err := a.fan.Set(a.bands.Current())
	if err != nil {
		return err
	}

	a.wg.Add(1)
	go a.controlLoop(ctx)
	return nil
}

// Wait blocks until the control loop stops and reports why. A nil
// error means a clean context shutdown.
func (a *App) Wait() error {
	a.wg.Wait()
	return a.err
}

func (a *App) controlLoop(ctx context.Context) {
	defer a.wg.Done()
	timer := time.NewTimer(a.config.Interval())
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			timer.Reset(a.config.Interval())
			err := a.cycle()
			if err != nil {
				a.err = err
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// cycle runs one sample-compute-actuate pass. Anything recoverable is
// handled here, a non-nil return stops the loop for good.
func (a *App) cycle() error {
	temperature, err := a.source.Read()
	if err != nil {
		if a.alarms.Raise(sensorAlarm) {
			logrus.Warnf("temperature read failed - setting fan speed to %d%%: %v", a.config.BandSpeed4, err)
		}
		b := a.bands.ForceMax()
		err = a.fan.Set(b)
		if err != nil {
			logrus.Error(err)
		}
		a.publish(nil, b)
		return nil
	}
	if a.alarms.Clear(sensorAlarm) {
		logrus.Info("temperature readings recovered")
	}

	b, err := a.bands.Next(temperature)
	if err != nil {
		// a band outside 0..4 is a logic defect, do not keep driving
		// the fan with undefined state.
		return err
	}
	err = a.fan.Set(b)
	if err != nil {
		logrus.Error(err)
	}
	a.publish(&temperature, b)
	return nil
}

func (a *App) publish(temperature *float64, b int) {
	if a.broker == nil {
		return
	}
	s := state.State{
		Time:         time.Now(),
		Temperature:  temperature,
		Band:         b,
		SpeedPercent: a.config.Speeds()[b],
		SensorOK:     temperature != nil,
	}
	payload, err := json.Marshal(s)
	if err != nil {
		logrus.Error(err)
		return
	}
	err = a.broker.Publish(stateTopic, payload, true, 0)
	if err != nil {
		logrus.Error(err)
	}
}
