package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/alanbchristie/cm4-fan-controller/pkg/fan"
	"github.com/alanbchristie/cm4-fan-controller/pkg/i2cclient"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor/sysfs"
	"github.com/alanbchristie/cm4-fan-controller/pkg/sensor/vcgencmd"
)

func main() {
	device := flag.String("device", "/dev/i2c-10", "i2c device")
	addr := flag.Int("addr", 0x2f, "fan controller address")
	reg := flag.Int("reg", 0x30, "fan duty command register")

	duty := flag.Int("duty", 0, "raw duty value to write (0-255)")
	percent := flag.Int("percent", 0, "percent of full speed to write")

	measure := flag.Bool("measure", false, "read the temperature once and exit")
	source := flag.String("sensor", "vcgencmd", "vcgencmd or a milli-celsius file path")
	flag.Parse()

	if *measure {
		var s sensor.Source
		if strings.HasPrefix(*source, "/") {
			s = sysfs.New(*source)
		} else {
			s = vcgencmd.New()
		}
		temperature, err := s.Read()
		if err != nil {
			log.Fatal("error was: ", err)
		}
		fmt.Printf("%.1f'C\n", temperature)
		return
	}

	if *duty < 0 || *duty > 255 {
		log.Fatalf("duty %d out of range 0-255", *duty)
	}
	value := byte(*duty)
	if isFlagPassed("percent") {
		value = fan.Duty(*percent)
	}

	client, err := i2cclient.New(*device, uint16(*addr))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	err = client.WriteByteData(byte(*reg), value)
	if err != nil {
		log.Fatal("error was: ", err)
	}
	log.Println("wrote duty: ", value)
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
