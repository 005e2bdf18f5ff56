// Package vcgencmd reads the SoC temperature with the VideoCore
// vendor tool, whose output looks like "temp=42.8'C".
package vcgencmd

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"
)

var temperaturePattern = regexp.MustCompile(`temp=([\d.]+)'C`)

type Source struct{}

func New() *Source {
	return &Source{}
}

func (s *Source) Read() (float64, error) {
	out, err := exec.Command("vcgencmd", "measure_temp").Output()
	if err != nil {
		return 0, fmt.Errorf("error running vcgencmd: %w", err)
	}
	return Parse(string(out))
}

// Parse extracts the celsius value from measure_temp output.
func Parse(out string) (float64, error) {
	m := temperaturePattern.FindStringSubmatch(out)
	if m == nil {
		return 0, fmt.Errorf("no temperature in %q", out)
	}
	temperature, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", m[1], err)
	}
	logrus.Debugf("%.1f°C", temperature)
	return temperature, nil
}
