// Package sysfs reads a kernel thermal zone file, a plain-text
// integer in milli-degrees celsius.
package sysfs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Source struct {
	path string
}

func New(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Read() (float64, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return 0, fmt.Errorf("error reading %s: %w", s.path, err)
	}
	milli, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", s.path, err)
	}
	return float64(milli) / 1000.0, nil
}
