package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/abakum/go-serialline"
	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// profile describes a device and how to talk to it. It can be loaded from
// a YAML file and then overridden by command line flags.
type profile struct {
	Port          string `yaml:"port"`
	Baud          int    `yaml:"baud"`
	Format        string `yaml:"format"`     // data bits, parity, stop bits: 8N1
	Blocking      string `yaml:"blocking"`   // nonblocking, timed, timed-after-receive, blocking
	TimeoutMillis int    `yaml:"timeout_ms"` // read timeout, 100 ms granularity
}

func defaultProfile() profile {
	return profile{
		Baud:          9600,
		Format:        "8N1",
		Blocking:      serial.TimedImmediately.String(),
		TimeoutMillis: 100,
	}
}

func loadProfile(path string, p *profile) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return merry.Prepend(err, "read profile")
	}
	if err := yaml.Unmarshal(b, p); err != nil {
		return merry.Prependf(err, "parse profile %s", path)
	}
	return nil
}

// applyModeFlag accepts "115200_8N1", "115200" or "8N1".
func (p *profile) applyModeFlag(s string) error {
	baud, format, found := strings.Cut(s, "_")
	if !found {
		if _, err := strconv.Atoi(s); err == nil {
			baud, format = s, ""
		} else {
			baud, format = "", s
		}
	}
	if baud != "" {
		n, err := strconv.Atoi(baud)
		if err != nil {
			return merry.Errorf("bad baud rate %q in mode %q", baud, s)
		}
		p.Baud = n
	}
	if format != "" {
		p.Format = format
	}
	return nil
}

func (p profile) mode() (serial.Mode, error) {
	mode := serial.DefaultMode()
	baud, err := serial.BaudRateFromSpeed(p.Baud)
	if err != nil {
		return mode, merry.Prependf(err, "baud %d", p.Baud)
	}
	mode.BaudRate = baud
	if err := serial.ModeFromString(p.Format, &mode); err != nil {
		return mode, merry.Prependf(err, "format %q", p.Format)
	}
	return mode, nil
}

func (p profile) blockingMode() (serial.BlockingMode, error) {
	m, err := serial.BlockingModeFromString(p.Blocking)
	if err != nil {
		return m, merry.Prependf(err, "blocking %q", p.Blocking)
	}
	return m, nil
}
