// Package serial drives the lab's RS-232 resistance bridge. The bridge
// speaks a line protocol: commands are '#'-framed ASCII verbs, replies are
// '|'-separated readings terminated by CR.
package serial

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/koppilab/cryodaq-go/models"
	goserial "github.com/tarm/serial"
)

type Bridge struct {
	Serial       *goserial.Port
	Channels     []*models.CHANNEL
	SerialConfig *models.SERIAL
}

// Open opens the configured port and constructs a Bridge. Callers probe
// with GetVersion before trusting the link.
func Open(ser *models.SERIAL, channels []*models.CHANNEL) (*Bridge, error) {
	if ser == nil {
		return nil, fmt.Errorf("missing SERIAL")
	}
	if ser.PORT == "" {
		return nil, fmt.Errorf("missing SERIAL.PORT")
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("no CHANNELS configured")
	}
	cfg := &goserial.Config{
		Name:        ser.PORT,
		Baud:        ser.BAUDRATE,
		Parity:      goserial.ParityNone,
		Size:        8,
		StopBits:    goserial.Stop1,
		ReadTimeout: time.Millisecond * 300,
	}
	port, err := goserial.OpenPort(cfg)
	if err != nil {
		return nil, err
	}
	return &Bridge{Serial: port, Channels: channels, SerialConfig: ser}, nil
}

func (b *Bridge) Close() error { return b.Serial.Close() }

// GetResistances issues the configured resistance-query verb and parses one
// reading per channel, in ohms as seen by the bridge (multipliers are the
// caller's concern).
func (b *Bridge) GetResistances() ([]float64, error) {
	verb := b.SerialConfig.COMMAND
	if verb == "" {
		verb = "R"
	}
	cmd := getCommand(verb)
	resp, err := sendCommand(b.Serial, cmd, 200)
	if err != nil {
		return nil, err
	}
	return parseReadings(resp, len(b.Channels))
}

// GetVersion probes the bridge firmware with the version verb.
func (b *Bridge) GetVersion() (int, int, int, error) {
	resp, err := sendCommand(b.Serial, getCommand("V"), 200)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("GetVersion error: %v", err)
	}
	idx := strings.Index(resp, "Version ")
	if idx == -1 {
		return 0, 0, 0, fmt.Errorf("no version")
	}
	parts := strings.Split(strings.TrimSpace(resp[idx+8:]), ".")
	if len(parts) < 3 {
		return 0, 0, 0, fmt.Errorf("invalid version")
	}
	id, _ := strconv.Atoi(parts[0])
	major, _ := strconv.Atoi(parts[1])
	minor, _ := strconv.Atoi(parts[2])
	return id, major, minor, nil
}

func parseReadings(resp string, nch int) ([]float64, error) {
	resp = strings.TrimSpace(resp)
	if resp == "" {
		return nil, fmt.Errorf("empty response")
	}
	if i := strings.Index(resp, "="); i != -1 {
		resp = resp[i+1:]
	}
	fields := strings.Split(resp, "|")
	vals := make([]float64, 0, nch)
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("bad reading %q: %v", f, err)
		}
		vals = append(vals, v)
	}
	if len(vals) < nch {
		return nil, fmt.Errorf("short response: %d of %d channels", len(vals), nch)
	}
	return vals[:nch], nil
}
