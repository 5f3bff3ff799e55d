package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// Decode parses and normalizes a measurement config.
func Decode(raw []byte) (*PARAMETERS, error) {
	var p PARAMETERS
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if len(p.CHANNELS) == 0 {
		return nil, fmt.Errorf("no CHANNELS in JSON")
	}
	if p.FREQ <= 0 {
		p.FREQ = 1000
	}
	if p.NSAMPLES <= 0 {
		p.NSAMPLES = 100
	}
	if p.NLOGGING <= 0 {
		p.NLOGGING = 1
	}
	if p.THERMCH >= len(p.CHANNELS) {
		return nil, fmt.Errorf("THERMCH %d out of range", p.THERMCH)
	}
	if p.CALIB == "" {
		p.CALIB = "None"
	}
	for _, ch := range p.CHANNELS {
		if ch.MULTIPLIER == 0 {
			ch.MULTIPLIER = 1
		}
	}
	return &p, nil
}

// Load reads and decodes a measurement config file.
func Load(path string) (*PARAMETERS, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b)
}
