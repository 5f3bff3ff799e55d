// Package models holds the JSON measurement-parameter schema shared by the
// CLI, TUI and server front ends. Field names match the JSON keys in the
// lab's config files directly.
package models

// PARAMETERS is the root of a measurement config file.
type PARAMETERS struct {
	// SERIAL configures the resistance bridge; nil when running against
	// the simulated source.
	SERIAL *SERIAL

	CHANNELS []*CHANNEL

	// FREQ is the per-channel sampling frequency in Hz.
	FREQ float64
	// NSAMPLES is the chunk size delivered by the source per channel.
	NSAMPLES int
	// NLOGGING is how many chunks are gathered into one logged batch.
	NLOGGING int
	// AVERAGE collapses each chunk to one row per channel before logging.
	AVERAGE bool

	// THERMCH is the index into CHANNELS carrying the thermometer signal;
	// -1 disables temperature conversion.
	THERMCH int
	// CALIB names the thermometer calibration curve.
	CALIB string

	LOGFILE string
	// RAWOUT appends the unmultiplied channel columns after the calibrated ones.
	RAWOUT bool
	DEBUG  bool
}

// CHANNEL is one analog input.
type CHANNEL struct {
	// NAME is the physical channel, e.g. "Dev1/ai0".
	NAME  string
	LABEL string
	// MULTIPLIER corrects bridge gain when converting the reading to ohms.
	MULTIPLIER float64
}

// SERIAL configures the bridge link.
type SERIAL struct {
	PORT     string
	BAUDRATE int
	// COMMAND is the resistance-query verb the bridge firmware expects.
	COMMAND string
}

// Multipliers collects the per-channel bridge multipliers in channel order.
func (p *PARAMETERS) Multipliers() []float64 {
	out := make([]float64, len(p.CHANNELS))
	for i, ch := range p.CHANNELS {
		out[i] = ch.MULTIPLIER
	}
	return out
}

// Labels collects the per-channel column labels in channel order.
func (p *PARAMETERS) Labels() []string {
	out := make([]string, len(p.CHANNELS))
	for i, ch := range p.CHANNELS {
		out[i] = ch.LABEL
		if out[i] == "" {
			out[i] = ch.NAME
		}
	}
	return out
}
