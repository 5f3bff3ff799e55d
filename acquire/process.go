package acquire

import (
	"context"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/koppilab/cryodaq-go/models"
	"github.com/koppilab/cryodaq-go/thermo"
)

// Config is the part of the measurement setup that may change while the
// loop is running; Run re-reads it between chunks so the operator can
// adjust multipliers or switch curves without restarting acquisition.
type Config struct {
	Multipliers []float64
	// ThermCh indexes the channel carrying the thermometer; -1 disables
	// conversion.
	ThermCh int
	Curve   thermo.Name
}

// Batch is one logged unit of processed data. Each row is
// [unix seconds, ch0..chN-1] with the thermometer channel already in
// kelvin, followed by the raw channel columns when RAWOUT is set.
type Batch struct {
	Rows [][]float64
}

// Run drives the processing loop until ctx is cancelled: gather NLOGGING
// chunks, average/multiply/calibrate them, and hand the batch to onBatch.
// The configured thermometer channel is converted through the calibration
// bank; everything else only gets its multiplier.
func Run(ctx context.Context, src Source, p *models.PARAMETERS, cfg func() Config, onBatch func(Batch)) error {
	nlogging := p.NLOGGING
	if nlogging <= 0 {
		nlogging = 1
	}
	for {
		var rows [][]float64
		c := cfg()
		for n := 0; n < nlogging; n++ {
			chunk, err := src.Read(ctx)
			if err != nil {
				return err
			}
			rows = append(rows, processChunk(chunk, p, c)...)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		onBatch(Batch{Rows: rows})
	}
}

func processChunk(chunk Chunk, p *models.PARAMETERS, c Config) [][]float64 {
	nch := len(chunk.Samples)
	if nch == 0 {
		return nil
	}

	// Chunk averaging reduces each channel to one sample before the
	// multiplier and the (nonlinear) calibration are applied, matching how
	// the logged values were always computed in this lab.
	raw := chunk.Samples
	if p.AVERAGE {
		raw = make([][]float64, nch)
		for ch := range chunk.Samples {
			raw[ch] = []float64{stat.Mean(chunk.Samples[ch], nil)}
		}
	}
	n := len(raw[0])

	mult := make([][]float64, nch)
	for ch := range raw {
		mult[ch] = append([]float64(nil), raw[ch]...)
		m := 1.0
		if ch < len(c.Multipliers) && c.Multipliers[ch] != 0 {
			m = c.Multipliers[ch]
		}
		if m != 1 {
			floats.Scale(m, mult[ch])
		}
	}
	if c.ThermCh >= 0 && c.ThermCh < nch {
		// Multiplier already applied above, so the curve sees ohms.
		mult[c.ThermCh] = thermo.EvaluateSlice(c.Curve, mult[c.ThermCh], 1)
	}

	ts := float64(chunk.Timestamp.UnixNano()) / 1e9
	sr := p.FREQ
	if sr <= 0 {
		sr = 1
	}
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		// Back-compute sample times from the chunk timestamp; earliest
		// sample first. A small deviation from hardware time is expected.
		t := ts
		if n > 1 {
			t = ts - float64(n-1-i)/sr
		}
		row := make([]float64, 0, 1+nch*2)
		row = append(row, t)
		for ch := 0; ch < nch; ch++ {
			row = append(row, mult[ch][i])
		}
		if p.RAWOUT {
			for ch := 0; ch < nch; ch++ {
				row = append(row, raw[ch][i])
			}
		}
		rows[i] = row
	}
	return rows
}
