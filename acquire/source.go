// Package acquire runs the measurement pipeline: it pulls sample chunks
// from a source, applies channel multipliers and the thermometer
// calibration, and hands finished batches to whatever front end is
// listening. It is UI-agnostic and cancellable, so the CLI, TUI and server
// all drive the same loop.
package acquire

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/koppilab/cryodaq-go/models"
)

// Chunk is one read from a source. Samples is channel-major:
// Samples[ch][i] is the i-th sample on channel ch, in the source's raw
// units (ohms for the bridge before multiplier correction).
type Chunk struct {
	Timestamp time.Time
	Samples   [][]float64
}

// Source delivers timestamped sample chunks.
type Source interface {
	// Read blocks until the next chunk is available or ctx is cancelled.
	Read(ctx context.Context) (Chunk, error)
}

// SimSource generates sine-plus-noise readings at the configured rate, for
// running the full pipeline without hardware.
type SimSource struct {
	freq     float64
	nsamples int
	base     []float64
	rng      *rand.Rand
	phase    float64
}

// NewSimSource builds a simulated source shaped like the configured
// channels. Channels default to a 1 kohm working point, which lands in the
// middle segment of most curves.
func NewSimSource(p *models.PARAMETERS, seed int64) *SimSource {
	base := make([]float64, len(p.CHANNELS))
	for i := range base {
		base[i] = 1000
	}
	freq := p.FREQ
	if freq <= 0 {
		freq = 1000
	}
	n := p.NSAMPLES
	if n <= 0 {
		n = 100
	}
	return &SimSource{
		freq:     freq,
		nsamples: n,
		base:     base,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *SimSource) Read(ctx context.Context) (Chunk, error) {
	// Pace to the configured sampling rate like real hardware would.
	d := time.Duration(float64(s.nsamples) / s.freq * float64(time.Second))
	select {
	case <-ctx.Done():
		return Chunk{}, ctx.Err()
	case <-time.After(d):
	}
	samples := make([][]float64, len(s.base))
	for ch := range samples {
		row := make([]float64, s.nsamples)
		for i := range row {
			drift := 50 * math.Sin(s.phase+float64(i)/float64(s.nsamples)*0.1)
			row[i] = s.base[ch] + drift + s.rng.NormFloat64()*2
		}
		samples[ch] = row
	}
	s.phase += 0.05
	return Chunk{Timestamp: time.Now(), Samples: samples}, nil
}
