package acquire

import (
	"context"
	"time"

	serialpkg "github.com/koppilab/cryodaq-go/serial"
)

// BridgeSource polls the resistance bridge at the configured rate and
// packs the readings into chunks.
type BridgeSource struct {
	bridge   *serialpkg.Bridge
	freq     float64
	nsamples int
	last     []float64
}

func NewBridgeSource(b *serialpkg.Bridge, freq float64, nsamples int) *BridgeSource {
	if freq <= 0 {
		freq = 10
	}
	if nsamples <= 0 {
		nsamples = 1
	}
	return &BridgeSource{bridge: b, freq: freq, nsamples: nsamples}
}

func (s *BridgeSource) Read(ctx context.Context) (Chunk, error) {
	nch := len(s.bridge.Channels)
	samples := make([][]float64, nch)
	for ch := range samples {
		samples[ch] = make([]float64, s.nsamples)
	}
	tick := time.NewTicker(time.Duration(float64(time.Second) / s.freq))
	defer tick.Stop()
	for i := 0; i < s.nsamples; i++ {
		select {
		case <-ctx.Done():
			return Chunk{}, ctx.Err()
		case <-tick.C:
		}
		vals, err := s.bridge.GetResistances()
		if err != nil {
			// A dropped poll must not halt a running measurement; repeat
			// the previous reading and move on.
			vals = s.last
		}
		for ch := 0; ch < nch; ch++ {
			if ch < len(vals) {
				samples[ch][i] = vals[ch]
			}
		}
		if err == nil {
			s.last = vals
		}
	}
	return Chunk{Timestamp: time.Now(), Samples: samples}, nil
}
