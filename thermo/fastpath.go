package thermo

import "gonum.org/v1/gonum/floats"

// Clamp limits for the dipstick fast path. Input clipping keeps log10 away
// from non-positive readings during continuous acquisition; output clipping
// bounds the occasional extrapolated sample instead of zeroing it.
const (
	dipstickMinOhm = 40
	dipstickMaxOhm = 10000
	dipstickMinK   = 4
	dipstickMaxK   = 350
)

// DipstickSlice converts a whole buffer of dipstick readings in one pass.
//
// This is the throughput path for live acquisition and trades edge
// fidelity for speed: input is clipped to [40, 10000] ohm before evaluation
// and the result to [4, 350] K after, whereas the scalar path extrapolates
// past the span and zeroes non-physical results. The two policies are
// intentionally different; callers that care about range extremes should
// evaluate per sample.
func DipstickSlice(r []float64, multiplier float64) []float64 {
	out := make([]float64, len(r))
	copy(out, r)
	if multiplier != 1 {
		floats.Scale(multiplier, out)
	}
	segs := dipstickCurve.Segments
	for i, ri := range out {
		if ri < dipstickMinOhm {
			ri = dipstickMinOhm
		} else if ri > dipstickMaxOhm {
			ri = dipstickMaxOhm
		}
		var s *Segment
		switch {
		case ri >= segs[0].MinR:
			s = &segs[0]
		case ri >= segs[1].MinR:
			s = &segs[1]
		default:
			s = &segs[2]
		}
		t := s.eval(ri)
		if t < dipstickMinK {
			t = dipstickMinK
		} else if t > dipstickMaxK {
			t = dipstickMaxK
		}
		out[i] = t
	}
	return out
}
