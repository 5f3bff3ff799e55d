// Package thermo converts cryostat thermometer resistances to temperatures.
//
// Each supported sensor is described by a Curve: an ordered bank of
// resistance segments with their own Chebyshev fit coefficients. Curves are
// immutable package-level values, so conversion is a pure function and safe
// to call from any number of goroutines.
package thermo

import "math"

// Form selects how a segment's coefficient table is evaluated.
type Form int

const (
	// FormRawCheb is the cosine-series form over log10(R); the series value
	// is kelvin directly.
	FormRawCheb Form = iota
	// FormLogCheb is a Clenshaw series over log10(R); the series value is
	// log10 of the temperature, so the result is 10^series.
	FormLogCheb
	// FormOhmCheb is a Clenshaw series directly over R in ohms.
	FormOhmCheb
)

// Flag reports whether a reading fell inside the curve's calibrated span.
type Flag int

const (
	InRange Flag = iota
	// BelowRange: resistance above the calibrated span, so the temperature
	// is below the fit range and the coldest segment extrapolated.
	BelowRange
	// AboveRange: resistance below the calibrated span, so the temperature
	// is above the fit range and the hottest segment extrapolated.
	AboveRange
)

// Result carries a converted temperature together with its range flag, so
// the caller decides whether out-of-span extrapolation is worth logging.
type Result struct {
	T    float64 // kelvin; 0 is the invalid-result sentinel on validated curves
	Flag Flag
}

// Segment is one resistance sub-range of a curve.
type Segment struct {
	// MinR is the inclusive lower resistance bound in ohms. Segments are
	// listed in descending resistance order and the first segment whose
	// MinR the reading clears wins; the empirically chosen crossing points
	// on some sensors only make sense under that precedence.
	MinR float64
	Form Form
	Coef []float64
	// Fit domain bounds: log10 ohms for the Chebyshev forms over log10(R),
	// plain ohms for FormOhmCheb.
	Lo, Hi float64
}

func (s *Segment) eval(r float64) float64 {
	switch s.Form {
	case FormRawCheb:
		return chebyshevRaw(r, s.Coef, s.Hi, s.Lo)
	case FormLogCheb:
		return math.Pow(10, chebyshevSeries(math.Log10(r), s.Coef, s.Lo, s.Hi))
	default:
		return chebyshevSeries(r, s.Coef, s.Lo, s.Hi)
	}
}

// Curve is one sensor's full conversion law.
type Curve struct {
	Name Name
	// MaxR is the top of the calibrated span in ohms; +Inf when the curve
	// has no cold-side limit.
	MaxR     float64
	Segments []Segment
	// Segment indexes used for best-effort extrapolation past either end
	// of the span. Not necessarily the first/last entry: the Morso curve
	// extrapolates its hot end with the wide high segment rather than the
	// narrow room-temperature one.
	BelowSeg, AboveSeg int
	// Validate zeroes any result outside the physical envelope (0, 400) K
	// instead of returning it.
	Validate bool
}

// Convert turns a raw resistance reading into kelvin. The multiplier
// corrects bridge gain and is applied strictly as a pre-scaling of the
// resistance. Convert never panics; non-finite or non-physical outcomes
// surface as the zero sentinel on validated curves and as the computed
// value elsewhere.
func (c *Curve) Convert(r, multiplier float64) Result {
	r *= multiplier
	i, flag := c.segment(r)
	t := c.Segments[i].eval(r)
	if c.Validate && !(t > 0 && t < 400) {
		t = 0
	}
	return Result{T: t, Flag: flag}
}

func (c *Curve) segment(r float64) (int, Flag) {
	if r >= c.MaxR {
		return c.BelowSeg, BelowRange
	}
	for i := range c.Segments {
		if r >= c.Segments[i].MinR {
			return i, InRange
		}
	}
	return c.AboveSeg, AboveRange
}
