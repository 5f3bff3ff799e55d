package thermo

import "math"

// chebyshevRaw evaluates a truncated Chebyshev series in the cosine form
// T = sum coef[i]*cos(i*acos(k)), with k mapped from log10(r) between the
// fit bounds zl and zu. This is the form the sensor vendors publish their
// fit coefficients in (ZL/ZU in log10 ohms), so the tables can be typed in
// straight from the calibration sheets.
func chebyshevRaw(r float64, coef []float64, zu, zl float64) float64 {
	z := math.Log10(r)
	k := ((z - zl) - (zu - z)) / (zu - zl)
	// Round-off at segment edges can push k a hair outside [-1, 1] and
	// acos would return NaN there; clamp before the trig call.
	if k > 1 {
		k = 1
	} else if k < -1 {
		k = -1
	}
	t := 0.0
	for i, c := range coef {
		t += c * math.Cos(float64(i)*math.Acos(k))
	}
	return t
}

// chebyshevSeries evaluates a Chebyshev series with coefficients given over
// the domain [lo, hi], using the Clenshaw recurrence. Unlike the cosine
// form this stays well-defined outside the domain, which is what gives the
// open-ended top and bottom segments their extrapolation behaviour.
func chebyshevSeries(x float64, coef []float64, lo, hi float64) float64 {
	k := (2*x - (lo + hi)) / (hi - lo)
	var b1, b2 float64
	for i := len(coef) - 1; i >= 1; i-- {
		b1, b2 = coef[i]+2*k*b1-b2, b1
	}
	return coef[0] + k*b1 - b2
}
