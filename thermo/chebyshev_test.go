package thermo

import (
	"math"
	"testing"
)

// The cosine form and the Clenshaw form compute the same series, so inside
// the fit domain they must agree to floating-point noise.
func TestCosineAndClenshawFormsAgree(t *testing.T) {
	coef := []float64{
		6.8642361690, -7.6201321296, 2.9185476218, -0.8169479610,
		0.1364804787, 0.0336174734, -0.0445366064, 0.0282235691,
		-0.0018566792, -0.0065261097, 0.0115414837,
	}
	zl, zu := 2.3746383841, 3.0937542834
	for i := 0; i <= 200; i++ {
		z := zl + (zu-zl)*float64(i)/200
		r := math.Pow(10, z)
		a := chebyshevRaw(r, coef, zu, zl)
		b := chebyshevSeries(z, coef, zl, zu)
		if math.Abs(a-b) > 1e-9*math.Max(1, math.Abs(b)) {
			t.Fatalf("forms disagree at R=%.4f: cosine %.12f, clenshaw %.12f", r, a, b)
		}
	}
}

// Evaluating exactly at the fit-domain endpoints lands k on +/-1 up to
// round-off; the clamp must keep acos out of NaN territory.
func TestCosineFormFiniteAtDomainEdges(t *testing.T) {
	coef := []float64{5.527867, -6.379248, 2.855709, -1.065175, 0.334348}
	zl, zu := 2.79894969622, 4.13119755741
	for _, z := range []float64{zl, zu} {
		r := math.Pow(10, z)
		got := chebyshevRaw(r, coef, zu, zl)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("non-finite value %v at domain edge R=%v", got, r)
		}
	}
	// Just past the edges the clamp saturates instead of going NaN.
	for _, r := range []float64{math.Pow(10, zl) * 0.999, math.Pow(10, zu) * 1.001} {
		if got := chebyshevRaw(r, coef, zu, zl); math.IsNaN(got) {
			t.Fatalf("NaN just outside domain at R=%v", r)
		}
	}
}

func TestClenshawExtrapolatesOutsideDomain(t *testing.T) {
	coef := []float64{1.0, -0.5, 0.25}
	// Outside the domain the series keeps evaluating the polynomial.
	got := chebyshevSeries(5, coef, 0, 1)
	k := (2*5.0 - 1) / 1.0
	want := coef[0] + coef[1]*k + coef[2]*(2*k*k-1)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("extrapolated value %.12f, want %.12f", got, want)
	}
}
