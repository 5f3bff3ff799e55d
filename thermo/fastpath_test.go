package thermo

import (
	"math"
	"testing"
)

func TestDipstickSliceMatchesScalarPath(t *testing.T) {
	// Shared valid span of both paths; the clamp policies only differ
	// outside it.
	const n = 2000
	r := make([]float64, n)
	for i := range r {
		r[i] = 45 + (10000-45)*float64(i)/(n-1)
	}
	fast := DipstickSlice(r, 1.0)
	for i, ri := range r {
		want := Evaluate(Dipstick, ri, 1.0).T
		if math.Abs(fast[i]-want) > 1e-6*math.Max(1, math.Abs(want)) {
			t.Fatalf("paths disagree at R=%.3f: fast %.9f, scalar %.9f", ri, fast[i], want)
		}
	}
}

func TestDipstickSliceClampsInsteadOfZeroing(t *testing.T) {
	out := DipstickSlice([]float64{0, 1, 1e9}, 1.0)
	for i, got := range out {
		if got < dipstickMinK || got > dipstickMaxK {
			t.Fatalf("sample %d: %.4f outside [%v, %v] K", i, got, float64(dipstickMinK), float64(dipstickMaxK))
		}
	}
	// A short at the bridge reads as ~0 ohm and must pin to the top clamp,
	// where the scalar path zeroes instead.
	if out[0] != dipstickMaxK {
		t.Fatalf("R=0: want %v K clamp, got %.4f", float64(dipstickMaxK), out[0])
	}
	if scalar := Evaluate(Dipstick, 0, 1.0).T; scalar != 0 {
		t.Fatalf("scalar path at R=0: want zero sentinel, got %v", scalar)
	}
}

func TestDipstickSliceMultiplierAndShape(t *testing.T) {
	r := []float64{100, 1000, 5000}
	a := DipstickSlice(r, 2.5)
	scaled := []float64{250, 2500, 12500}
	b := DipstickSlice(scaled, 1.0)
	if len(a) != len(r) {
		t.Fatalf("output length %d, want %d", len(a), len(r))
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			t.Fatalf("sample %d: multiplier path %.9f != prescaled path %.9f", i, a[i], b[i])
		}
	}
	// Input slice must not be modified.
	if r[0] != 100 || r[1] != 1000 || r[2] != 5000 {
		t.Fatalf("input slice mutated: %v", r)
	}
}
