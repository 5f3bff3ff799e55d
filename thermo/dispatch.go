package thermo

// Name identifies a calibration curve in measurement configs.
type Name string

const (
	Dipstick  Name = "Dipstick"
	Morso     Name = "Morso"
	Ling      Name = "Ling"
	Kanada    Name = "Kanada"
	KanadaLow Name = "KanadaLow"
	CX1050    Name = "CX1050"

	// Retired fits, still selectable for reprocessing old logs.
	DipstickOld Name = "Dipstick_old"
	LingOld     Name = "Ling_old"

	// Noiseless and None pass the multiplied resistance through unchanged.
	Noiseless Name = "Noiseless"
	None      Name = "None"
)

// Default is the curve unknown names fall back to. Acquisition must never
// halt over a config typo, so dispatch substitutes the primary sensor and
// carries on.
const Default = Dipstick

var curves = map[Name]*Curve{
	Dipstick:  &dipstickCurve,
	Morso:     &morsoCurve,
	Ling:      &lingCurve,
	Kanada:    &kanadaCurve,
	KanadaLow: &kanadaLowCurve,
	CX1050:    &cx1050Curve,
}

// Names lists every selectable curve name for config UIs.
func Names() []Name {
	return []Name{Dipstick, Morso, Ling, Kanada, KanadaLow, CX1050, DipstickOld, LingOld, Noiseless, None}
}

// Lookup resolves a curve name, reporting whether it was known. Passthrough
// and legacy names resolve to nil curves; use Evaluate for those.
func Lookup(name Name) (*Curve, bool) {
	c, ok := curves[name]
	return c, ok
}

// Evaluate converts one resistance reading on the named curve. The
// multiplier pre-scales the resistance on every path, including the
// passthrough one. Unknown names use the Default curve.
func Evaluate(name Name, r, multiplier float64) Result {
	switch name {
	case None, Noiseless:
		return Result{T: r * multiplier}
	case DipstickOld:
		return Result{T: dipstickOld(r * multiplier)}
	case LingOld:
		return Result{T: lingOld(r * multiplier)}
	}
	c, ok := curves[name]
	if !ok {
		c = curves[Default]
	}
	return c.Convert(r, multiplier)
}

// EvaluateSlice converts a buffer of readings, returning a slice of the
// same length. The primary sensor takes the clipped fast path (see
// DipstickSlice); everything else evaluates per sample. Unknown names use
// the Default curve, like Evaluate.
func EvaluateSlice(name Name, r []float64, multiplier float64) []float64 {
	switch name {
	case Dipstick:
		return DipstickSlice(r, multiplier)
	case None, Noiseless:
		out := make([]float64, len(r))
		for i, ri := range r {
			out[i] = ri * multiplier
		}
		return out
	}
	if _, ok := curves[name]; !ok {
		if name != DipstickOld && name != LingOld {
			return DipstickSlice(r, multiplier)
		}
	}
	out := make([]float64, len(r))
	for i, ri := range r {
		out[i] = Evaluate(name, ri, multiplier).T
	}
	return out
}
