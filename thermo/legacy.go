package thermo

// Retired piecewise-polynomial fits, kept so old measurement logs can still
// be reprocessed under the curve name they were taken with.

// dipstickOld is the 2017 dipstick fit: plain polynomials per range with a
// short linear stitch to keep the pieces continuous. The branch order is
// the original one; note the 1603.7..6976.7 ohm gap deliberately falls
// through to the inverse-power base fit.
func dipstickOld(r float64) float64 {
	switch {
	case r > 6976.7051348175764:
		// below 5 K
		return ((((-2.45959e-18*r+1.07371e-13)*r-1.86716e-9)*r+1.62013e-5)*r-0.0705395)*r + 128.879
	case 500 < r && r < 1603.7310207365606:
		// around 15-35 K
		return (((((6.76502e-18*r-5.62812e-14)*r+1.99219e-10)*r-3.87763e-7)*r+0.000446408)*r-0.301794)*r + 112.562
	case 480 < r && r < 500:
		// linear approximation to maintain continuity
		return -0.068789*r + 69.9864
	default:
		// base fit over all temperatures, polynomial in 1/R
		u := 1 / r
		return (((((-1.26323e12*u+7.88601e10)*u-1.8702e9)*u+2.66201e7)*u-397237)*u+17255.7)*u + 2.53409
	}
}

// lingOld is the original very-narrow-range 9 degree polynomial fit for the
// dilution refrigerator sensor.
func lingOld(r float64) float64 {
	return 0.8287 + r*(-1.76454e-4+r*(2.11729e-8+r*(-1.57071e-12+
		r*(7.61027e-17+r*(-2.4539e-21+r*(5.22219e-26+r*(-7.04414e-31+
			r*(5.45476e-36+r*(-1.84632e-41)))))))))
}
