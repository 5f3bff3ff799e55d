package thermo

import "math"

// Curve definitions for the lab's cryostats. Coefficients and crossing
// points come from the per-sensor calibration fits and are fixed; adding a
// sensor means adding a Curve value and a Name, nothing else.

// dipstickCurve is the helium dipstick sensor, calibrated January 2022.
// Fit spans 4.2 K at 9816 ohm to 295.3 K at 45.775 ohm in three log-domain
// segments.
var dipstickCurve = Curve{
	Name: Dipstick,
	MaxR: 9816,
	Segments: []Segment{
		{
			// 4.2 K to 18.087 K, 9816 ohm to 1030.73 ohm
			MinR: 1030.73,
			Form: FormLogCheb,
			Coef: []float64{
				1.0305706890196387,
				-0.44538638729688446,
				0.038245646079858205,
				0.00040965728900122016,
				-0.0012118796335522266,
				0.00016675566193886398,
				-0.0003134743277859895,
				-4.9862349494365405e-05,
				-0.0002538643045723284,
				2.930529810139165e-05,
				0.00010177604830833634,
			},
			Lo: 2.72290035, Hi: 3.99196185,
		},
		{
			// 18.087 K to 107.681 K, 1030.73 ohm to 143.125 ohm
			MinR: 143.125,
			Form: FormLogCheb,
			Coef: []float64{
				1.7681898764629274,
				-0.5246006794490299,
				-0.0009736793484812508,
				0.003478858170366785,
				0.0008144241470007147,
				0.00010086660798327552,
				-0.0002057511678956854,
				-1.0562017354248726e-05,
				0.00021521449198016844,
				-0.0003566476960957493,
				-0.00031293753057890167,
			},
			Lo: 1.86381739, Hi: 3.02540734,
		},
		{
			// 107.681 K to 295.3 K, 143.125 ohm to 45.775 ohm
			MinR: 45.775,
			Form: FormLogCheb,
			Coef: []float64{
				2.2479945607783676,
				-0.220244799396414,
				0.0001736586172434195,
				-0.0014264062220913924,
				0.00016439143464969143,
				-0.00015075504768659046,
				-7.754154576623546e-05,
				-0.00011707662585304951,
				-2.3972858842214167e-05,
				-0.00010280191330409421,
				-5.983916339295706e-06,
			},
			Lo: 1.66062417, Hi: 2.16173695,
		},
	},
	BelowSeg: 0,
	AboveSeg: 2,
	Validate: true,
}

// morsoCurve is the CX-1050-SD-HT on morsoboard v1, recalibrated for room
// temperature July 2025. Four log-domain segments; the crossing points
// between mid/high and the narrow 260-293 K segment were chosen empirically
// and sit close to the fit-domain edges, so the descending first-match
// order here is load-bearing.
var morsoCurve = Curve{
	Name: Morso,
	MaxR: 3071,
	Segments: []Segment{
		{
			// 4.2 K to 20 K, 3070.98 ohm to 626.869 ohm
			MinR: 620.847233906399,
			Form: FormLogCheb,
			Coef: []float64{
				0.9506674308499167,
				-0.35199927764236455,
				0.016258403822749814,
				0.0055715910387260014,
				0.0008861267363886899,
				-0.0005390646317558515,
				0.00046234441088706396,
				-0.00034663919545294743,
				1.8900818521904524e-05,
				-0.0006577629496062799,
				-0.0010153963072063212,
			},
			Lo: 2.79717679, Hi: 3.48727699,
		},
		{
			// 20 K to 70 K, 629.86 ohm to 221.75 ohm
			MinR: 224.38862779880543,
			Form: FormLogCheb,
			Coef: []float64{
				1.57422337136405,
				-0.2644571720191467,
				0.0018751976846375657,
				0.00015485832655411989,
				0.0002687387319480107,
				0.00042994288778457724,
				0.0001854343092784725,
				0.000677677389021527,
				2.7489387520667344e-05,
				-6.839382864240871e-05,
				0.00013297037462381675,
			},
			Lo: 2.34587734, Hi: 2.79924403,
		},
		{
			// 70 K to 260 K, 252.526 ohm to 64.0478 ohm
			MinR: 64.04780000000001,
			Form: FormLogCheb,
			Coef: []float64{
				2.105907955347509,
				-0.32561185605929055,
				-0.00452466867832195,
				-0.0041969745056598,
				0.002813068419108741,
				-0.0012856814956658373,
				0.001022107637142309,
				-0.0008692536680943596,
				0.0005275420860334051,
				-0.0007986614863778288,
				0.0004594498328113981,
			},
			Lo: 1.80650422, Hi: 2.4023061,
		},
		{
			// 260 K to 293 K, 73.0427 ohm to 58.1843 ohm
			MinR: 58,
			Form: FormLogCheb,
			Coef: []float64{
				2.419846561814242,
				-0.05110237731635884,
				-0.00032812984876488935,
				0.00019824559266527853,
				-0.0009580047292876272,
				0.0004420826699351031,
				-0.00031778576498260353,
				9.294972361020348e-05,
				0.0002128491379170427,
				-7.140389360008976e-05,
				-9.114398708705641e-05,
			},
			Lo: 1.7648058138045555, Hi: 1.8635768183793173,
		},
	},
	BelowSeg: 0,
	AboveSeg: 2,
	Validate: true,
}

// lingCurve is the dilution refrigerator sensor, one wide 21-coefficient
// log-domain segment covering 40 mK to 20 K.
var lingCurve = Curve{
	Name: Ling,
	MaxR: math.Inf(1),
	Segments: []Segment{
		{
			MinR: math.Inf(-1),
			Form: FormLogCheb,
			Coef: []float64{
				-5.30606160e-01,
				-1.20610503e+00,
				3.99019199e-01,
				-1.75532773e-01,
				1.14216706e-01,
				-7.73419751e-02,
				5.40618959e-02,
				-3.86658100e-02,
				2.85303341e-02,
				-2.16080176e-02,
				1.63169093e-02,
				-1.29182752e-02,
				1.06184792e-02,
				-7.98300833e-03,
				6.02191244e-03,
				-4.32414907e-03,
				3.41879026e-03,
				-2.75739361e-03,
				2.04716983e-03,
				-1.22720374e-03,
				5.69061400e-04,
			},
			Lo: 3.0204657, Hi: 5.17597456,
		},
	},
	BelowSeg: 0,
	AboveSeg: 0,
}

// kanadaCurve is the 1.5 K cryostat sensor in the vendor cosine form, two
// 11-coefficient segments split at 287.6046 ohm.
var kanadaCurve = Curve{
	Name: Kanada,
	MaxR: math.Inf(1),
	Segments: []Segment{
		{
			MinR: 287.6046,
			Form: FormRawCheb,
			Coef: []float64{
				6.8642361690,
				-7.6201321296,
				2.9185476218,
				-0.8169479610,
				0.1364804787,
				0.0336174734,
				-0.0445366064,
				0.0282235691,
				-0.0018566792,
				-0.0065261097,
				0.0115414837,
			},
			Lo: 2.3746383841, Hi: 3.0937542834,
		},
		{
			MinR: math.Inf(-1),
			Form: FormRawCheb,
			Coef: []float64{
				107.6682289065,
				-169.5447785940,
				86.4765089174,
				-28.0981575764,
				6.1235649200,
				-1.9503945254,
				1.0131764357,
				-0.2848764539,
				0.0754777049,
				-0.1217169204,
				0.0183919674,
			},
			Lo: 1.5133641164, Hi: 3.0937542834,
		},
	},
	BelowSeg: 0,
	AboveSeg: 1,
}

// kanadaLowCurve is the 2022 low-temperature extension for the Kanada
// cryostat, 1.5 K to 15 K, fitted directly over resistance.
var kanadaLowCurve = Curve{
	Name: KanadaLow,
	MaxR: math.Inf(1),
	Segments: []Segment{
		{
			MinR: math.Inf(-1),
			Form: FormOhmCheb,
			Coef: []float64{
				4.837741078001092,
				-5.0386618786563675,
				2.6011253829600314,
				-1.2811240931100099,
				0.6202351699537209,
				-0.290718100542933,
				0.13446140588234368,
				-0.06110535096065962,
				0.027152555428268582,
				-0.010518962898060267,
				0.006875088171212802,
				-0.0025596374495960084,
			},
			Lo: 268.137, Hi: 1202.448,
		},
	},
	BelowSeg: 0,
	AboveSeg: 0,
}

// cx1050Curve is the bare Cernox CX-1050-AA-1.4L (serial X105321), vendor
// cosine form, 1.40 K at 9825 ohm to 325 K at 54.31 ohm.
var cx1050Curve = Curve{
	Name: CX1050,
	MaxR: 9825,
	Segments: []Segment{
		{
			// 1.40 K to 14.3 K, 9825 ohm to 689.3 ohm
			MinR: 689.3,
			Form: FormRawCheb,
			Coef: []float64{
				5.527867,
				-6.379248,
				2.855709,
				-1.065175,
				0.334348,
				-0.084377,
				0.013947,
				0.000599,
				-0.001649,
				0.001212,
			},
			Lo: 2.79894969622, Hi: 4.13119755741,
		},
		{
			// 14.3 K to 80.3 K, 689.3 ohm to 189.3 ohm
			MinR: 189.3,
			Form: FormRawCheb,
			Coef: []float64{
				43.034893,
				-38.016846,
				8.162617,
				-0.935864,
				0.093585,
				-0.003306,
				-0.006104,
			},
			Lo: 2.23461882459, Hi: 2.88553993198,
		},
		{
			// 80.3 K to 325 K, 189.3 ohm to 54.31 ohm
			MinR: 54.31,
			Form: FormRawCheb,
			Coef: []float64{
				177.551522,
				-126.721728,
				22.066582,
				-3.115138,
				0.595049,
				-0.112115,
				0.015706,
			},
			Lo: 1.72880129581, Hi: 2.3242938345,
		},
	},
	BelowSeg: 0,
	AboveSeg: 2,
}
