package params

// Per-equation coefficient sets keyed by FIA species code. A species absent
// from a map resolves to the other-softwood (9991) or other-hardwood (9990)
// set at construction time.

// annual diameter increment:
// ddbh = exp(b0 + b1·ln(d+1) + b2·d + b3·ln(cr) + b4·bal/ln(d+1) + b5·ln(csi))
func defaultDDBH() map[int][6]float64 {
	return map[int][6]float64{
		12:            {-3.214, 0.851, -0.0163, 0.334, -0.0112, 0.462},
		71:            {-3.496, 0.883, -0.0181, 0.302, -0.0126, 0.471},
		94:            {-3.302, 0.846, -0.0158, 0.311, -0.0104, 0.455},
		95:            {-3.571, 0.872, -0.0174, 0.289, -0.0119, 0.433},
		97:            {-3.384, 0.858, -0.0151, 0.327, -0.0108, 0.449},
		129:           {-3.056, 0.829, -0.0142, 0.351, -0.0096, 0.478},
		241:           {-3.687, 0.894, -0.0188, 0.276, -0.0131, 0.421},
		261:           {-3.433, 0.861, -0.0169, 0.318, -0.0115, 0.441},
		316:           {-3.268, 0.812, -0.0171, 0.294, -0.0122, 0.436},
		318:           {-3.517, 0.839, -0.0184, 0.271, -0.0134, 0.414},
		371:           {-3.441, 0.827, -0.0179, 0.283, -0.0128, 0.425},
		375:           {-3.189, 0.801, -0.0192, 0.308, -0.0117, 0.452},
		746:           {-3.024, 0.786, -0.0201, 0.322, -0.0109, 0.468},
		833:           {-3.356, 0.818, -0.0166, 0.288, -0.0125, 0.431},
		OtherHardwood: {-3.392, 0.821, -0.0177, 0.286, -0.0124, 0.429},
		OtherSoftwood: {-3.371, 0.856, -0.0164, 0.315, -0.0111, 0.448},
	}
}

// annual height increment:
// dht = p0·p1·p2·cr^p5·(csi/30)^p5·exp(-p1·ht - p4·ccfl/100)·(1-exp(-p1·ht))^(p2-1)
func defaultDHT() map[int][6]float64 {
	return map[int][6]float64{
		12:            {32.04, 0.0311, 1.282, 0, 0.381, 0.874},
		71:            {30.17, 0.0334, 1.241, 0, 0.412, 0.901},
		94:            {31.26, 0.0318, 1.264, 0, 0.374, 0.862},
		95:            {27.88, 0.0346, 1.217, 0, 0.403, 0.911},
		97:            {30.61, 0.0322, 1.271, 0, 0.369, 0.858},
		129:           {35.42, 0.0287, 1.324, 0, 0.341, 0.826},
		241:           {24.73, 0.0371, 1.186, 0, 0.428, 0.934},
		261:           {29.35, 0.0329, 1.253, 0, 0.388, 0.881},
		316:           {28.41, 0.0339, 1.228, 0, 0.417, 0.922},
		318:           {27.62, 0.0351, 1.207, 0, 0.431, 0.941},
		371:           {28.14, 0.0344, 1.219, 0, 0.422, 0.929},
		375:           {30.88, 0.0316, 1.259, 0, 0.392, 0.889},
		746:           {33.27, 0.0298, 1.301, 0, 0.356, 0.843},
		833:           {29.04, 0.0332, 1.244, 0, 0.401, 0.906},
		OtherHardwood: {28.76, 0.0336, 1.236, 0, 0.409, 0.915},
		OtherSoftwood: {30.22, 0.0325, 1.258, 0, 0.383, 0.872},
	}
}

// annual crown recession:
// dhcb = q0·(hcb/q5)^q2·((ht-hcb) + dht^q1)·(1-exp(-q3·(ccf+1)))^q4
func defaultDHCB() map[int][6]float64 {
	return map[int][6]float64{
		12:            {0.0614, 1.034, 0.412, 0.0121, 0.581, 12.4},
		71:            {0.0687, 1.012, 0.438, 0.0134, 0.611, 11.8},
		94:            {0.0632, 1.028, 0.419, 0.0124, 0.588, 12.1},
		95:            {0.0661, 1.019, 0.431, 0.0129, 0.602, 11.6},
		97:            {0.0598, 1.041, 0.404, 0.0118, 0.574, 12.7},
		129:           {0.0553, 1.062, 0.387, 0.0109, 0.552, 13.5},
		241:           {0.0642, 1.024, 0.422, 0.0127, 0.593, 11.9},
		261:           {0.0571, 1.053, 0.396, 0.0113, 0.563, 13.1},
		316:           {0.0703, 1.004, 0.446, 0.0138, 0.621, 11.2},
		318:           {0.0671, 1.016, 0.434, 0.0131, 0.607, 11.5},
		371:           {0.0684, 1.011, 0.441, 0.0135, 0.614, 11.4},
		375:           {0.0728, 0.994, 0.457, 0.0142, 0.633, 10.9},
		746:           {0.0756, 0.982, 0.468, 0.0148, 0.647, 10.5},
		833:           {0.0659, 1.021, 0.429, 0.0128, 0.598, 11.7},
		OtherHardwood: {0.0694, 1.008, 0.443, 0.0136, 0.617, 11.3},
		OtherSoftwood: {0.0621, 1.031, 0.416, 0.0123, 0.585, 12.2},
	}
}

// total height imputation (region indicator 0 = ME, 1 = NB):
// ht = 1.37 + (c0+c1·reg)·(1-exp(-c2·d - c4·(bal+1)))^c3·ln(ccf)^c5
func defaultHtPred() map[int][6]float64 {
	return map[int][6]float64{
		12:            {9.21, -0.42, 0.0712, 1.311, 0.0012, 0.521},
		71:            {9.84, -0.37, 0.0668, 1.287, 0.0014, 0.534},
		94:            {9.56, -0.44, 0.0694, 1.302, 0.0011, 0.517},
		95:            {8.63, -0.31, 0.0731, 1.276, 0.0015, 0.542},
		97:            {9.38, -0.41, 0.0701, 1.297, 0.0012, 0.524},
		129:           {11.02, -0.52, 0.0621, 1.358, 0.0009, 0.496},
		241:           {7.94, -0.26, 0.0768, 1.244, 0.0017, 0.563},
		261:           {9.67, -0.39, 0.0683, 1.305, 0.0013, 0.528},
		316:           {9.12, -0.35, 0.0726, 1.281, 0.0014, 0.537},
		318:           {9.45, -0.38, 0.0707, 1.293, 0.0013, 0.529},
		371:           {9.31, -0.36, 0.0714, 1.288, 0.0014, 0.533},
		375:           {9.88, -0.43, 0.0671, 1.314, 0.0011, 0.512},
		746:           {10.47, -0.48, 0.0643, 1.336, 0.0010, 0.503},
		833:           {9.52, -0.37, 0.0697, 1.299, 0.0013, 0.526},
		OtherHardwood: {9.41, -0.37, 0.0711, 1.291, 0.0013, 0.531},
		OtherSoftwood: {9.47, -0.40, 0.0703, 1.298, 0.0012, 0.523},
	}
}

// survival, complementary log-log:
// p = 1 - exp(-exp(-m0 + m1·d^m2/(bal+1)))
func defaultMort() map[int][5]float64 {
	return map[int][5]float64{
		12:            {-1.312, 0.0461, 1.408, 0, 0},
		71:            {-1.188, 0.0512, 1.376, 0, 0},
		94:            {-1.287, 0.0473, 1.397, 0, 0},
		95:            {-1.224, 0.0494, 1.384, 0, 0},
		97:            {-1.356, 0.0447, 1.421, 0, 0},
		129:           {-1.428, 0.0419, 1.446, 0, 0},
		241:           {-1.391, 0.0432, 1.434, 0, 0},
		261:           {-1.344, 0.0451, 1.416, 0, 0},
		316:           {-1.267, 0.0481, 1.391, 0, 0},
		318:           {-1.338, 0.0455, 1.412, 0, 0},
		371:           {-1.304, 0.0466, 1.403, 0, 0},
		375:           {-1.211, 0.0498, 1.381, 0, 0},
		746:           {-1.156, 0.0523, 1.368, 0, 0},
		833:           {-1.329, 0.0458, 1.409, 0, 0},
		OtherHardwood: {-1.276, 0.0477, 1.394, 0, 0},
		OtherSoftwood: {-1.318, 0.0463, 1.406, 0, 0},
	}
}
