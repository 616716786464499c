package acd

import "math"

// Hardwood stem quality classification after Castle et al. (2017; CJFR 47:
// 1457-1467), fit for red maple, red oak, sugar maple and yellow birch with
// red maple as the reference level. Other species return zero probabilities.

// FormClass holds the predicted probabilities of the four stem form classes.
type FormClass struct {
	STM float64 // single straight stem
	LSW float64 // extensive sweep and lean
	MST float64 // multiple stems
	LF  float64 // significant fork in the first 5 m
}

func logistic(x float64) float64 {
	e := math.Exp(x)
	return e / (1 + e)
}

// RiskProbability returns the probability of the tree being high risk.
func (t *Tree) RiskProbability() float64 {
	if !(t.Spp == 316 || t.Spp == 833 || t.Spp == 318 || t.Spp == 371) {
		return 0
	}

	b0, b1 := -0.6886, -0.0001
	b2, b3 := 0.0, 0.0
	switch t.Spp {
	case 833: // red oak
		b2, b3 = -0.0184, -0.0393
	case 318: // sugar maple
		b2, b3 = -0.1513, -0.0164
	case 371: // yellow birch
		b2, b3 = -0.9851, 0.0196
	}

	return logistic(b0 + b1*t.DBH + b2 + b3*t.DBH)
}

// FormProbability returns the predicted form class probabilities,
// normalized to sum to one.
func (t *Tree) FormProbability() FormClass {
	var f FormClass
	if !(t.Spp == 316 || t.Spp == 833 || t.Spp == 318 || t.Spp == 371) {
		return f
	}

	b0stm, b1stm, b2stm := -0.9491, 0.0174, 0.0
	b0lsw, b1lsw, b2lsw := -1.1143, -0.0322, 0.0
	b0mst, b2mst := -0.4110, 0.0
	b0lf, b1lf, b2lf := -4.0677, 0.0322, 0.0

	switch t.Spp {
	case 833: // red oak
		b2stm, b2lsw, b2mst, b2lf = -0.2826, 0.7910, -0.5009, 0.1139
	case 318: // sugar maple
		b2stm, b2lsw, b2mst, b2lf = 0.7541, -0.2325, -1.1347, 0.6278
	case 371: // yellow birch
		b2stm, b2lsw, b2mst, b2lf = -0.0208, 0.2980, -0.7557, 1.0681
	}

	f.STM = logistic(b0stm + b1stm*t.DBH + b2stm)
	f.LSW = logistic(b0lsw + b1lsw*t.DBH + b2lsw)
	f.MST = logistic(b0mst + b2mst)
	f.LF = logistic(b0lf + b1lf*t.DBH + b2lf)

	xx := 1 / (f.STM + f.LSW + f.MST + f.LF)
	f.STM *= xx
	f.LSW *= xx
	f.MST *= xx
	f.LF *= xx
	return f
}
