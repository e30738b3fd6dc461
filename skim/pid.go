package skim

import "math"

// NSigmaGate is the momentum-dependent particle-identification test applied
// to pair legs. Below PThreshold the single-detector TPC sigma is required
// under TPCMax; above it the quadrature combination of the TPC and TOF
// sigmas is required under CombinedMax.
//
// With UseCombined false the gate rejects unconditionally: the TPC-only
// fallback for that mode does not exist, and the gate stays closed rather
// than silently passing legs through an untested branch.
type NSigmaGate struct {
	UseCombined bool
	PThreshold  float64
	TPCMax      float64
	CombinedMax float64
}

// Passes evaluates the gate for one leg's momentum and stored sigmas.
func (g NSigmaGate) Passes(mom, nsigmaTPC, nsigmaTOF float64) bool {
	if !g.UseCombined {
		return false
	}
	if mom < g.PThreshold {
		return math.Abs(nsigmaTPC) < g.TPCMax
	}
	return math.Hypot(nsigmaTOF, nsigmaTPC) < g.CombinedMax
}
