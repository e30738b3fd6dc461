package skim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CollisionSelection applies the event-level criteria and computes the
// event-shape scalar. QA histograms are filled for every collision seen,
// selected or not.
type CollisionSelection struct {
	zvtxMax      float64
	checkTrigger bool
	checkOffline bool
	run3         bool

	qa *QARegistry
}

// NewCollisionSelection builds the event selector from configuration.
func NewCollisionSelection(cfg EventCutsConfig, run3 bool, qa *QARegistry) *CollisionSelection {
	return &CollisionSelection{
		zvtxMax:      cfg.ZvtxMax,
		checkTrigger: cfg.CheckTrigger,
		checkOffline: cfg.CheckOffline,
		run3:         run3,
		qa:           qa,
	}
}

// IsSelected applies the vertex-position, trigger, and offline-quality
// criteria. QA fills happen regardless of the outcome.
func (cs *CollisionSelection) IsSelected(col *Collision) bool {
	cs.qa.Fill(HistEventZvtx, col.VtxZ)
	cs.qa.Fill(HistEventMult, cs.Multiplicity(col))

	if math.Abs(col.VtxZ) > cs.zvtxMax {
		return false
	}
	if cs.checkTrigger && !col.TriggerFired {
		return false
	}
	if cs.checkOffline && !col.OfflineOK {
		return false
	}
	return true
}

// Multiplicity returns the estimator selected by the configured run era.
func (cs *CollisionSelection) Multiplicity(col *Collision) float64 {
	if cs.run3 {
		return col.MultT0M
	}
	return col.MultV0M
}

// Sphericity computes the transverse event-shape scalar in [0, 1] from the
// pT-weighted 2x2 transverse momentum tensor:
//
//	S_ab = sum_i (p_a p_b / pT) / sum_i pT
//
// diagonalized with gonum; sphericity is 2*lambda_min / (lambda_min +
// lambda_max). Zero or one usable tracks give 0 (fully collimated).
func (cs *CollisionSelection) Sphericity(tracks []Track) float64 {
	var sxx, sxy, syy, ptSum float64
	n := 0
	for i := range tracks {
		t := &tracks[i]
		if t.Pt <= 0 {
			continue
		}
		px := t.Pt * math.Cos(t.Phi)
		py := t.Pt * math.Sin(t.Phi)
		sxx += px * px / t.Pt
		sxy += px * py / t.Pt
		syy += py * py / t.Pt
		ptSum += t.Pt
		n++
	}
	if n < 2 || ptSum == 0 {
		return 0
	}
	sym := mat.NewSymDense(2, []float64{sxx / ptSum, sxy / ptSum, sxy / ptSum, syy / ptSum})
	var eig mat.EigenSym
	if !eig.Factorize(sym, false) {
		return 0
	}
	vals := eig.Values(nil) // ascending
	trace := vals[0] + vals[1]
	if trace == 0 {
		return 0
	}
	s := 2 * vals[0] / trace
	cs.qa.Fill(HistEventSphericity, s)
	return s
}
