package skim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumPtEtaPhiM_CollinearLegs(t *testing.T) {
	// Two collinear kaons: pt adds, the mass exceeds 2m only through the
	// kinetic terms.
	kin := SumPtEtaPhiM(0.3, 0, 0, MassKaon, 0.3, 0, 0, MassKaon)

	assert.InDelta(t, 0.6, kin.Pt, 1e-9)
	assert.InDelta(t, 0, kin.Eta, 1e-9)
	assert.InDelta(t, 0, kin.Phi, 1e-9)
	assert.InDelta(t, 0.6, kin.P, 1e-9)
	assert.InDelta(t, 0.98736, kin.Mass, 1e-4)
}

func TestSumPtEtaPhiM_IsSymmetric(t *testing.T) {
	a := SumPtEtaPhiM(0.5, 0.2, 1.0, MassKaon, 0.7, -0.3, 2.5, MassPion)
	b := SumPtEtaPhiM(0.7, -0.3, 2.5, MassPion, 0.5, 0.2, 1.0, MassKaon)

	assert.InDelta(t, a.Mass, b.Mass, 1e-12)
	assert.InDelta(t, a.Pt, b.Pt, 1e-12)
	assert.InDelta(t, a.P, b.P, 1e-12)
}

func TestInvariantMass_AtRestLimit(t *testing.T) {
	// Back-to-back legs of equal pt at midrapidity: the invariant mass is
	// the total energy, 2*sqrt(pt^2 + m^2).
	t1 := Track{Pt: 0.5, Eta: 0, Phi: 0}
	t2 := Track{Pt: 0.5, Eta: 0, Phi: math.Pi}

	want := 2 * math.Sqrt(0.25+MassKaon*MassKaon)
	assert.InDelta(t, want, InvariantMass(&t1, MassKaon, &t2, MassKaon), 1e-9)
}

func TestInvariantMass_MatchesSum(t *testing.T) {
	t1 := Track{Pt: 0.45, Eta: 0.1, Phi: 0.3}
	t2 := Track{Pt: 0.45, Eta: -0.1, Phi: 0.9}

	kin := SumPtEtaPhiM(t1.Pt, t1.Eta, t1.Phi, MassKaon, t2.Pt, t2.Eta, t2.Phi, MassKaon)
	assert.InDelta(t, kin.Mass, InvariantMass(&t1, MassKaon, &t2, MassKaon), 1e-12)
}
