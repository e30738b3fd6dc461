package skim

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// PairKinematics is the summed four-momentum of two legs, reduced to the
// quantities stored on composite rows.
type PairKinematics struct {
	Pt   float64
	Eta  float64
	Phi  float64
	P    float64
	Mass float64
}

// SumPtEtaPhiM builds one four-vector per leg from (pT, eta, phi, assumed
// mass), sums them, and returns the pair kinematics.
func SumPtEtaPhiM(pt1, eta1, phi1, m1, pt2, eta2, phi2, m2 float64) PairKinematics {
	a := fmom.NewPtEtaPhiM(pt1, eta1, phi1, m1)
	b := fmom.NewPtEtaPhiM(pt2, eta2, phi2, m2)
	sum := fmom.Add(&a, &b)
	return PairKinematics{
		Pt:   sum.Pt(),
		Eta:  sum.Eta(),
		Phi:  sum.Phi(),
		P:    math.Sqrt(sum.Px()*sum.Px() + sum.Py()*sum.Py() + sum.Pz()*sum.Pz()),
		Mass: sum.M(),
	}
}

// InvariantMass returns the invariant mass of two legs under the given mass
// assignments.
func InvariantMass(t1 *Track, m1 float64, t2 *Track, m2 float64) float64 {
	return SumPtEtaPhiM(t1.Pt, t1.Eta, t1.Phi, m1, t2.Pt, t2.Eta, t2.Phi, m2).Mass
}
