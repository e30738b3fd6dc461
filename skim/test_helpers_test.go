package skim

import "math"

// goodTrack returns a track passing every tightest configured variant of the
// default primary-track selection, with neutral PID sigmas.
func goodTrack(id int, pt, eta, phi float64) Track {
	return Track{
		ID:                 id,
		Pt:                 pt,
		Eta:                eta,
		Phi:                phi,
		P:                  pt * math.Cosh(eta),
		Sign:               1,
		TPCNClsFound:       90,
		TPCFClsFraction:    0.95,
		TPCNClsCrossedRows: 85,
		TPCNClsShared:      0.05,
		ITSNCls:            5,
		ITSNClsInnerBarrel: 2,
		DCAxy:              0.05,
		DCAz:               0.1,
	}
}

// lambdaV0 returns a geometrically sound decay candidate with a proton-like
// positive daughter and a pion-like negative daughter. Its proton-pion
// invariant mass is about 1.219 GeV; tests that need it accepted widen the
// mass window accordingly.
func lambdaV0(posID, negID int) V0 {
	pos := goodTrack(posID, 0.8, 0.1, 0.5)
	pos.DCAxy = 0.2
	neg := goodTrack(negID, 0.2, -0.1, 2.0)
	neg.Sign = -1
	neg.DCAxy = 0.2
	return V0{
		PosTrack:     pos,
		NegTrack:     neg,
		Pt:           0.8,
		Eta:          0.05,
		Phi:          0.7,
		DecayVtx:     [3]float64{1, 2, 3},
		TranRadius:   5,
		DCADaughters: 0.5,
		CPA:          0.999,
	}
}

// selectedCollision returns a collision passing the default event selection.
func selectedCollision(run int) Collision {
	return Collision{
		Run:          run,
		VtxZ:         5,
		MultV0M:      120,
		MultT0M:      150,
		TriggerFired: true,
		OfflineOK:    true,
	}
}
