package skim

// V0 is an externally reconstructed two-daughter weak-decay topology. The
// geometric reconstruction (decay vertex fit, pointing angle, daughter
// separation) happens upstream; the producer only validates the candidate
// against the configured thresholds and classifies its daughters.
type V0 struct {
	PosTrack Track // positive daughter
	NegTrack Track // negative daughter

	Pt  float64
	Eta float64
	Phi float64

	DecayVtx     [3]float64 // decay vertex position (cm)
	TranRadius   float64    // transverse decay radius (cm)
	DCADaughters float64    // daughter separation at the decay vertex (cm)
	CPA          float64    // cosine of the pointing angle to the primary vertex
}

// decVtxReach is the largest decay-vertex coordinate magnitude, the
// observable bounded by the dec_vtx_max criterion.
func (v *V0) decVtxReach() float64 {
	reach := v.DecayVtx[0]
	if reach < 0 {
		reach = -reach
	}
	for _, c := range v.DecayVtx[1:] {
		if c < 0 {
			c = -c
		}
		if c > reach {
			reach = c
		}
	}
	return reach
}
