package skim

import "fmt"

// v0Criterion indexes the candidate-level criteria of the V0 cut container,
// in bit-layout order.
type v0Criterion int

const (
	v0PtMin v0Criterion = iota
	v0DCADaughMax
	v0CPAMin
	v0TranRadMin
	v0TranRadMax
	v0DecVtxMax

	numV0Criteria
)

func (c v0Criterion) policy() SelectionPolicy {
	switch c {
	case v0PtMin, v0CPAMin, v0TranRadMin:
		return PolicyLowerLimit
	case v0DCADaughMax, v0TranRadMax:
		return PolicyUpperLimit
	case v0DecVtxMax:
		return PolicyAbsUpperLimit
	default:
		panic(fmt.Sprintf("unhandled v0 criterion %d", c))
	}
}

func (c v0Criterion) value(v *V0) float64 {
	switch c {
	case v0PtMin:
		return v.Pt
	case v0DCADaughMax:
		return v.DCADaughters
	case v0CPAMin:
		return v.CPA
	case v0TranRadMin, v0TranRadMax:
		return v.TranRadius
	case v0DecVtxMax:
		return v.decVtxReach()
	default:
		panic(fmt.Sprintf("unhandled v0 criterion %d", c))
	}
}

// V0Container carries the independently encoded cut containers of one decay
// candidate: the candidate-level criteria plus each daughter's track and PID
// containers.
type V0Container struct {
	V0      uint64
	PosCuts uint64
	PosPID  uint64
	NegCuts uint64
	NegPID  uint64
}

// V0Selection validates pre-reconstructed two-daughter candidates, encodes
// them and their daughters into cut containers, and computes the
// invariant-mass hypotheses.
type V0Selection struct {
	sets   [numV0Criteria]CutVariantSet
	layout *ContainerLayout

	pos *TrackSelection
	neg *TrackSelection

	massLow, massUp float64
	rejectKaons     bool
	kaonLow, kaonUp float64

	qa *QARegistry
}

// NewV0Selection builds the decay-candidate selection from configuration.
// pidPThreshold is the momentum split for the daughters' PID observable,
// shared with the primary-track selection.
func NewV0Selection(cfg V0CutsConfig, pidPThreshold float64, qa *QARegistry) (*V0Selection, error) {
	vs := &V0Selection{
		massLow:     cfg.InvMassLow,
		massUp:      cfg.InvMassUp,
		rejectKaons: cfg.RejectKaons,
		kaonLow:     cfg.KaonMassLow,
		kaonUp:      cfg.KaonMassUp,
		qa:          qa,
	}

	values := [numV0Criteria][]float64{
		v0PtMin:       cfg.PtMin,
		v0DCADaughMax: cfg.DCADaughMax,
		v0CPAMin:      cfg.CPAMin,
		v0TranRadMin:  cfg.TranRadMin,
		v0TranRadMax:  cfg.TranRadMax,
		v0DecVtxMax:   cfg.DecVtxMax,
	}
	widths := make([]int, numV0Criteria)
	for c := v0Criterion(0); c < numV0Criteria; c++ {
		if len(values[c]) == 0 {
			return nil, fmt.Errorf("v0 criterion %d has no configured variants", c)
		}
		vs.sets[c] = CutVariantSet{Values: values[c], Policy: c.policy()}
		widths[c] = len(values[c])
	}
	layout, err := NewContainerLayout(widths)
	if err != nil {
		return nil, fmt.Errorf("v0 cut container: %w", err)
	}
	vs.layout = layout

	if vs.pos, err = NewDaughterSelection(cfg.Daughter, pidPThreshold); err != nil {
		return nil, fmt.Errorf("v0 positive daughter: %w", err)
	}
	if vs.neg, err = NewDaughterSelection(cfg.Daughter, pidPThreshold); err != nil {
		return nil, fmt.Errorf("v0 negative daughter: %w", err)
	}
	return vs, nil
}

// Masses returns the two invariant-mass hypotheses of the candidate: the
// hyperon assignment (pos=proton, neg=pion) and its antiparticle mirror.
func (vs *V0Selection) Masses(v *V0) (mHyp, mAntiHyp float64) {
	mHyp = InvariantMass(&v.PosTrack, MassProton, &v.NegTrack, MassPion)
	mAntiHyp = InvariantMass(&v.PosTrack, MassPion, &v.NegTrack, MassProton)
	return mHyp, mAntiHyp
}

// kaonMass is the competing-hypothesis mass (both daughters as pions).
func (vs *V0Selection) kaonMass(v *V0) float64 {
	return InvariantMass(&v.PosTrack, MassPion, &v.NegTrack, MassPion)
}

// InMassWindow reports whether either hypothesis falls inside the configured
// window. An emitted candidate always satisfies this for its stored masses.
func (vs *V0Selection) InMassWindow(mHyp, mAntiHyp float64) bool {
	if mHyp > vs.massLow && mHyp < vs.massUp {
		return true
	}
	return mAntiHyp > vs.massLow && mAntiHyp < vs.massUp
}

// IsSelectedMinimal applies the loosest candidate-level variants, the
// daughters' minimal track selections, the mass window, and, when enabled,
// the competing kaon-mass exclusion. QA fills happen before and after so the
// cut's effect on the mass spectrum is visible.
func (vs *V0Selection) IsSelectedMinimal(v *V0) bool {
	mHyp, mAntiHyp := vs.Masses(v)
	vs.qa.Fill(HistV0CPA, v.CPA)
	vs.qa.Fill(HistV0MassBefore, mHyp)

	for c := v0Criterion(0); c < numV0Criteria; c++ {
		if !vs.sets[c].MinimalPass(c.value(v)) {
			return false
		}
	}
	if !vs.pos.IsSelectedMinimal(&v.PosTrack) || !vs.neg.IsSelectedMinimal(&v.NegTrack) {
		return false
	}
	if !vs.InMassWindow(mHyp, mAntiHyp) {
		return false
	}
	if vs.rejectKaons {
		if mK := vs.kaonMass(v); mK > vs.kaonLow && mK < vs.kaonUp {
			return false
		}
	}
	vs.qa.Fill(HistV0MassAfter, mHyp)
	return true
}

// CutContainer runs the full multi-variant encoding of the candidate and
// both daughters. Pure function of the candidate and the configuration.
func (vs *V0Selection) CutContainer(v *V0) V0Container {
	masks := make([]uint64, numV0Criteria)
	for c := v0Criterion(0); c < numV0Criteria; c++ {
		masks[c] = vs.sets[c].Mask(c.value(v))
	}
	var out V0Container
	out.V0 = vs.layout.Pack(masks)
	out.PosCuts, out.PosPID = vs.pos.CutContainer(&v.PosTrack)
	out.NegCuts, out.NegPID = vs.neg.CutContainer(&v.NegTrack)
	return out
}

// Layout exposes the candidate-level container layout.
func (vs *V0Selection) Layout() *ContainerLayout { return vs.layout }
