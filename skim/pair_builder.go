package skim

import "fmt"

// legWindow bounds one leg's kinematics; a leg sitting exactly on an edge
// is kept.
type legWindow struct {
	ptLow, ptHigh, pLow, pHigh, etaLow, etaHigh float64
}

func newLegWindow(cfg LegWindowConfig) legWindow {
	return legWindow{
		ptLow: cfg.PtLow, ptHigh: cfg.PtHigh,
		pLow: cfg.PLow, pHigh: cfg.PHigh,
		etaLow: cfg.EtaLow, etaHigh: cfg.EtaHigh,
	}
}

func (w legWindow) contains(t *Track) bool {
	if t.Pt < w.ptLow || t.Pt > w.ptHigh {
		return false
	}
	if t.P < w.pLow || t.P > w.pHigh {
		return false
	}
	if t.Eta < w.etaLow || t.Eta > w.etaHigh {
		return false
	}
	return true
}

// PairBuilder enumerates unordered distinct-track pairs, gates each leg on
// kinematic windows and PID before any four-momentum is constructed, and
// accepts pairs whose summed invariant mass falls in the configured window.
// O(n^2) in the event's track count; the per-leg gates dominate wall clock,
// so they run first.
type PairBuilder struct {
	legOne legWindow
	legTwo legWindow

	massOne float64
	massTwo float64

	massLow float64
	massUp  float64

	gate    NSigmaGate
	species Species

	ptSet  CutVariantSet
	layout *ContainerLayout

	qa *QARegistry
}

// NewPairBuilder builds the pair reconstruction from configuration.
func NewPairBuilder(cfg PairCutsConfig, qa *QARegistry) (*PairBuilder, error) {
	if len(cfg.PtMin) == 0 {
		return nil, fmt.Errorf("pair pt_min has no configured variants")
	}
	sp, err := ParseSpecies(cfg.PIDSpecies)
	if err != nil {
		return nil, fmt.Errorf("pair PID: %w", err)
	}
	layout, err := NewContainerLayout([]int{len(cfg.PtMin)})
	if err != nil {
		return nil, fmt.Errorf("pair cut container: %w", err)
	}
	return &PairBuilder{
		legOne:  newLegWindow(cfg.LegOne),
		legTwo:  newLegWindow(cfg.LegTwo),
		massOne: cfg.LegOneMass,
		massTwo: cfg.LegTwoMass,
		massLow: cfg.InvMassLow,
		massUp:  cfg.InvMassUp,
		gate: NSigmaGate{
			UseCombined: cfg.UseCombinedPID,
			PThreshold:  cfg.PIDMomentumThreshold,
			TPCMax:      cfg.NSigmaTPCMax,
			CombinedMax: cfg.NSigmaCombinedMax,
		},
		species: sp,
		ptSet:   CutVariantSet{Values: cfg.PtMin, Policy: PolicyLowerLimit},
		layout:  layout,
		qa:      qa,
	}, nil
}

// legAccepted applies one leg's window and PID gate. Tracklet-type segments
// never participate.
func (pb *PairBuilder) legAccepted(t *Track, w legWindow) bool {
	if t.Tracklet {
		return false
	}
	if !w.contains(t) {
		return false
	}
	return pb.gate.Passes(t.P, t.NSigmaTPC[pb.species], t.NSigmaTOF[pb.species])
}

// InMassWindow reports whether a summed mass lies in the configured window.
func (pb *PairBuilder) InMassWindow(m float64) bool {
	return m >= pb.massLow && m <= pb.massUp
}

// ForEachPair enumerates all unordered distinct pairs in strictly
// upper-triangular index order and invokes fn for each accepted pair with
// the summed kinematics. The leg gates run before four-momentum
// construction; the mass window runs after.
func (pb *PairBuilder) ForEachPair(tracks []Track, fn func(i, j int, kin PairKinematics)) {
	for i := 0; i < len(tracks); i++ {
		p1 := &tracks[i]
		if !pb.legAccepted(p1, pb.legOne) {
			continue
		}
		for j := i + 1; j < len(tracks); j++ {
			p2 := &tracks[j]
			if !pb.legAccepted(p2, pb.legTwo) {
				continue
			}
			kin := SumPtEtaPhiM(
				p1.Pt, p1.Eta, p1.Phi, pb.massOne,
				p2.Pt, p2.Eta, p2.Phi, pb.massTwo,
			)
			pb.qa.Fill(HistPairMassBefore, kin.Mass)
			if !pb.InMassWindow(kin.Mass) {
				continue
			}
			pb.qa.Fill(HistPairMassAfter, kin.Mass)
			fn(i, j, kin)
		}
	}
}

// CutContainer encodes the pair-level criteria for an accepted pair.
func (pb *PairBuilder) CutContainer(kin PairKinematics) uint64 {
	return pb.layout.Pack([]uint64{pb.ptSet.Mask(kin.Pt)})
}

// LegMasses returns the configured assumed masses, stored on the leg rows.
func (pb *PairBuilder) LegMasses() (one, two float64) { return pb.massOne, pb.massTwo }
