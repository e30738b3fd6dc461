package skim

import (
	"fmt"
	"math"
)

// TrackCriterionKind identifies one track selection criterion. Each kind has
// a fixed comparison policy and a fixed observable on the track; only the
// threshold variants are configurable.
type TrackCriterionKind int

const (
	TrackSign TrackCriterionKind = iota
	TrackPtMin
	TrackEtaMax
	TrackTPCNClsMin
	TrackTPCFClsMin
	TrackTPCCRowsMin
	TrackTPCSClsMax
	TrackITSNClsMin
	TrackITSNClsIBMin
	TrackDCAxyMax
	TrackDCAzMax
	// TrackDCAMin is a floor on the impact parameter, used only for decay
	// daughters (which must not point back at the primary vertex).
	TrackDCAMin
)

func (k TrackCriterionKind) policy() SelectionPolicy {
	switch k {
	case TrackSign:
		return PolicyEqual
	case TrackPtMin, TrackTPCNClsMin, TrackTPCFClsMin, TrackTPCCRowsMin,
		TrackITSNClsMin, TrackITSNClsIBMin:
		return PolicyLowerLimit
	case TrackTPCSClsMax:
		return PolicyUpperLimit
	case TrackEtaMax, TrackDCAxyMax, TrackDCAzMax:
		return PolicyAbsUpperLimit
	case TrackDCAMin:
		return PolicyAbsLowerLimit
	default:
		panic(fmt.Sprintf("unhandled track criterion %d", k))
	}
}

func (k TrackCriterionKind) value(t *Track) float64 {
	switch k {
	case TrackSign:
		return t.Sign
	case TrackPtMin:
		return t.Pt
	case TrackEtaMax:
		return t.Eta
	case TrackTPCNClsMin:
		return t.TPCNClsFound
	case TrackTPCFClsMin:
		return t.TPCFClsFraction
	case TrackTPCCRowsMin:
		return t.TPCNClsCrossedRows
	case TrackTPCSClsMax:
		return t.TPCNClsShared
	case TrackITSNClsMin:
		return t.ITSNCls
	case TrackITSNClsIBMin:
		return t.ITSNClsInnerBarrel
	case TrackDCAxyMax, TrackDCAMin:
		return t.DCAxy
	case TrackDCAzMax:
		return t.DCAz
	default:
		panic(fmt.Sprintf("unhandled track criterion %d", k))
	}
}

// minimal reports whether the criterion participates in the cheap loosest
// variant prefilter run before full encoding.
func (k TrackCriterionKind) minimal() bool {
	switch k {
	case TrackSign, TrackPtMin, TrackEtaMax, TrackTPCNClsMin, TrackTPCCRowsMin,
		TrackITSNClsMin, TrackITSNClsIBMin, TrackDCAxyMax, TrackDCAzMax, TrackDCAMin:
		return true
	}
	return false
}

// TrackSelection encodes a track against an ordered list of criteria into a
// packed cut container, and independently encodes per-species PID sigma
// ceilings into a second container. It serves both primary tracks and, with
// the reduced daughter criterion set, V0 decay daughters.
type TrackSelection struct {
	kinds  []TrackCriterionKind
	sets   []CutVariantSet
	layout *ContainerLayout

	pidSigma   CutVariantSet
	species    []Species
	pThreshold float64
}

func newTrackSelection(kinds []TrackCriterionKind, values [][]float64,
	pidSigma []float64, speciesNames []string, pThreshold float64) (*TrackSelection, error) {

	ts := &TrackSelection{
		kinds:      kinds,
		sets:       make([]CutVariantSet, len(kinds)),
		pidSigma:   CutVariantSet{Values: pidSigma, Policy: PolicyAbsUpperLimit},
		pThreshold: pThreshold,
	}
	widths := make([]int, len(kinds))
	for i, k := range kinds {
		if len(values[i]) == 0 {
			return nil, fmt.Errorf("criterion %d has no configured variants", k)
		}
		ts.sets[i] = CutVariantSet{Values: values[i], Policy: k.policy()}
		widths[i] = len(values[i])
	}
	layout, err := NewContainerLayout(widths)
	if err != nil {
		return nil, fmt.Errorf("track cut container: %w", err)
	}
	ts.layout = layout

	for _, name := range speciesNames {
		sp, err := ParseSpecies(name)
		if err != nil {
			return nil, err
		}
		ts.species = append(ts.species, sp)
	}
	if pidBits := len(ts.species) * len(pidSigma); pidBits > ContainerBits {
		return nil, fmt.Errorf("PID container: %d species x %d variants = %d bits exceeds %d",
			len(ts.species), len(pidSigma), pidBits, ContainerBits)
	}
	return ts, nil
}

// NewTrackSelection builds the primary-track selection from configuration.
// The criterion order fixes the container bit layout.
func NewTrackSelection(cfg TrackCutsConfig) (*TrackSelection, error) {
	kinds := []TrackCriterionKind{
		TrackSign, TrackPtMin, TrackEtaMax,
		TrackTPCNClsMin, TrackTPCFClsMin, TrackTPCCRowsMin, TrackTPCSClsMax,
		TrackITSNClsMin, TrackITSNClsIBMin,
		TrackDCAxyMax, TrackDCAzMax,
	}
	values := [][]float64{
		cfg.Sign, cfg.PtMin, cfg.EtaMax,
		cfg.TPCNClsMin, cfg.TPCFClsMin, cfg.TPCCRowsMin, cfg.TPCSClsMax,
		cfg.ITSNClsMin, cfg.ITSNClsIBMin,
		cfg.DCAxyMax, cfg.DCAzMax,
	}
	return newTrackSelection(kinds, values, cfg.PIDNSigmaMax, cfg.PIDSpecies, cfg.PIDMomentumThreshold)
}

// NewDaughterSelection builds the reduced selection applied to V0 decay
// daughters: sign, eta, TPC clusters, DCA floor, plus the daughter PID list.
func NewDaughterSelection(cfg DaughterCutsConfig, pThreshold float64) (*TrackSelection, error) {
	kinds := []TrackCriterionKind{TrackSign, TrackEtaMax, TrackTPCNClsMin, TrackDCAMin}
	values := [][]float64{cfg.Sign, cfg.EtaMax, cfg.TPCNClsMin, cfg.DCAMin}
	return newTrackSelection(kinds, values, cfg.PIDNSigmaMax, cfg.PIDSpecies, pThreshold)
}

// IsSelectedMinimal applies only the loosest configured variant of each
// minimal criterion. It exists for early rejection: a track failing here can
// never set a container bit for those criteria, so full encoding is skipped.
func (ts *TrackSelection) IsSelectedMinimal(t *Track) bool {
	for i, k := range ts.kinds {
		if !k.minimal() {
			continue
		}
		if !ts.sets[i].MinimalPass(k.value(t)) {
			return false
		}
	}
	return true
}

// pidValue is the PID observable for one species hypothesis: the TPC sigma
// alone below the momentum threshold, the TPC/TOF quadrature above it.
func (ts *TrackSelection) pidValue(t *Track, sp Species) float64 {
	if t.P < ts.pThreshold {
		return t.NSigmaTPC[sp]
	}
	return math.Hypot(t.NSigmaTPC[sp], t.NSigmaTOF[sp])
}

// CutContainer runs the full multi-variant encoding. The first return value
// packs one bit range per criterion; the second packs, for each configured
// species in order, one bit per PID sigma variant. Both are pure functions of
// the track and the configuration.
func (ts *TrackSelection) CutContainer(t *Track) (cuts, pid uint64) {
	masks := make([]uint64, len(ts.kinds))
	for i, k := range ts.kinds {
		masks[i] = ts.sets[i].Mask(k.value(t))
	}
	cuts = ts.layout.Pack(masks)

	width := uint(ts.pidSigma.NVariants())
	for j, sp := range ts.species {
		pid |= ts.pidSigma.Mask(ts.pidValue(t, sp)) << (uint(j) * width)
	}
	return cuts, pid
}

// FullyPassed reports whether every variant bit of every criterion is set.
func (ts *TrackSelection) FullyPassed(cuts uint64) bool {
	return ts.layout.AllSet(cuts)
}

// Layout exposes the container layout, mainly for downstream unpacking.
func (ts *TrackSelection) Layout() *ContainerLayout { return ts.layout }
