package skim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle is the full producer configuration, loadable from a YAML file.
// Zero values are not meaningful defaults; start from DefaultBundle and
// override, or load a complete file.
type Bundle struct {
	// Trigger selects trigger mode: rejected collisions still produce an
	// event row (with no candidates) so luminosity accounting stays exact.
	// False selects skimming mode: rejected collisions are dropped.
	Trigger bool `yaml:"trigger"`

	// Run3 selects the Run 3 multiplicity estimator on the event record.
	Run3 bool `yaml:"run3"`

	StoreV0    bool `yaml:"store_v0"`
	StorePairs bool `yaml:"store_pairs"`

	// RequireITSHitOrTOF is recognized and validated but currently inert;
	// the daughter check needs TOF timing information that the input does
	// not carry yet.
	RequireITSHitOrTOF bool `yaml:"require_its_hit_or_tof"`

	Event EventCutsConfig `yaml:"event"`
	Track TrackCutsConfig `yaml:"track"`
	V0    V0CutsConfig    `yaml:"v0"`
	Pair  PairCutsConfig  `yaml:"pair"`

	// Fields maps run number to the nominal magnetic field in tesla,
	// backing the CLI's StaticFieldProvider.
	Fields map[int]float64 `yaml:"fields"`
}

// DefaultBundle returns the standard production configuration: a
// Lambda-window V0 family and a phi->KK pair family.
func DefaultBundle() *Bundle {
	return &Bundle{
		Trigger:    false,
		StoreV0:    true,
		StorePairs: true,
		Event: EventCutsConfig{
			ZvtxMax:      10.0,
			CheckTrigger: true,
			CheckOffline: false,
		},
		Track: TrackCutsConfig{
			Sign:                 []float64{-1, 1},
			PtMin:                []float64{0.4, 0.6, 0.5},
			EtaMax:               []float64{0.8, 0.7, 0.9},
			TPCNClsMin:           []float64{80, 70, 60},
			TPCFClsMin:           []float64{0.7, 0.83, 0.9},
			TPCCRowsMin:          []float64{70, 60, 80},
			TPCSClsMax:           []float64{0.1, 160},
			ITSNClsMin:           []float64{-1, 2, 4},
			ITSNClsIBMin:         []float64{-1, 1},
			DCAxyMax:             []float64{0.1, 3.5},
			DCAzMax:              []float64{0.2, 3.5},
			PIDNSigmaMax:         []float64{3.5, 3, 2.5},
			PIDSpecies:           []string{"pion", "kaon", "proton", "deuteron"},
			PIDMomentumThreshold: 0.75,
		},
		V0: V0CutsConfig{
			PtMin:       []float64{0.3, 0.4, 0.5},
			DCADaughMax: []float64{1.2, 1.5},
			CPAMin:      []float64{0.99, 0.995},
			TranRadMin:  []float64{0.2},
			TranRadMax:  []float64{100},
			DecVtxMax:   []float64{100},
			Daughter: DaughterCutsConfig{
				Sign:         []float64{-1, 1},
				EtaMax:       []float64{0.8},
				TPCNClsMin:   []float64{80, 70, 60},
				DCAMin:       []float64{0.05, 0.06},
				PIDNSigmaMax: []float64{5, 4},
				PIDSpecies:   []string{"pion", "proton"},
			},
			InvMassLow:  1.08,
			InvMassUp:   1.15,
			RejectKaons: false,
			KaonMassLow: 0.48,
			KaonMassUp:  0.515,
		},
		Pair: PairCutsConfig{
			PtMin:      []float64{0.3, 0.4, 0.5},
			LegOne:     LegWindowConfig{PtLow: 0.14, PtHigh: 1.5, PLow: 0.14, PHigh: 1.5, EtaLow: -0.8, EtaHigh: 0.8},
			LegTwo:     LegWindowConfig{PtLow: 0.14, PtHigh: 1.5, PLow: 0.14, PHigh: 1.5, EtaLow: -0.8, EtaHigh: 0.8},
			LegOneMass: MassKaon,
			LegTwoMass: MassKaon,
			InvMassLow: 1.005,
			InvMassUp:  1.035,

			RejectCompeting:  false,
			CompetingMassLow: 0.48,
			CompetingMassUp:  0.515,

			PIDSpecies:           "kaon",
			UseCombinedPID:       true,
			PIDMomentumThreshold: 0.4,
			NSigmaTPCMax:         5.0,
			NSigmaCombinedMax:    5.0,
		},
	}
}

// LoadBundle reads and parses a YAML configuration file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	bundle := DefaultBundle()
	if err := yaml.Unmarshal(data, bundle); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return bundle, nil
}

// Validate checks option consistency before any event is processed. Packed
// bit-width validation happens separately in the selection constructors; both
// run inside NewProducer, so a bad configuration never sees an event.
func (b *Bundle) Validate() error {
	if b.Event.ZvtxMax <= 0 {
		return fmt.Errorf("event zvtx_max must be positive, got %g", b.Event.ZvtxMax)
	}
	for _, name := range b.Track.PIDSpecies {
		if _, err := ParseSpecies(name); err != nil {
			return fmt.Errorf("track pid_species: %w", err)
		}
	}
	for _, name := range b.V0.Daughter.PIDSpecies {
		if _, err := ParseSpecies(name); err != nil {
			return fmt.Errorf("v0 daughter pid_species: %w", err)
		}
	}
	if len(b.Track.PIDSpecies) == 0 {
		return fmt.Errorf("track pid_species must not be empty")
	}
	if b.Track.PIDMomentumThreshold <= 0 {
		return fmt.Errorf("track pid_momentum_threshold must be positive, got %g", b.Track.PIDMomentumThreshold)
	}
	if b.V0.InvMassLow >= b.V0.InvMassUp {
		return fmt.Errorf("v0 mass window [%g, %g] is empty", b.V0.InvMassLow, b.V0.InvMassUp)
	}
	if b.V0.RejectKaons && b.V0.KaonMassLow >= b.V0.KaonMassUp {
		return fmt.Errorf("v0 kaon rejection window [%g, %g] is empty", b.V0.KaonMassLow, b.V0.KaonMassUp)
	}
	if b.Pair.InvMassLow >= b.Pair.InvMassUp {
		return fmt.Errorf("pair mass window [%g, %g] is empty", b.Pair.InvMassLow, b.Pair.InvMassUp)
	}
	if b.Pair.RejectCompeting && b.Pair.CompetingMassLow >= b.Pair.CompetingMassUp {
		return fmt.Errorf("pair competing window [%g, %g] is empty", b.Pair.CompetingMassLow, b.Pair.CompetingMassUp)
	}
	if b.Pair.LegOneMass <= 0 || b.Pair.LegTwoMass <= 0 {
		return fmt.Errorf("pair leg masses must be positive, got %g and %g", b.Pair.LegOneMass, b.Pair.LegTwoMass)
	}
	if b.Pair.PIDMomentumThreshold <= 0 {
		return fmt.Errorf("pair pid_momentum_threshold must be positive, got %g", b.Pair.PIDMomentumThreshold)
	}
	if _, err := ParseSpecies(b.Pair.PIDSpecies); err != nil {
		return fmt.Errorf("pair pid_species: %w", err)
	}
	return nil
}
