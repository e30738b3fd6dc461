package skim

import "fmt"

// Species enumerates the particle hypotheses for which per-detector nsigma
// deviations are stored on a track.
type Species int

const (
	SpeciesElectron Species = iota
	SpeciesPion
	SpeciesKaon
	SpeciesProton
	SpeciesDeuteron

	NumSpecies
)

var speciesNames = map[string]Species{
	"electron": SpeciesElectron,
	"pion":     SpeciesPion,
	"kaon":     SpeciesKaon,
	"proton":   SpeciesProton,
	"deuteron": SpeciesDeuteron,
}

// ParseSpecies maps a configuration name to a Species.
func ParseSpecies(name string) (Species, error) {
	s, ok := speciesNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown PID species %q", name)
	}
	return s, nil
}

// String returns the configuration name of the species.
func (s Species) String() string {
	for name, sp := range speciesNames {
		if sp == s {
			return name
		}
	}
	return fmt.Sprintf("species(%d)", int(s))
}

// Particle masses in GeV/c^2, used for invariant-mass hypotheses.
const (
	MassPion   = 0.13957039
	MassKaon   = 0.493677
	MassProton = 0.93827208
)

// Track is a read-only view of one reconstructed charged-particle track as
// supplied by the event driver. The producer never mutates tracks; it only
// evaluates them against the configured selections.
type Track struct {
	// ID is the detector-level global identifier, used to match decay
	// daughters and pair legs back to the primary-track table rows.
	ID int

	Pt   float64 // transverse momentum (GeV/c)
	Eta  float64 // pseudorapidity
	Phi  float64 // azimuth (rad)
	P    float64 // total momentum (GeV/c)
	Sign float64 // charge sign, -1 or +1

	// TPC quality.
	TPCNClsFound       float64 // clusters found
	TPCFClsFraction    float64 // found over findable
	TPCNClsCrossedRows float64
	TPCNClsShared      float64
	TPCChi2NCl         float64

	// ITS quality.
	ITSNCls            float64
	ITSNClsInnerBarrel float64
	ITSChi2NCl         float64

	// Impact parameters to the primary vertex (cm).
	DCAxy float64
	DCAz  float64

	// Per-species PID deviations from the two independent detectors.
	NSigmaTPC [NumSpecies]float64
	NSigmaTOF [NumSpecies]float64

	// HasTOF flags a valid TOF timing match.
	HasTOF bool

	// Tracklet marks a Run 2 tracklet-type segment; tracklets never
	// participate in pair building.
	Tracklet bool
}
