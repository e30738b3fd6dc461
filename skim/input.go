package skim

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// The events file is a YAML list of collisions with inline track and V0
// collections. It is a driver convenience for offline runs and tests; in
// production the event loop feeds the producer directly.

type trackSpec struct {
	ID   int     `yaml:"id"`
	Pt   float64 `yaml:"pt"`
	Eta  float64 `yaml:"eta"`
	Phi  float64 `yaml:"phi"`
	Sign float64 `yaml:"sign"`

	TPCNClsFound       float64 `yaml:"tpc_ncls_found"`
	TPCFClsFraction    float64 `yaml:"tpc_fcls_fraction"`
	TPCNClsCrossedRows float64 `yaml:"tpc_ncls_crossed_rows"`
	TPCNClsShared      float64 `yaml:"tpc_ncls_shared"`
	TPCChi2NCl         float64 `yaml:"tpc_chi2_ncl"`
	ITSNCls            float64 `yaml:"its_ncls"`
	ITSNClsInnerBarrel float64 `yaml:"its_ncls_inner_barrel"`
	ITSChi2NCl         float64 `yaml:"its_chi2_ncl"`
	DCAxy              float64 `yaml:"dca_xy"`
	DCAz               float64 `yaml:"dca_z"`

	NSigmaTPC map[string]float64 `yaml:"nsigma_tpc"`
	NSigmaTOF map[string]float64 `yaml:"nsigma_tof"`
	HasTOF    bool               `yaml:"has_tof"`
	Tracklet  bool               `yaml:"tracklet"`
}

type v0Spec struct {
	Pos trackSpec `yaml:"pos"`
	Neg trackSpec `yaml:"neg"`

	Pt  float64 `yaml:"pt"`
	Eta float64 `yaml:"eta"`
	Phi float64 `yaml:"phi"`

	DecayVtx     [3]float64 `yaml:"decay_vtx"`
	TranRadius   float64    `yaml:"tran_radius"`
	DCADaughters float64    `yaml:"dca_daughters"`
	CPA          float64    `yaml:"cpa"`
}

type eventSpec struct {
	Run          int     `yaml:"run"`
	VtxX         float64 `yaml:"vtx_x"`
	VtxY         float64 `yaml:"vtx_y"`
	VtxZ         float64 `yaml:"vtx_z"`
	MultV0M      float64 `yaml:"mult_v0m"`
	MultT0M      float64 `yaml:"mult_t0m"`
	TriggerFired bool    `yaml:"trigger_fired"`
	OfflineOK    bool    `yaml:"offline_ok"`

	Tracks []trackSpec `yaml:"tracks"`
	V0s    []v0Spec    `yaml:"v0s"`
}

// InputEvent is one decoded collision with its associated collections.
type InputEvent struct {
	Collision Collision
	Tracks    []Track
	V0s       []V0
}

func (s *trackSpec) toTrack() (Track, error) {
	t := Track{
		ID: s.ID, Pt: s.Pt, Eta: s.Eta, Phi: s.Phi, Sign: s.Sign,
		TPCNClsFound:       s.TPCNClsFound,
		TPCFClsFraction:    s.TPCFClsFraction,
		TPCNClsCrossedRows: s.TPCNClsCrossedRows,
		TPCNClsShared:      s.TPCNClsShared,
		TPCChi2NCl:         s.TPCChi2NCl,
		ITSNCls:            s.ITSNCls,
		ITSNClsInnerBarrel: s.ITSNClsInnerBarrel,
		ITSChi2NCl:         s.ITSChi2NCl,
		DCAxy:              s.DCAxy,
		DCAz:               s.DCAz,
		HasTOF:             s.HasTOF,
		Tracklet:           s.Tracklet,
	}
	// p = pT cosh(eta)
	t.P = s.Pt * math.Cosh(s.Eta)
	for name, v := range s.NSigmaTPC {
		sp, err := ParseSpecies(name)
		if err != nil {
			return Track{}, fmt.Errorf("track %d nsigma_tpc: %w", s.ID, err)
		}
		t.NSigmaTPC[sp] = v
	}
	for name, v := range s.NSigmaTOF {
		sp, err := ParseSpecies(name)
		if err != nil {
			return Track{}, fmt.Errorf("track %d nsigma_tof: %w", s.ID, err)
		}
		t.NSigmaTOF[sp] = v
	}
	return t, nil
}

// LoadEvents reads and decodes a YAML events file.
func LoadEvents(path string) ([]InputEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	var specs []eventSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("parsing events: %w", err)
	}

	events := make([]InputEvent, 0, len(specs))
	for n, spec := range specs {
		ev := InputEvent{
			Collision: Collision{
				Run:  spec.Run,
				VtxX: spec.VtxX, VtxY: spec.VtxY, VtxZ: spec.VtxZ,
				MultV0M:      spec.MultV0M,
				MultT0M:      spec.MultT0M,
				TriggerFired: spec.TriggerFired,
				OfflineOK:    spec.OfflineOK,
			},
		}
		for i := range spec.Tracks {
			t, err := spec.Tracks[i].toTrack()
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", n, err)
			}
			ev.Tracks = append(ev.Tracks, t)
		}
		for i := range spec.V0s {
			vs := &spec.V0s[i]
			pos, err := vs.Pos.toTrack()
			if err != nil {
				return nil, fmt.Errorf("event %d v0 %d: %w", n, i, err)
			}
			neg, err := vs.Neg.toTrack()
			if err != nil {
				return nil, fmt.Errorf("event %d v0 %d: %w", n, i, err)
			}
			ev.V0s = append(ev.V0s, V0{
				PosTrack: pos, NegTrack: neg,
				Pt: vs.Pt, Eta: vs.Eta, Phi: vs.Phi,
				DecayVtx:     vs.DecayVtx,
				TranRadius:   vs.TranRadius,
				DCADaughters: vs.DCADaughters,
				CPA:          vs.CPA,
			})
		}
		events = append(events, ev)
	}
	return events, nil
}
