package skim

// EventCutsConfig groups the collision-level selection parameters.
type EventCutsConfig struct {
	ZvtxMax      float64 `yaml:"zvtx_max"`      // max |vertex z| (cm)
	CheckTrigger bool    `yaml:"check_trigger"` // require the trigger class to have fired
	CheckOffline bool    `yaml:"check_offline"` // require the offline quality selection
}

// TrackCutsConfig groups the primary-track selection variants. Every list is
// an ordered set of alternative thresholds consumed by the cut container
// encoder; list order is bit order and must stay stable.
type TrackCutsConfig struct {
	Sign         []float64 `yaml:"sign"`            // equal
	PtMin        []float64 `yaml:"pt_min"`          // lower limit (GeV/c)
	EtaMax       []float64 `yaml:"eta_max"`         // abs upper limit
	TPCNClsMin   []float64 `yaml:"tpc_ncls_min"`    // lower limit
	TPCFClsMin   []float64 `yaml:"tpc_fcls_min"`    // lower limit, found/findable
	TPCCRowsMin  []float64 `yaml:"tpc_crows_min"`   // lower limit
	TPCSClsMax   []float64 `yaml:"tpc_scls_max"`    // upper limit, shared clusters
	ITSNClsMin   []float64 `yaml:"its_ncls_min"`    // lower limit
	ITSNClsIBMin []float64 `yaml:"its_ncls_ib_min"` // lower limit, inner barrel
	DCAxyMax     []float64 `yaml:"dca_xy_max"`      // abs upper limit (cm)
	DCAzMax      []float64 `yaml:"dca_z_max"`       // abs upper limit (cm)

	PIDNSigmaMax         []float64 `yaml:"pid_nsigma_max"`         // abs upper limit
	PIDSpecies           []string  `yaml:"pid_species"`            // hypotheses to encode
	PIDMomentumThreshold float64   `yaml:"pid_momentum_threshold"` // TPC-only below, TPC+TOF quadrature above
}

// DaughterCutsConfig groups the decay-daughter track selection variants.
// Daughters use a reduced criterion set plus a DCA floor: genuine decay
// daughters must not point back at the primary vertex.
type DaughterCutsConfig struct {
	Sign         []float64 `yaml:"sign"`           // equal
	EtaMax       []float64 `yaml:"eta_max"`        // abs upper limit
	TPCNClsMin   []float64 `yaml:"tpc_ncls_min"`   // lower limit
	DCAMin       []float64 `yaml:"dca_min"`        // abs lower limit (cm)
	PIDNSigmaMax []float64 `yaml:"pid_nsigma_max"` // abs upper limit
	PIDSpecies   []string  `yaml:"pid_species"`
}

// V0CutsConfig groups the two-body decay-candidate selection.
type V0CutsConfig struct {
	PtMin       []float64 `yaml:"pt_min"`        // lower limit (GeV/c)
	DCADaughMax []float64 `yaml:"dca_daugh_max"` // upper limit, daughter separation (cm)
	CPAMin      []float64 `yaml:"cpa_min"`       // lower limit, cos pointing angle
	TranRadMin  []float64 `yaml:"tran_rad_min"`  // lower limit, decay radius (cm)
	TranRadMax  []float64 `yaml:"tran_rad_max"`  // upper limit
	DecVtxMax   []float64 `yaml:"dec_vtx_max"`   // abs upper limit per decay-vertex coordinate

	Daughter DaughterCutsConfig `yaml:"daughter"`

	InvMassLow float64 `yaml:"inv_mass_low"`
	InvMassUp  float64 `yaml:"inv_mass_up"`

	RejectKaons bool    `yaml:"reject_kaons"`
	KaonMassLow float64 `yaml:"kaon_mass_low"`
	KaonMassUp  float64 `yaml:"kaon_mass_up"`
}

// LegWindowConfig bounds one pair leg's kinematics.
type LegWindowConfig struct {
	PtLow  float64 `yaml:"pt_low"`
	PtHigh float64 `yaml:"pt_high"`
	PLow   float64 `yaml:"p_low"`
	PHigh  float64 `yaml:"p_high"`
	EtaLow  float64 `yaml:"eta_low"`
	EtaHigh float64 `yaml:"eta_high"`
}

// PairCutsConfig groups the same-event kinematic pair reconstruction.
type PairCutsConfig struct {
	PtMin []float64 `yaml:"pt_min"` // lower limit on the pair pT (container criterion)

	LegOne LegWindowConfig `yaml:"leg_one"`
	LegTwo LegWindowConfig `yaml:"leg_two"`

	// Assumed leg masses for the four-momentum sum (GeV/c^2).
	LegOneMass float64 `yaml:"leg_one_mass"`
	LegTwoMass float64 `yaml:"leg_two_mass"`

	InvMassLow float64 `yaml:"inv_mass_low"`
	InvMassUp  float64 `yaml:"inv_mass_up"`

	// Competing-hypothesis rejection window. Recognized and validated, but
	// not applied to the pair family.
	RejectCompeting  bool    `yaml:"reject_competing"`
	CompetingMassLow float64 `yaml:"competing_mass_low"`
	CompetingMassUp  float64 `yaml:"competing_mass_up"`

	// Leg PID gate. Below PIDMomentumThreshold the single-detector sigma is
	// tested against NSigmaTPCMax; above it the TPC/TOF quadrature is tested
	// against NSigmaCombinedMax. With UseCombinedPID false the gate always
	// fails; see NSigmaGate.
	PIDSpecies           string  `yaml:"pid_species"` // hypothesis whose sigmas feed the gate
	UseCombinedPID       bool    `yaml:"use_combined_pid"`
	PIDMomentumThreshold float64 `yaml:"pid_momentum_threshold"`
	NSigmaTPCMax         float64 `yaml:"nsigma_tpc_max"`
	NSigmaCombinedMax    float64 `yaml:"nsigma_combined_max"`
}
