package skim

// Collision is the read-only per-event input supplied by the event driver.
type Collision struct {
	Run int // run number, keys the magnetic-field cache

	// Primary vertex position (cm).
	VtxX float64
	VtxY float64
	VtxZ float64

	// Multiplicity estimators; which one lands on the event record depends
	// on the configured run era.
	MultV0M float64 // Run 2 estimator
	MultT0M float64 // Run 3 estimator

	TriggerFired bool // the configured trigger class fired
	OfflineOK    bool // offline quality selection passed
}

// EventRecord is the one output row produced per processed collision.
// Immutable once the collision selection has run.
type EventRecord struct {
	VtxZ       float64 `yaml:"vtx_z"`
	Mult       float64 `yaml:"mult"`
	Sphericity float64 `yaml:"sphericity"`
	MagField   float64 `yaml:"mag_field"` // tesla
	Selected   bool    `yaml:"selected"`
}
