package skim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBundleValidates(t *testing.T) {
	assert.NoError(t, DefaultBundle().Validate())
}

func TestLoadBundle_OverridesOnTopOfDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
trigger: true
event:
  zvtx_max: 8.0
track:
  pt_min: [0.5]
fields:
  529691: 0.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	bundle, err := LoadBundle(path)
	require.NoError(t, err)

	assert.True(t, bundle.Trigger)
	assert.Equal(t, 8.0, bundle.Event.ZvtxMax)
	assert.Equal(t, []float64{0.5}, bundle.Track.PtMin)
	assert.Equal(t, 0.5, bundle.Fields[529691])

	// Untouched sections keep their defaults.
	assert.Equal(t, []float64{0.8, 0.7, 0.9}, bundle.Track.EtaMax)
	assert.True(t, bundle.StoreV0)
	assert.NoError(t, bundle.Validate())
}

func TestLoadBundle_Errors(t *testing.T) {
	_, err := LoadBundle(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trigger: [not, a, bool]"), 0o644))
	_, err = LoadBundle(path)
	assert.Error(t, err)
}

func TestBundleValidate_Rejections(t *testing.T) {
	cases := map[string]func(*Bundle){
		"non-positive zvtx":        func(b *Bundle) { b.Event.ZvtxMax = 0 },
		"unknown track species":    func(b *Bundle) { b.Track.PIDSpecies = []string{"muon"} },
		"empty track species":      func(b *Bundle) { b.Track.PIDSpecies = nil },
		"unknown daughter species": func(b *Bundle) { b.V0.Daughter.PIDSpecies = []string{"tau"} },
		"non-positive pid split":   func(b *Bundle) { b.Track.PIDMomentumThreshold = 0 },
		"empty v0 mass window":     func(b *Bundle) { b.V0.InvMassLow = 1.2; b.V0.InvMassUp = 1.1 },
		"empty kaon window":        func(b *Bundle) { b.V0.RejectKaons = true; b.V0.KaonMassLow = 0.6; b.V0.KaonMassUp = 0.5 },
		"empty pair mass window":   func(b *Bundle) { b.Pair.InvMassLow = 1.1; b.Pair.InvMassUp = 1.0 },
		"non-positive leg mass":    func(b *Bundle) { b.Pair.LegOneMass = 0 },
		"unknown pair species":     func(b *Bundle) { b.Pair.PIDSpecies = "muon" },
	}
	for name, mutate := range cases {
		bundle := DefaultBundle()
		mutate(bundle)
		assert.Error(t, bundle.Validate(), name)
	}
}
