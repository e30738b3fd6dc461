package skim

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsFixture = `
- run: 529691
  vtx_z: 5.0
  mult_v0m: 120
  trigger_fired: true
  tracks:
    - id: 1
      pt: 0.5
      eta: 0.3
      phi: 1.2
      sign: 1
      tpc_ncls_found: 90
      dca_xy: 0.05
      nsigma_tpc:
        kaon: 1.5
      nsigma_tof:
        kaon: 0.8
      has_tof: true
  v0s:
    - pos:
        id: 2
        pt: 0.8
        sign: 1
      neg:
        id: 3
        pt: 0.2
        sign: -1
      pt: 0.9
      decay_vtx: [1, 2, 3]
      tran_radius: 5
      dca_daughters: 0.5
      cpa: 0.999
- run: 529692
  vtx_z: -2.0
`

func writeEvents(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEvents(t *testing.T) {
	events, err := LoadEvents(writeEvents(t, eventsFixture))
	require.NoError(t, err)
	require.Len(t, events, 2)

	ev := events[0]
	assert.Equal(t, 529691, ev.Collision.Run)
	assert.Equal(t, 5.0, ev.Collision.VtxZ)
	assert.True(t, ev.Collision.TriggerFired)

	require.Len(t, ev.Tracks, 1)
	tr := ev.Tracks[0]
	assert.Equal(t, 1, tr.ID)
	assert.InDelta(t, 0.5*math.Cosh(0.3), tr.P, 1e-12)
	assert.Equal(t, 1.5, tr.NSigmaTPC[SpeciesKaon])
	assert.Equal(t, 0.8, tr.NSigmaTOF[SpeciesKaon])
	assert.Zero(t, tr.NSigmaTPC[SpeciesPion])
	assert.True(t, tr.HasTOF)

	require.Len(t, ev.V0s, 1)
	v := ev.V0s[0]
	assert.Equal(t, 2, v.PosTrack.ID)
	assert.Equal(t, 3, v.NegTrack.ID)
	assert.Equal(t, [3]float64{1, 2, 3}, v.DecayVtx)
	assert.Equal(t, 0.999, v.CPA)

	assert.Equal(t, 529692, events[1].Collision.Run)
	assert.Empty(t, events[1].Tracks)
}

func TestLoadEvents_Errors(t *testing.T) {
	_, err := LoadEvents(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadEvents(writeEvents(t, "not a list"))
	assert.Error(t, err)

	badSpecies := `
- run: 1
  tracks:
    - id: 1
      nsigma_tpc:
        muon: 2.0
`
	_, err = LoadEvents(writeEvents(t, badSpecies))
	assert.ErrorContains(t, err, "muon")
}
