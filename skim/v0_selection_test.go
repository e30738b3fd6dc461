package skim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wideV0Config widens the default mass window so the helper candidate's
// proton-pion hypothesis (about 1.219 GeV) is accepted.
func wideV0Config() V0CutsConfig {
	cfg := DefaultBundle().V0
	cfg.InvMassLow = 1.0
	cfg.InvMassUp = 1.4
	return cfg
}

func newWideV0Selection(t *testing.T) *V0Selection {
	t.Helper()
	vs, err := NewV0Selection(wideV0Config(), 0.75, nil)
	require.NoError(t, err)
	return vs
}

func TestV0Selection_AcceptsSoundCandidate(t *testing.T) {
	vs := newWideV0Selection(t)
	v := lambdaV0(1, 2)
	assert.True(t, vs.IsSelectedMinimal(&v))
}

func TestV0Selection_MinimalRejections(t *testing.T) {
	vs := newWideV0Selection(t)

	breakers := map[string]func(*V0){
		"pt below loosest floor":     func(v *V0) { v.Pt = 0.2 },
		"daughter dca too large":     func(v *V0) { v.DCADaughters = 2.0 },
		"pointing angle too small":   func(v *V0) { v.CPA = 0.9 },
		"radius below floor":         func(v *V0) { v.TranRadius = 0.1 },
		"radius above ceiling":       func(v *V0) { v.TranRadius = 150 },
		"decay vertex out of reach":  func(v *V0) { v.DecayVtx = [3]float64{1, 2, 120} },
		"positive daughter eta":      func(v *V0) { v.PosTrack.Eta = 0.9 },
		"negative daughter clusters": func(v *V0) { v.NegTrack.TPCNClsFound = 40 },
		"daughter dca floor":         func(v *V0) { v.NegTrack.DCAxy = 0.01 },
	}
	for name, breaker := range breakers {
		v := lambdaV0(1, 2)
		breaker(&v)
		assert.False(t, vs.IsSelectedMinimal(&v), name)
	}
}

func TestV0Selection_MassWindowRejects(t *testing.T) {
	// The default Lambda window does not reach the helper candidate's
	// hypotheses, so the same geometry fails on mass alone.
	vs, err := NewV0Selection(DefaultBundle().V0, 0.75, nil)
	require.NoError(t, err)
	v := lambdaV0(1, 2)
	assert.True(t, v.CPA > 0.995) // geometry is fine
	assert.False(t, vs.IsSelectedMinimal(&v))
}

func TestV0Selection_Masses(t *testing.T) {
	vs := newWideV0Selection(t)
	v := lambdaV0(1, 2)

	mHyp, mAntiHyp := vs.Masses(&v)
	assert.InDelta(t, 1.2187, mHyp, 1e-3)
	assert.InDelta(t, 1.5641, mAntiHyp, 1e-3)
	assert.True(t, vs.InMassWindow(mHyp, mAntiHyp))
	assert.False(t, vs.InMassWindow(0.9, 1.6))
}

func TestV0Selection_KaonRejection(t *testing.T) {
	// The helper candidate's pion-pion mass is about 0.647 GeV; a rejection
	// window around that value must veto it.
	cfg := wideV0Config()
	cfg.RejectKaons = true
	cfg.KaonMassLow = 0.6
	cfg.KaonMassUp = 0.7
	vs, err := NewV0Selection(cfg, 0.75, nil)
	require.NoError(t, err)

	v := lambdaV0(1, 2)
	assert.False(t, vs.IsSelectedMinimal(&v))

	// Shifting the window off the competing mass restores acceptance.
	cfg.KaonMassLow = 0.48
	cfg.KaonMassUp = 0.515
	vs, err = NewV0Selection(cfg, 0.75, nil)
	require.NoError(t, err)
	assert.True(t, vs.IsSelectedMinimal(&v))
}

func TestV0Selection_CutContainer(t *testing.T) {
	vs := newWideV0Selection(t)
	v := lambdaV0(1, 2)

	cont := vs.CutContainer(&v)

	// The helper candidate passes every variant of every candidate-level
	// criterion: 3+2+2+1+1+1 bits, all set.
	assert.Equal(t, uint64(1<<10-1), cont.V0)
	assert.True(t, vs.Layout().AllSet(cont.V0))

	// Daughter layout is sign(2) eta(1) clusters(3) dca-floor(2); the legs
	// differ only in which sign variant matched.
	assert.Equal(t, uint64(0b11111110), cont.PosCuts)
	assert.Equal(t, uint64(0b11111101), cont.NegCuts)

	// Neutral sigmas pass both variants for both daughter species.
	assert.Equal(t, uint64(0b1111), cont.PosPID)
	assert.Equal(t, uint64(0b1111), cont.NegPID)
}

func TestV0Selection_EmptyVariantListFails(t *testing.T) {
	cfg := wideV0Config()
	cfg.CPAMin = nil
	_, err := NewV0Selection(cfg, 0.75, nil)
	assert.Error(t, err)
}
