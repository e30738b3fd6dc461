package skim

import "testing"

func TestNSigmaGate_TPCBranchBelowThreshold(t *testing.T) {
	gate := NSigmaGate{UseCombined: true, PThreshold: 0.4, TPCMax: 5, CombinedMax: 5}

	// Below the momentum threshold only the TPC sigma is tested; the TOF
	// value must not matter.
	if !gate.Passes(0.3, 4.9, 100) {
		t.Error("TPC sigma inside ceiling rejected below threshold")
	}
	if gate.Passes(0.3, -5.1, 0) {
		t.Error("TPC sigma outside ceiling accepted below threshold")
	}
}

func TestNSigmaGate_QuadratureBranchAboveThreshold(t *testing.T) {
	gate := NSigmaGate{UseCombined: true, PThreshold: 0.4, TPCMax: 5, CombinedMax: 5}

	// hypot(3, 3.9) ~ 4.92 < 5
	if !gate.Passes(0.8, 3, 3.9) {
		t.Error("combined sigma inside ceiling rejected")
	}
	// hypot(4, 4) ~ 5.66 > 5
	if gate.Passes(0.8, 4, 4) {
		t.Error("combined sigma outside ceiling accepted")
	}
}

func TestNSigmaGate_CombinedDisabledAlwaysRejects(t *testing.T) {
	// The TPC-only fallback for this mode does not exist; with the
	// combined flag off the gate rejects every leg.
	gate := NSigmaGate{UseCombined: false, PThreshold: 0.4, TPCMax: 5, CombinedMax: 5}

	if gate.Passes(0.3, 0, 0) {
		t.Error("gate passed with combined PID disabled")
	}
	if gate.Passes(2.0, 0, 0) {
		t.Error("gate passed with combined PID disabled at high momentum")
	}
}
