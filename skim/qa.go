package skim

import "go-hep.org/x/hep/hbook"

// Histogram names booked by NewQARegistry.
const (
	HistEventZvtx       = "event/zvtx"
	HistEventMult       = "event/mult"
	HistEventSphericity = "event/sphericity"

	HistTrackPt  = "track/pt"
	HistTrackEta = "track/eta"
	HistTrackPhi = "track/phi"

	HistV0CPA        = "v0/cpa"
	HistV0MassBefore = "v0/mass_before"
	HistV0MassAfter  = "v0/mass_after"

	HistPairMassBefore = "pair/mass_before"
	HistPairMassAfter  = "pair/mass_after"
)

// QARegistry holds the quality-assurance histograms filled alongside the
// selection passes. Filling is best-effort bookkeeping for offline plots and
// must never influence or abort event processing; fills with unknown names
// are silently dropped.
type QARegistry struct {
	hists map[string]*hbook.H1D
}

// NewQARegistry books the standard histogram set.
func NewQARegistry() *QARegistry {
	qa := &QARegistry{hists: make(map[string]*hbook.H1D)}
	qa.book(HistEventZvtx, 300, -15, 15)
	qa.book(HistEventMult, 1000, 0, 10000)
	qa.book(HistEventSphericity, 100, 0, 1)
	qa.book(HistTrackPt, 240, 0, 6)
	qa.book(HistTrackEta, 200, -1.5, 1.5)
	qa.book(HistTrackPhi, 200, 0, 6.3)
	qa.book(HistV0CPA, 100, 0.9, 1)
	qa.book(HistV0MassBefore, 400, 0.9, 1.3)
	qa.book(HistV0MassAfter, 400, 0.9, 1.3)
	qa.book(HistPairMassBefore, 400, 0.95, 1.15)
	qa.book(HistPairMassAfter, 400, 0.95, 1.15)
	return qa
}

func (qa *QARegistry) book(name string, n int, lo, hi float64) {
	h := hbook.NewH1D(n, lo, hi)
	h.Ann["name"] = name
	qa.hists[name] = h
}

// Fill adds one entry with unit weight. Unknown names are ignored.
func (qa *QARegistry) Fill(name string, v float64) {
	if qa == nil {
		return
	}
	if h, ok := qa.hists[name]; ok {
		h.Fill(v, 1)
	}
}

// Histogram returns the booked histogram, or nil if unknown.
func (qa *QARegistry) Histogram(name string) *hbook.H1D {
	if qa == nil {
		return nil
	}
	return qa.hists[name]
}
