package skim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Producer runs the full per-event pipeline: event selection, primary-track
// filtering, decay-candidate validation, pair reconstruction, and output
// table assembly. One producer processes events sequentially; per-event
// state (the primary-track lookup) lives in the EventTable and is rebuilt
// from empty every call.
type Producer struct {
	trigger    bool
	storeV0    bool
	storePairs bool

	colCuts   *CollisionSelection
	trackCuts *TrackSelection
	v0Cuts    *V0Selection
	pairs     *PairBuilder

	fields fieldCache

	qa      *QARegistry
	Metrics *Metrics
}

// NewProducer validates the bundle and builds every selection. All
// configuration errors (bad species, empty variant lists, container
// overflow) surface here, before the first event.
func NewProducer(bundle *Bundle, provider FieldProvider) (*Producer, error) {
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	qa := NewQARegistry()

	trackCuts, err := NewTrackSelection(bundle.Track)
	if err != nil {
		return nil, fmt.Errorf("track selection: %w", err)
	}
	v0Cuts, err := NewV0Selection(bundle.V0, bundle.Track.PIDMomentumThreshold, qa)
	if err != nil {
		return nil, fmt.Errorf("v0 selection: %w", err)
	}
	pairs, err := NewPairBuilder(bundle.Pair, qa)
	if err != nil {
		return nil, fmt.Errorf("pair builder: %w", err)
	}

	return &Producer{
		trigger:    bundle.Trigger,
		storeV0:    bundle.StoreV0,
		storePairs: bundle.StorePairs,
		colCuts:    NewCollisionSelection(bundle.Event, bundle.Run3, qa),
		trackCuts:  trackCuts,
		v0Cuts:     v0Cuts,
		pairs:      pairs,
		fields:     fieldCache{provider: provider},
		qa:         qa,
		Metrics:    &Metrics{},
	}, nil
}

// QA exposes the histogram registry for dumping.
func (p *Producer) QA() *QARegistry { return p.qa }

// ProcessEvent runs the pipeline over one collision and its track and decay
// candidate collections.
//
// In trigger mode a rejected collision still yields an event row with no
// particle content, so downstream luminosity accounting stays exact; in
// skimming mode it yields (nil, nil). A magnetic-field lookup miss is
// returned as an error and must abort the job.
func (p *Producer) ProcessEvent(col *Collision, tracks []Track, v0s []V0) (*EventTable, error) {
	p.Metrics.EventsSeen++

	tesla, err := p.fields.fieldFor(col.Run)
	if err != nil {
		return nil, fmt.Errorf("run %d: %w", col.Run, err)
	}

	selected := p.colCuts.IsSelected(col)
	event := EventRecord{
		VtxZ:       col.VtxZ,
		Mult:       p.colCuts.Multiplicity(col),
		Sphericity: p.colCuts.Sphericity(tracks),
		MagField:   tesla,
		Selected:   selected,
	}

	if !selected {
		if !p.trigger {
			return nil, nil
		}
		p.Metrics.EventsStored++
		return NewEventTable(event), nil
	}
	p.Metrics.EventsSelected++
	p.Metrics.EventsStored++

	table := NewEventTable(event)
	p.scanTracks(table, tracks)
	if p.storeV0 {
		p.scanV0s(table, v0s)
	}
	if p.storePairs {
		p.buildPairs(table, tracks)
	}
	logrus.Debugf("run %d: stored %d particles (%d primaries)",
		col.Run, len(table.Particles), table.NPrimaries())
	return table, nil
}

// scanTracks emits one PrimaryTrack row per track passing the minimal
// pre-filter. Selection is encoded, not enforced: the cut and PID containers
// carry the per-variant outcomes, and analysis applies them later.
func (p *Producer) scanTracks(table *EventTable, tracks []Track) {
	for i := range tracks {
		t := &tracks[i]
		p.Metrics.TracksSeen++
		if !p.trackCuts.IsSelectedMinimal(t) {
			continue
		}
		p.qa.Fill(HistTrackPt, t.Pt)
		p.qa.Fill(HistTrackEta, t.Eta)
		p.qa.Fill(HistTrackPhi, t.Phi)

		cuts, pid := p.trackCuts.CutContainer(t)
		table.AppendPrimary(ParticleRecord{
			Pt: t.Pt, Eta: t.Eta, Phi: t.Phi, P: t.P, Sign: t.Sign,
			Cuts: cuts, PID: pid, DCAxy: t.DCAxy,
		}, t.ID)
		p.Metrics.TracksSelected++
	}
}

// scanV0s validates each pre-reconstructed candidate and emits, in order,
// the positive daughter row, the negative daughter row, and the candidate
// row referencing both. Emission order matters: the composite's ChildRows
// are the indices of the two rows just appended.
func (p *Producer) scanV0s(table *EventTable, v0s []V0) {
	for i := range v0s {
		v := &v0s[i]
		p.Metrics.V0sSeen++
		if !p.v0Cuts.IsSelectedMinimal(v) {
			continue
		}
		cont := p.v0Cuts.CutContainer(v)
		if cont.V0 == 0 || cont.PosCuts == 0 || cont.NegCuts == 0 {
			continue
		}
		mHyp, mAntiHyp := p.v0Cuts.Masses(v)

		posRow := table.AppendDaughter(ParticleRecord{
			Type: ParticleTypeV0Child,
			Pt:   v.PosTrack.Pt, Eta: v.PosTrack.Eta, Phi: v.PosTrack.Phi,
			P: v.PosTrack.P, Sign: v.PosTrack.Sign,
			Cuts: cont.PosCuts, PID: cont.PosPID, DCAxy: v.PosTrack.DCAxy,
		}, 0, table.PrimaryRow(v.PosTrack.ID))

		negRow := table.AppendDaughter(ParticleRecord{
			Type: ParticleTypeV0Child,
			Pt:   v.NegTrack.Pt, Eta: v.NegTrack.Eta, Phi: v.NegTrack.Phi,
			P: v.NegTrack.P, Sign: v.NegTrack.Sign,
			Cuts: cont.NegCuts, PID: cont.NegPID, DCAxy: v.NegTrack.DCAxy,
		}, 1, table.PrimaryRow(v.NegTrack.ID))

		mass := mHyp
		if !(mHyp > p.v0Cuts.massLow && mHyp < p.v0Cuts.massUp) {
			mass = mAntiHyp
		}
		table.AppendComposite(ParticleRecord{
			Type: ParticleTypeV0,
			Pt:   v.Pt, Eta: v.Eta, Phi: v.Phi,
			Mass: mass, MassHyp: mHyp, MassAntiHyp: mAntiHyp,
			Cuts: cont.V0, CPA: v.CPA,
		}, posRow, negRow)
		p.Metrics.V0sStored++
	}
}

// buildPairs runs the combinatorial pair search over the event's tracks and
// emits, per accepted pair, the two leg rows followed by the pair row.
func (p *Producer) buildPairs(table *EventTable, tracks []Track) {
	massOne, massTwo := p.pairs.LegMasses()
	p.pairs.ForEachPair(tracks, func(i, j int, kin PairKinematics) {
		one, two := &tracks[i], &tracks[j]

		cutsOne, pidOne := p.trackCuts.CutContainer(one)
		rowOne := table.AppendDaughter(ParticleRecord{
			Type: ParticleTypePairLeg,
			Pt:   one.Pt, Eta: one.Eta, Phi: one.Phi, P: one.P,
			Mass: massOne, Sign: one.Sign,
			Cuts: cutsOne, PID: pidOne, DCAxy: one.DCAxy,
		}, 0, table.PrimaryRow(one.ID))

		cutsTwo, pidTwo := p.trackCuts.CutContainer(two)
		rowTwo := table.AppendDaughter(ParticleRecord{
			Type: ParticleTypePairLeg,
			Pt:   two.Pt, Eta: two.Eta, Phi: two.Phi, P: two.P,
			Mass: massTwo, Sign: two.Sign,
			Cuts: cutsTwo, PID: pidTwo, DCAxy: two.DCAxy,
		}, 1, table.PrimaryRow(two.ID))

		table.AppendComposite(ParticleRecord{
			Type: ParticleTypePair,
			Pt:   kin.Pt, Eta: kin.Eta, Phi: kin.Phi, P: kin.P,
			Mass: kin.Mass,
			Cuts: p.pairs.CutContainer(kin),
		}, rowOne, rowTwo)
		p.Metrics.PairsStored++
	})
}
