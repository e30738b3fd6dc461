package skim

// ParticleType tags a row of the heterogeneous per-event particle table.
type ParticleType int

const (
	ParticleTypeTrack ParticleType = iota
	ParticleTypeV0Child
	ParticleTypeV0
	ParticleTypePairLeg
	ParticleTypePair
)

// String returns the tag name used in dumps and test failure messages.
func (t ParticleType) String() string {
	switch t {
	case ParticleTypeTrack:
		return "track"
	case ParticleTypeV0Child:
		return "v0-child"
	case ParticleTypeV0:
		return "v0"
	case ParticleTypePairLeg:
		return "pair-leg"
	case ParticleTypePair:
		return "pair"
	default:
		return "unknown"
	}
}

// NoRow is the sentinel for an unresolved cross-reference: a daughter that
// was not independently selected as a primary track, or an unused slot.
const NoRow = -1

// ParticleRecord is one row of the per-event output table.
//
// Cross references use two explicitly named fields with distinct meanings:
//
//   - TrackRows (leaf rows, V0Child and PairLeg): the row index of the
//     matching track inside this event's PrimaryTrack subsequence, NoRow if
//     the daughter never entered it. Slot 0 is filled for the positive/first
//     leg, slot 1 for the negative/second leg; the other slot stays NoRow.
//   - ChildRows (composite rows, V0 and Pair): the row indices, within this
//     event's full particle sequence, of the two daughter rows appended just
//     before the composite.
//
// Row indices are stable identities within one event only.
type ParticleRecord struct {
	Type ParticleType `yaml:"type"`

	Pt   float64 `yaml:"pt"`
	Eta  float64 `yaml:"eta"`
	Phi  float64 `yaml:"phi"`
	P    float64 `yaml:"p"`
	Mass float64 `yaml:"mass"`
	Sign float64 `yaml:"sign"`

	Cuts uint64 `yaml:"cuts"`
	PID  uint64 `yaml:"pid"`

	// DCAxy is stored for track-type rows, CPA for V0 rows.
	DCAxy float64 `yaml:"dca_xy"`
	CPA   float64 `yaml:"cpa"`

	// Invariant-mass hypotheses for V0 rows.
	MassHyp     float64 `yaml:"mass_hyp"`
	MassAntiHyp float64 `yaml:"mass_anti_hyp"`

	TrackRows [2]int `yaml:"track_rows"`
	ChildRows [2]int `yaml:"child_rows"`
}

// EventTable is the append-only output of one processed collision: the event
// row plus its particle sequence. The primary-track identifier list is
// rebuilt from empty for every event; carrying entries across events would
// corrupt the cross references.
type EventTable struct {
	Event     EventRecord      `yaml:"event"`
	Particles []ParticleRecord `yaml:"particles"`

	primaryIDs []int // track IDs in PrimaryTrack row order
}

// NewEventTable starts the table for one collision.
func NewEventTable(event EventRecord) *EventTable {
	return &EventTable{Event: event}
}

// append adds a record and returns its row index.
func (t *EventTable) append(rec ParticleRecord) int {
	t.Particles = append(t.Particles, rec)
	return len(t.Particles) - 1
}

// AppendPrimary adds a PrimaryTrack row and registers the track identifier
// for later daughter matching. Both reference fields are sentinel-filled.
func (t *EventTable) AppendPrimary(rec ParticleRecord, trackID int) int {
	rec.Type = ParticleTypeTrack
	rec.TrackRows = [2]int{NoRow, NoRow}
	rec.ChildRows = [2]int{NoRow, NoRow}
	row := t.append(rec)
	t.primaryIDs = append(t.primaryIDs, trackID)
	return row
}

// PrimaryRow resolves a track identifier to its row inside the PrimaryTrack
// subsequence by linear scan, NoRow if the track was never stored.
func (t *EventTable) PrimaryRow(trackID int) int {
	for i, id := range t.primaryIDs {
		if id == trackID {
			return i
		}
	}
	return NoRow
}

// AppendDaughter adds a leaf row (V0Child or PairLeg). slot is 0 for the
// positive/first leg and 1 for the negative/second leg; the matching primary
// row (or NoRow) lands in that slot. Returns the appended row index, which
// the caller threads into the composite's ChildRows.
func (t *EventTable) AppendDaughter(rec ParticleRecord, slot int, primaryRow int) int {
	rec.TrackRows = [2]int{NoRow, NoRow}
	rec.TrackRows[slot] = primaryRow
	rec.ChildRows = [2]int{NoRow, NoRow}
	return t.append(rec)
}

// AppendComposite adds a composite row (V0 or Pair) referencing the two
// daughter rows just appended for it.
func (t *EventTable) AppendComposite(rec ParticleRecord, posRow, negRow int) int {
	rec.TrackRows = [2]int{NoRow, NoRow}
	rec.ChildRows = [2]int{posRow, negRow}
	return t.append(rec)
}

// NPrimaries returns the number of PrimaryTrack rows stored so far.
func (t *EventTable) NPrimaries() int { return len(t.primaryIDs) }
