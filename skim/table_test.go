package skim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTable_AppendPrimaryRegistersID(t *testing.T) {
	table := NewEventTable(EventRecord{})

	r0 := table.AppendPrimary(ParticleRecord{Pt: 0.5}, 11)
	r1 := table.AppendPrimary(ParticleRecord{Pt: 0.6}, 42)

	assert.Equal(t, 0, r0)
	assert.Equal(t, 1, r1)
	assert.Equal(t, 2, table.NPrimaries())

	assert.Equal(t, 0, table.PrimaryRow(11))
	assert.Equal(t, 1, table.PrimaryRow(42))
	assert.Equal(t, NoRow, table.PrimaryRow(99))
}

func TestEventTable_PrimaryRowsAreSentinelled(t *testing.T) {
	table := NewEventTable(EventRecord{})
	table.AppendPrimary(ParticleRecord{}, 11)

	rec := table.Particles[0]
	assert.Equal(t, ParticleTypeTrack, rec.Type)
	assert.Equal(t, [2]int{NoRow, NoRow}, rec.TrackRows)
	assert.Equal(t, [2]int{NoRow, NoRow}, rec.ChildRows)
}

func TestEventTable_DaughterSlotSemantics(t *testing.T) {
	table := NewEventTable(EventRecord{})
	table.AppendPrimary(ParticleRecord{}, 11)

	// Positive leg: match lands in slot 0, slot 1 stays sentinel.
	posRow := table.AppendDaughter(ParticleRecord{Type: ParticleTypeV0Child}, 0, table.PrimaryRow(11))
	assert.Equal(t, [2]int{0, NoRow}, table.Particles[posRow].TrackRows)

	// Negative leg without a primary match: sentinel in its slot too.
	negRow := table.AppendDaughter(ParticleRecord{Type: ParticleTypeV0Child}, 1, table.PrimaryRow(77))
	assert.Equal(t, [2]int{NoRow, NoRow}, table.Particles[negRow].TrackRows)
}

func TestEventTable_CompositeReferencesFullSequenceRows(t *testing.T) {
	table := NewEventTable(EventRecord{})
	table.AppendPrimary(ParticleRecord{}, 11)
	table.AppendPrimary(ParticleRecord{}, 42)

	posRow := table.AppendDaughter(ParticleRecord{Type: ParticleTypeV0Child}, 0, 0)
	negRow := table.AppendDaughter(ParticleRecord{Type: ParticleTypeV0Child}, 1, 1)
	v0Row := table.AppendComposite(ParticleRecord{Type: ParticleTypeV0}, posRow, negRow)

	// ChildRows index the full particle sequence, not the primary
	// subsequence: the daughters sit after the two primaries.
	assert.Equal(t, [2]int{2, 3}, table.Particles[v0Row].ChildRows)
	assert.Equal(t, [2]int{NoRow, NoRow}, table.Particles[v0Row].TrackRows)
}

func TestEventTable_LookupIsPerEvent(t *testing.T) {
	// A fresh table must know nothing about a previous event's tracks.
	first := NewEventTable(EventRecord{})
	first.AppendPrimary(ParticleRecord{}, 11)

	second := NewEventTable(EventRecord{})
	assert.Equal(t, NoRow, second.PrimaryRow(11))
	assert.Zero(t, second.NPrimaries())
}
