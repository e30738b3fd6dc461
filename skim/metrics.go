package skim

import "fmt"

// Metrics aggregates per-job counters for final reporting. Write-only during
// processing, read at the end; single-writer like the rest of the producer.
type Metrics struct {
	EventsSeen     int // collisions handed to the producer
	EventsSelected int // collisions passing the event selection
	EventsStored   int // event rows emitted (== seen in trigger mode)

	TracksSeen     int // tracks scanned
	TracksSelected int // primary-track rows emitted

	V0sSeen     int // decay candidates scanned
	V0sStored   int // decay-candidate rows emitted
	PairsStored int // pair-candidate rows emitted
}

// Print displays the aggregated counters at the end of the job.
func (m *Metrics) Print() {
	fmt.Println("=== Producer Metrics ===")
	fmt.Printf("Events seen      : %d\n", m.EventsSeen)
	fmt.Printf("Events selected  : %d\n", m.EventsSelected)
	fmt.Printf("Events stored    : %d\n", m.EventsStored)
	fmt.Printf("Tracks seen      : %d\n", m.TracksSeen)
	fmt.Printf("Tracks selected  : %d\n", m.TracksSelected)
	fmt.Printf("V0s seen         : %d\n", m.V0sSeen)
	fmt.Printf("V0s stored       : %d\n", m.V0sStored)
	fmt.Printf("Pairs stored     : %d\n", m.PairsStored)
}
