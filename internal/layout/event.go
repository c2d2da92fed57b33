// Package layout implements the day-calendar overlap resolution engine:
// clustering of overlapping events, minimal-width column assignment, block
// segmentation, and time-to-pixel geometry mapping. It is a pure library:
// it performs no I/O and holds no state between calls.
package layout

import "time"

// EventKind distinguishes a bookable appointment from an availability block
type EventKind string

const (
	KindAppointment EventKind = "appointment"
	KindBlock       EventKind = "block"
)

// Event is one schedulable interval on the calendar. Intervals are half-open:
// an event covers [Start, End), so an event ending exactly when another
// begins does not overlap it.
type Event struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Kind  EventKind `json:"kind"`
}

// Overlaps reports whether the two half-open intervals intersect.
// Events with Start >= End are a caller-side data-integrity issue; the
// predicate stays well-defined for them but the result is not meaningful.
func (e Event) Overlaps(other Event) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Valid reports whether the event has a positive-length interval.
func (e Event) Valid() bool {
	return e.Start.Before(e.End)
}
