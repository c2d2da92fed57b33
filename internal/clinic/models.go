package clinic

import (
	"time"

	"github.com/lucventura/clinicday/internal/layout"
	"github.com/rs/xid"
)

// DateFormat is the canonical day key used in storage and on the CLI.
const DateFormat = "2006-01-02"

// Appointment represents one booked patient visit
type Appointment struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name"`
	Reason      string    `json:"reason,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// NewAppointment creates a new appointment with a generated ID
func NewAppointment(patientName, reason string, start, end time.Time) *Appointment {
	return &Appointment{
		ID:          xid.New().String(),
		PatientName: patientName,
		Reason:      reason,
		Start:       start,
		End:         end,
	}
}

// Event converts the appointment to its layout-engine representation
func (a *Appointment) Event() layout.Event {
	return layout.Event{ID: a.ID, Start: a.Start, End: a.End, Kind: layout.KindAppointment}
}

// AvailabilityBlock represents a stretch of bookable time on a given day.
// Rows are already concrete per-day intervals; recurring weekly templates
// are expanded before storage.
type AvailabilityBlock struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewAvailabilityBlock creates a new availability block with a generated ID
func NewAvailabilityBlock(label string, start, end time.Time) *AvailabilityBlock {
	return &AvailabilityBlock{
		ID:    xid.New().String(),
		Label: label,
		Start: start,
		End:   end,
	}
}

// Event converts the block to its layout-engine representation
func (b *AvailabilityBlock) Event() layout.Event {
	return layout.Event{ID: b.ID, Start: b.Start, End: b.End, Kind: layout.KindBlock}
}

// Day aggregates everything scheduled on a single date
type Day struct {
	Date         string              `json:"date"` // YYYY-MM-DD format
	Appointments []Appointment       `json:"appointments"`
	Blocks       []AvailabilityBlock `json:"blocks"`
}

// NewDay creates a new empty day for the given date
func NewDay(date string) *Day {
	return &Day{
		Date:         date,
		Appointments: make([]Appointment, 0),
		Blocks:       make([]AvailabilityBlock, 0),
	}
}

// Start returns midnight local time of the day.
func (d *Day) Start() (time.Time, error) {
	return time.ParseInLocation(DateFormat, d.Date, time.Local)
}
