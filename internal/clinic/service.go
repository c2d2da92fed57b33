package clinic

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lucventura/clinicday/internal/layout"
)

// Service composes the repository with the layout engine. It owns the
// validation the engine deliberately leaves to its caller: degenerate
// intervals are rejected on write and filtered (with a warning) on read.
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

// NewService creates a new clinic service
func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: DefaultLogger(logger)}
}

// DayLayout is the fully resolved rendering input for one date: every event
// positioned in its cluster column, plus the visible free segments of each
// availability block.
type DayLayout struct {
	Date         string                           `json:"date"`
	Events       []layout.PositionedEvent         `json:"events"`
	FreeSegments map[string][]layout.BlockSegment `json:"free_segments"` // keyed by block ID
}

// FreeSlot is one visible sub-interval of a block, annotated for display.
type FreeSlot struct {
	BlockID string              `json:"block_id"`
	Label   string              `json:"label"`
	Segment layout.BlockSegment `json:"segment"`
}

// GetDay loads the raw day (no layout).
func (s *Service) GetDay(date string) (*Day, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	return s.repo.GetDay(date)
}

// LayoutDay loads a date and runs the full layout pass: clustering and
// column assignment over appointments and blocks together, then per-block
// segmentation against the appointment set.
func (s *Service) LayoutDay(date string) (*DayLayout, error) {
	d, err := s.GetDay(date)
	if err != nil {
		return nil, err
	}

	dayStart, err := d.Start()
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	events := s.collectEvents(d)

	appointments := make([]layout.Event, 0, len(d.Appointments))
	for _, e := range events {
		if e.Kind == layout.KindAppointment {
			appointments = append(appointments, e)
		}
	}

	result := &DayLayout{
		Date:         date,
		Events:       layout.LayoutDay(events),
		FreeSegments: make(map[string][]layout.BlockSegment),
	}
	for _, block := range d.Blocks {
		e := block.Event()
		if !e.Valid() {
			continue
		}
		result.FreeSegments[block.ID] = layout.SegmentBlock(e, appointments, dayStart)
	}

	return result, nil
}

// FreeTime returns the visible availability of a date: each block's free
// segments after subtracting booked appointments, ordered by block then by
// segment start.
func (s *Service) FreeTime(date string) ([]FreeSlot, error) {
	d, err := s.GetDay(date)
	if err != nil {
		return nil, err
	}

	dayStart, err := d.Start()
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	var appointments []layout.Event
	for _, appt := range d.Appointments {
		if e := appt.Event(); e.Valid() {
			appointments = append(appointments, e)
		}
	}

	var slots []FreeSlot
	for _, block := range d.Blocks {
		e := block.Event()
		if !e.Valid() {
			s.logger.Warn("FreeTime: skipping degenerate block", "block_id", block.ID, "date", date)
			continue
		}
		for _, segment := range layout.SegmentBlock(e, appointments, dayStart) {
			slots = append(slots, FreeSlot{BlockID: block.ID, Label: block.Label, Segment: segment})
		}
	}

	return slots, nil
}

// BookAppointment validates and stores a new appointment.
func (s *Service) BookAppointment(patientName, reason string, start, end time.Time) (*Appointment, error) {
	if patientName == "" {
		return nil, fmt.Errorf("patient name is required")
	}
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	appt := NewAppointment(patientName, reason, start, end)
	if err := s.repo.AddAppointment(start.Format(DateFormat), appt); err != nil {
		return nil, fmt.Errorf("failed to save appointment: %w", err)
	}
	return appt, nil
}

// AddBlock validates and stores a new availability block.
func (s *Service) AddBlock(label string, start, end time.Time) (*AvailabilityBlock, error) {
	if label == "" {
		label = "Available"
	}
	if err := validateInterval(start, end); err != nil {
		return nil, err
	}

	block := NewAvailabilityBlock(label, start, end)
	if err := s.repo.AddBlock(start.Format(DateFormat), block); err != nil {
		return nil, fmt.Errorf("failed to save availability block: %w", err)
	}
	return block, nil
}

// CancelAppointment removes an appointment by ID.
func (s *Service) CancelAppointment(id string) error {
	if err := s.repo.DeleteAppointment(id); err != nil {
		return fmt.Errorf("failed to cancel appointment %s: %w", id, err)
	}
	return nil
}

// RemoveBlock removes an availability block by ID.
func (s *Service) RemoveBlock(id string) error {
	if err := s.repo.DeleteBlock(id); err != nil {
		return fmt.Errorf("failed to remove availability block %s: %w", id, err)
	}
	return nil
}

// collectEvents converts a day's rows into engine events, dropping any with
// non-positive length. Bad rows are a data-integrity problem logged here,
// never an engine failure.
func (s *Service) collectEvents(d *Day) []layout.Event {
	events := make([]layout.Event, 0, len(d.Appointments)+len(d.Blocks))
	for _, appt := range d.Appointments {
		e := appt.Event()
		if !e.Valid() {
			s.logger.Warn("skipping degenerate appointment", "appointment_id", appt.ID, "date", d.Date)
			continue
		}
		events = append(events, e)
	}
	for _, block := range d.Blocks {
		e := block.Event()
		if !e.Valid() {
			s.logger.Warn("skipping degenerate block", "block_id", block.ID, "date", d.Date)
			continue
		}
		events = append(events, e)
	}
	return events
}

// ValidateDate checks the YYYY-MM-DD day key format.
func ValidateDate(date string) error {
	if _, err := time.ParseInLocation(DateFormat, date, time.Local); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return nil
}

func validateInterval(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("start and end times are required")
	}
	if !start.Before(end) {
		return fmt.Errorf("end time must be after start time")
	}
	if start.Format(DateFormat) != end.Format(DateFormat) {
		return fmt.Errorf("appointments and blocks must start and end on the same day")
	}
	return nil
}
