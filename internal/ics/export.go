// Package ics renders a day's schedule as an iCalendar document so it can
// be imported into external calendar apps.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/lucventura/clinicday/internal/clinic"
)

// Export serializes the day's appointments as a VCALENDAR. Availability
// blocks are exported as transparent events so they don't mark the time as
// busy in the importing calendar.
func Export(day *clinic.Day, clinicName string) (string, error) {
	if day == nil {
		return "", fmt.Errorf("no day to export")
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(fmt.Sprintf("-//%s//clinicday//EN", clinicName))

	now := time.Now()

	for _, appt := range day.Appointments {
		event := cal.AddEvent(appt.ID)
		event.SetDtStampTime(now)
		event.SetStartAt(appt.Start)
		event.SetEndAt(appt.End)
		event.SetSummary(appt.PatientName)
		if appt.Reason != "" {
			event.SetDescription(appt.Reason)
		}
	}

	for _, block := range day.Blocks {
		event := cal.AddEvent(block.ID)
		event.SetDtStampTime(now)
		event.SetStartAt(block.Start)
		event.SetEndAt(block.End)
		event.SetSummary(block.Label)
		event.SetTimeTransparency(ical.TransparencyTransparent)
	}

	return cal.Serialize(), nil
}
