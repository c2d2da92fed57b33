package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lucventura/clinicday/internal/clinic"
	"github.com/lucventura/clinicday/internal/layout"
)

type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatTSV  OutputFormat = "tsv"
	FormatCSV  OutputFormat = "csv"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "tsv":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, tsv, csv)", s)
	}
}

// getEffectiveDate resolves the --date flag, defaulting to today.
func getEffectiveDate() (string, error) {
	if dateFlag == "" {
		return time.Now().Format(clinic.DateFormat), nil
	}
	if err := clinic.ValidateDate(dateFlag); err != nil {
		return "", err
	}
	return dateFlag, nil
}

// parseClock combines a YYYY-MM-DD date with an HH:MM clock time.
func parseClock(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(clinic.DateFormat+" 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", clock, err)
	}
	return t, nil
}

// offsetClock renders a minutes-since-midnight offset as an HH:MM clock string.
func offsetClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func formatFreeSlotsJSON(slots []clinic.FreeSlot) error {
	return json.NewEncoder(os.Stdout).Encode(slots)
}

func formatFreeSlotsTSV(slots []clinic.FreeSlot) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "BLOCK\tLABEL\tFROM\tTO\tMINUTES")
	for _, s := range slots {
		fmt.Fprintf(tw, "%.8s\t%s\t%s\t%s\t%d\n",
			s.BlockID, s.Label,
			offsetClock(s.Segment.StartOffsetMinutes), offsetClock(s.Segment.EndOffsetMinutes),
			s.Segment.DurationMinutes())
	}
	tw.Flush()
	return nil
}

func formatFreeSlotsCSV(slots []clinic.FreeSlot) error {
	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"BLOCK", "LABEL", "FROM", "TO", "MINUTES"})
	for _, s := range slots {
		record := []string{
			s.BlockID, s.Label,
			offsetClock(s.Segment.StartOffsetMinutes), offsetClock(s.Segment.EndOffsetMinutes),
			fmt.Sprintf("%d", s.Segment.DurationMinutes()),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatLayoutJSON(dl *clinic.DayLayout) error {
	return json.NewEncoder(os.Stdout).Encode(dl)
}

func formatLayoutTSV(dl *clinic.DayLayout) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)
	fmt.Fprintln(tw, "ID\tKIND\tFROM\tTO\tCOL\tOF")
	for _, e := range dl.Events {
		fmt.Fprintf(tw, "%.8s\t%s\t%s\t%s\t%d\t%d\n",
			e.ID, e.Kind,
			e.Start.Format("15:04"), e.End.Format("15:04"),
			e.Column+1, e.TotalColumns)
	}
	tw.Flush()
	return nil
}

func formatEventColumn(e layout.PositionedEvent) string {
	if e.TotalColumns <= 1 {
		return ""
	}
	return fmt.Sprintf(" [%d/%d]", e.Column+1, e.TotalColumns)
}
