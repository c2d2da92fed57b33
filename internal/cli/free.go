package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var freeFormatFlag string

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "Show the free time remaining on a date",
	Long:  `Shows each availability block's open sub-intervals after subtracting booked appointments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		slots, err := service.FreeTime(date)
		if err != nil {
			return fmt.Errorf("failed to compute free time for %s: %w", date, err)
		}

		if freeFormatFlag != "" {
			format, err := parseFormat(freeFormatFlag)
			if err != nil {
				return err
			}
			switch format {
			case FormatJSON:
				return formatFreeSlotsJSON(slots)
			case FormatTSV:
				return formatFreeSlotsTSV(slots)
			case FormatCSV:
				return formatFreeSlotsCSV(slots)
			}
			return nil
		}

		if len(slots) == 0 {
			fmt.Printf("No free time on %s\n", date)
			return nil
		}

		fmt.Printf("Free time on %s:\n\n", date)
		for _, s := range slots {
			fmt.Printf("%s-%s  %s (%d min)\n",
				offsetClock(s.Segment.StartOffsetMinutes), offsetClock(s.Segment.EndOffsetMinutes),
				s.Label, s.Segment.DurationMinutes())
		}

		return nil
	},
}

func init() {
	freeCmd.Flags().StringVar(&freeFormatFlag, "format", "", "Output format (json, tsv, csv)")
}
