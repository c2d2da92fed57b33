package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucventura/clinicday/internal/clinic"
)

var weekJsonFlag bool

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show free time for the next 7 days",
	Long:  `Shows each day's open availability for the week starting at the effective date (useful for finding the next bookable slot).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		start, err := time.ParseInLocation(clinic.DateFormat, date, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}

		weekSlots := make(map[string][]clinic.FreeSlot, 7)
		days := make([]string, 0, 7)
		for i := 0; i < 7; i++ {
			day := start.AddDate(0, 0, i).Format(clinic.DateFormat)
			slots, err := service.FreeTime(day)
			if err != nil {
				return fmt.Errorf("failed to compute free time for %s: %w", day, err)
			}
			days = append(days, day)
			weekSlots[day] = slots
		}

		if weekJsonFlag {
			return json.NewEncoder(os.Stdout).Encode(weekSlots)
		}

		for _, day := range days {
			slots := weekSlots[day]
			if len(slots) == 0 {
				fmt.Printf("%s: no free time\n", day)
				continue
			}
			fmt.Printf("%s:\n", day)
			for _, s := range slots {
				fmt.Printf("  %s-%s  %s (%d min)\n",
					offsetClock(s.Segment.StartOffsetMinutes), offsetClock(s.Segment.EndOffsetMinutes),
					s.Label, s.Segment.DurationMinutes())
			}
		}

		return nil
	},
}

func init() {
	weekCmd.Flags().BoolVar(&weekJsonFlag, "json", false, "Output as JSON")
}
