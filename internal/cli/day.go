package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dayJsonFlag bool

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show the resolved schedule for a date",
	Long:  `Shows the date's appointments and availability blocks with overlap columns resolved (useful for piping to other tools).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		dl, err := service.LayoutDay(date)
		if err != nil {
			return fmt.Errorf("failed to lay out %s: %w", date, err)
		}

		if dayJsonFlag {
			return formatLayoutJSON(dl)
		}

		d, err := service.GetDay(date)
		if err != nil {
			return fmt.Errorf("failed to get day %s: %w", date, err)
		}

		if len(dl.Events) == 0 {
			fmt.Printf("Nothing scheduled for %s\n", date)
			return nil
		}

		byID := make(map[string]string, len(d.Appointments)+len(d.Blocks))
		for _, appt := range d.Appointments {
			byID[appt.ID] = appt.PatientName
		}
		for _, block := range d.Blocks {
			byID[block.ID] = block.Label
		}

		fmt.Printf("Schedule for %s:\n\n", date)
		for _, e := range dl.Events {
			fmt.Printf("%s-%s  %s%s\n",
				e.Start.Format("15:04"), e.End.Format("15:04"),
				byID[e.ID], formatEventColumn(e))
		}

		return nil
	},
}

func init() {
	dayCmd.Flags().BoolVar(&dayJsonFlag, "json", false, "Output as JSON")
}
