package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lucventura/clinicday/internal/ics"
)

var exportOutputFlag string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a date's schedule as iCalendar",
	Long:  `Writes the date's appointments and availability blocks as an .ics document to stdout or a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		d, err := service.GetDay(date)
		if err != nil {
			return fmt.Errorf("failed to get day %s: %w", date, err)
		}

		out, err := ics.Export(d, settings.ClinicName)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", date, err)
		}

		if exportOutputFlag != "" {
			if err := os.WriteFile(exportOutputFlag, []byte(out), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportOutputFlag, err)
			}
			fmt.Printf("✓ Exported %s to %s\n", date, exportOutputFlag)
			return nil
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "Write to file instead of stdout")
}
