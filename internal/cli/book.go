package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lucventura/clinicday/internal/clinic"
)

var (
	bookStartFlag  string
	bookEndFlag    string
	bookReasonFlag string
)

// bookCmd books an appointment
var bookCmd = &cobra.Command{
	Use:   "book [patient]",
	Short: "Book an appointment",
	Long:  `Books an appointment on the effective date. Run without arguments for interactive input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		var appt *clinic.Appointment
		if len(args) == 0 {
			appt, err = runInteractiveBookForm(date)
		} else {
			appt, err = bookFromFlags(date, strings.Join(args, " "))
		}
		if err != nil {
			return fmt.Errorf("failed to book appointment: %w", err)
		}

		fmt.Printf("✓ Booked: %s\n", appt.ID)
		fmt.Printf("  Patient: %s\n", appt.PatientName)
		fmt.Printf("  Time: %s %s-%s\n", date, appt.Start.Format("15:04"), appt.End.Format("15:04"))
		if appt.Reason != "" {
			fmt.Printf("  Reason: %s\n", appt.Reason)
		}

		return nil
	},
}

func bookFromFlags(date, patient string) (*clinic.Appointment, error) {
	if bookStartFlag == "" || bookEndFlag == "" {
		return nil, fmt.Errorf("--start and --end are required (HH:MM)")
	}
	start, err := parseClock(date, bookStartFlag)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(date, bookEndFlag)
	if err != nil {
		return nil, err
	}
	return service.BookAppointment(patient, bookReasonFlag, start, end)
}

// runInteractiveBookForm runs an interactive form to book an appointment
func runInteractiveBookForm(date string) (*clinic.Appointment, error) {
	var patient string
	var startStr string
	var endStr string
	var reason string

	clockValidator := func(s string) error {
		_, err := parseClock(date, strings.TrimSpace(s))
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Patient name").
				Value(&patient).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("patient name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&startStr).
				Validate(clockValidator),
			huh.NewInput().
				Title("End time (HH:MM)").
				Value(&endStr).
				Validate(clockValidator),
			huh.NewInput().
				Title("Reason (optional)").
				Value(&reason),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("form cancelled: %w", err)
	}

	start, err := parseClock(date, strings.TrimSpace(startStr))
	if err != nil {
		return nil, err
	}
	end, err := parseClock(date, strings.TrimSpace(endStr))
	if err != nil {
		return nil, err
	}

	return service.BookAppointment(strings.TrimSpace(patient), strings.TrimSpace(reason), start, end)
}

// cancelCmd cancels an appointment by ID
var cancelCmd = &cobra.Command{
	Use:   "cancel <appointment-id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		if err := service.CancelAppointment(args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Cancelled: %s\n", args[0])
		return nil
	},
}

func init() {
	bookCmd.Flags().StringVar(&bookStartFlag, "start", "", "Start time (HH:MM)")
	bookCmd.Flags().StringVar(&bookEndFlag, "end", "", "End time (HH:MM)")
	bookCmd.Flags().StringVar(&bookReasonFlag, "reason", "", "Reason for the visit")
}
