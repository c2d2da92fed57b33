package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lucventura/clinicday/internal/clinic"
	"github.com/lucventura/clinicday/internal/config"
	"github.com/lucventura/clinicday/internal/logger"
	"github.com/lucventura/clinicday/internal/storage"
	"github.com/lucventura/clinicday/internal/tui"
)

var (
	service  *clinic.Service
	settings config.Settings

	dateFlag string
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "clinicday",
	Short: "ClinicDay - Daily Schedule Manager",
	Long:  `A terminal-based scheduler for a small clinic: availability blocks, bookings, and an overlap-aware day view.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		date, err := getEffectiveDate()
		if err != nil {
			return err
		}
		model := tui.NewModel(service, settings, date)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	cobra.OnInitialize(initService)

	RootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Date to operate on (YYYY-MM-DD, default today)")

	RootCmd.AddCommand(dayCmd)
	RootCmd.AddCommand(freeCmd)
	RootCmd.AddCommand(weekCmd)
	RootCmd.AddCommand(bookCmd)
	RootCmd.AddCommand(cancelCmd)
	RootCmd.AddCommand(blockCmd)
	RootCmd.AddCommand(exportCmd)
}

// initService wires storage, repository and service from the configured data directory
func initService() {
	logger.Initialize()

	dbPath, err := config.DatabasePath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting database path: %v\n", err)
		os.Exit(1)
	}

	db, err := storage.NewDatabase(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}

	settings, err = config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	repo := clinic.NewRepository(db, logger.GetLogger())
	service = clinic.NewService(repo, logger.GetLogger())
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
