package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	blockStartFlag string
	blockEndFlag   string
	blockJsonFlag  bool
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Manage availability blocks",
	Long:  "Add, list, and delete the availability blocks that define bookable time.",
}

// blockAddCmd adds a new availability block
var blockAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Add an availability block",
	Long:  `Adds an availability block on the effective date. The label is optional.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		date, err := getEffectiveDate()
		if err != nil {
			return err
		}

		if blockStartFlag == "" || blockEndFlag == "" {
			return fmt.Errorf("--start and --end are required (HH:MM)")
		}
		start, err := parseClock(date, blockStartFlag)
		if err != nil {
			return err
		}
		end, err := parseClock(date, blockEndFlag)
		if err != nil {
			return err
		}

		block, err := service.AddBlock(strings.Join(args, " "), start, end)
		if err != nil {
			return fmt.Errorf("failed to add availability block: %w", err)
		}

		fmt.Printf("✓ Added block: %s\n", block.ID)
		fmt.Printf("  %s %s-%s (%s)\n", date, block.Start.Format("15:04"), block.End.Format("15:04"), block.Label)
		return nil
	},
}

// blockListCmd lists availability blocks
var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List availability blocks",
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

		if blockJsonFlag {
			if err := json.NewEncoder(os.Stdout).Encode(d.Blocks); err != nil {
				return fmt.Errorf("failed to encode blocks as JSON: %w", err)
			}
			return nil
		}

		if len(d.Blocks) == 0 {
			fmt.Printf("No availability blocks for %s\n", date)
			return nil
		}

		fmt.Printf("Availability for %s:\n\n", date)
		for _, b := range d.Blocks {
			fmt.Printf("%.8s  %s-%s  %s\n", b.ID, b.Start.Format("15:04"), b.End.Format("15:04"), b.Label)
		}
		return nil
	},
}

// blockDeleteCmd deletes an availability block
var blockDeleteCmd = &cobra.Command{
	Use:   "delete <block-id>",
	Short: "Delete an availability block",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return fmt.Errorf("clinic service not initialized")
		}

		if err := service.RemoveBlock(args[0]); err != nil {
			return err
		}

		fmt.Printf("✓ Deleted block: %s\n", args[0])
		return nil
	},
}

func init() {
	blockAddCmd.Flags().StringVar(&blockStartFlag, "start", "", "Start time (HH:MM)")
	blockAddCmd.Flags().StringVar(&blockEndFlag, "end", "", "End time (HH:MM)")
	blockListCmd.Flags().BoolVar(&blockJsonFlag, "json", false, "Output as JSON")

	blockCmd.AddCommand(blockAddCmd)
	blockCmd.AddCommand(blockListCmd)
	blockCmd.AddCommand(blockDeleteCmd)
}
