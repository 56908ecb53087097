package main

import (
	"fmt"
	"time"

	"github.com/scottbrown/workreport/internal/report"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [YYYYMMDD]",
	Short: "Create a work report from the template",
	Long:  "Create the work report for the given date, or for today when no date is given. An existing report is never overwritten.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return manager.CreateForToday()
		}

		date := args[0]
		if err := validateDate(date); err != nil {
			return err
		}
		return manager.CreateForDate(date)
	},
}

func validateDate(date string) error {
	if len(date) != len(report.DateLayout) {
		return fmt.Errorf("invalid date %q: expected YYYYMMDD", date)
	}
	if _, err := time.Parse(report.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	return nil
}
