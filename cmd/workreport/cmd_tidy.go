package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tidyCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Remove old reports that are safely archived",
	Long:  "Remove dated reports older than the retention period from the report directory. Reports without an identical archived copy are kept.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		days := appConfig.Retention.KeepDays
		if cmd.Flags().Changed("keep-days") {
			days = keepDays
		}

		summary, err := manager.Tidy(cmd.Context(), days)
		if err != nil {
			return fmt.Errorf("tidy failed: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d report(s), kept %d, freed %d bytes.\n",
				summary.Removed, summary.Kept, summary.BytesFreed)
		}
		return nil
	},
}
