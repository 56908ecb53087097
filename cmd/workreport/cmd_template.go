package main

import (
	"fmt"

	"github.com/scottbrown/workreport/internal/config"
	"github.com/scottbrown/workreport/internal/report"
	"github.com/spf13/cobra"
)

var showReportTemplate bool

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Output configuration template",
	Long:  "Output a YAML configuration template and exit. With --report, print the default report template instead.",
	Args:  cobra.NoArgs,
	// The templates need no report directory.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		if showReportTemplate {
			fmt.Fprint(cmd.OutOrStdout(), string(report.DefaultTemplate()))
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), config.GetTemplate())
	},
}
