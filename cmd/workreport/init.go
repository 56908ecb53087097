package main

import "github.com/scottbrown/workreport/internal/config"

func init() {
	// Add subcommands
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(tidyCmd)
	rootCmd.AddCommand(templateCmd)

	// Root command flags
	rootCmd.PersistentFlags().StringVarP(&reportDir, "dir", "d", "", "Report directory (default: the directory of the executable)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "", "Path to configuration file (default: <dir>/"+config.DefaultFileName+" if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress output")

	templateCmd.Flags().BoolVar(&showReportTemplate, "report", false, "Print the default report template")
	tidyCmd.Flags().IntVar(&keepDays, "keep-days", 0, "Remove archived reports older than this many days (default: retention.keep_days)")
}
