package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive [FILE...]",
	Short: "Archive work reports without creating today's report",
	Long: `Archive the named report files into Archive/YYYY/MM of the report directory.
Without arguments every dated report in the report directory is archived.`,
	RunE: handleArchiveCmd,
}

func handleArchiveCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if _, err := manager.ArchiveAll(cmd.Context()); err != nil {
			return fmt.Errorf("archive failed: %w", err)
		}
		return nil
	}

	for _, path := range args {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if _, err := manager.Archive(path); err != nil {
			return fmt.Errorf("archive %s: %w", path, err)
		}
	}
	return nil
}
