package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scottbrown/workreport"
	"github.com/scottbrown/workreport/internal/config"
	"github.com/scottbrown/workreport/internal/console"
	"github.com/scottbrown/workreport/internal/report"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   workreport.AppName,
	Short: "Create today's work report and archive the previous ones",
	Long: `Archives every dated work report (YYYYMMDD.txt) in the report directory into
Archive/YYYY/MM, copying only reports that are new or have changed, and then
creates today's report from Template.txt. A default template is generated when
Template.txt is missing.`,
	Version:           workreport.Version(),
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE:              handleRootCmd,
}

// prepare configures logging and builds the report manager shared by all
// subcommands.
func prepare(cmd *cobra.Command, args []string) error {
	setupLogging(cmd.ErrOrStderr())

	dir, err := resolveBaseDir(reportDir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configFile, dir)
	if err != nil {
		return err
	}

	levelName := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		levelName = logLevel
	}
	level, err := parseLogLevel(levelName)
	if err != nil {
		return err
	}
	levelVar.Set(level)

	var events report.Events = report.NopEvents{}
	if !quiet {
		events = console.New(cmd.OutOrStdout())
	}

	appConfig = cfg
	manager = report.New(report.Config{
		BaseDir: dir,
		Events:  events,
	})

	slog.Debug("report directory resolved", "dir", dir, "version", workreport.Version())
	return nil
}

func handleRootCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if _, err := manager.ArchiveAll(ctx); err != nil {
		return fmt.Errorf("archive failed: %w", err)
	}

	if appConfig.Retention.Enabled {
		if _, err := manager.Tidy(ctx, appConfig.Retention.KeepDays); err != nil {
			return fmt.Errorf("tidy failed: %w", err)
		}
	}

	if err := manager.CreateForToday(); err != nil {
		return fmt.Errorf("create failed: %w", err)
	}
	return nil
}

func setupLogging(w io.Writer) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: levelVar,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Convert all timestamps to UTC
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.TimeValue(t.UTC())
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}

func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", name)
}

// resolveBaseDir returns dir when set, otherwise the directory holding the
// running executable. Reports live next to the program.
func resolveBaseDir(dir string) (string, error) {
	if dir != "" {
		return filepath.Clean(dir), nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
