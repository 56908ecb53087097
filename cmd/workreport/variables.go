package main

import (
	"log/slog"

	"github.com/scottbrown/workreport/internal/config"
	"github.com/scottbrown/workreport/internal/report"
)

// Flag values
var (
	configFile string
	reportDir  string
	logLevel   string
	quiet      bool
	keepDays   int
)

// Set up by prepare before any command runs.
var (
	appConfig *config.Config
	manager   *report.Manager
	levelVar  = new(slog.LevelVar)
)
