package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
)

// Globals are the flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"blackjack.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" help:"Log level: debug, info, warn or error (overrides config)"`
	LogFile  string `help:"Write logs to this file instead of stderr (overrides config)"`
	NoColor  bool   `help:"Disable coloured output"`
}

// load reads the configuration file and applies the global overrides
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}
	if g.LogLevel != "" {
		cfg.Game.LogLevel = g.LogLevel
	}
	if g.LogFile != "" {
		cfg.Game.LogFile = g.LogFile
	}
	return cfg, nil
}

// setupLogger creates the process logger. Logs go to stderr unless a file
// is configured. The returned function closes the file, if any.
func setupLogger(level, file string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = os.Stderr
	closer := func() error { return nil }
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "blackjack",
	})

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("#FFEAA7"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B"))
	logger.SetStyles(styles)

	return logger, closer, nil
}
