package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iammorganparry/seans/internal/board"
	"github.com/iammorganparry/seans/internal/config"
	"github.com/iammorganparry/seans/internal/editor"
	"github.com/iammorganparry/seans/internal/finance"
	"github.com/iammorganparry/seans/internal/store"
	"github.com/iammorganparry/seans/internal/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file.
	logOut, closeLog := cfg.OpenLogFile()
	defer closeLog()
	logger := cfg.NewLogger(logOut)

	st := store.New()
	deps := tui.Deps{
		Editor:     editor.New(st, logger, editor.WithMinDateEnforced(cfg.EnforceMinDate)),
		Board:      board.New(st, cfg.ReminderTemplate, logger),
		Aggregator: finance.NewAggregator(st),
		Currency:   cfg.Currency,
		FeeStep:    cfg.FeeStep,
		Logger:     logger,
	}

	p := tea.NewProgram(
		tui.NewRootModel(deps),
		tea.WithAltScreen(),
	)

	logger.Info("seans tui starting")
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		_ = closeLog()
		os.Exit(1)
	}
	logger.Info("seans tui stopped", "sessions", st.Len())
}
