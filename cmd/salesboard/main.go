// Package main provides the entry point for the salesboard TUI.
//
// salesboard loads a list of sales tasks from the source named in
// .salesboard.json, ranks them by revenue per hour and shows them on a
// three-column board with live metrics.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/salesboard/internal/app"
	"github.com/riordanpawley/salesboard/internal/config"
	"github.com/riordanpawley/salesboard/internal/services/source"
	"github.com/riordanpawley/salesboard/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.LogLevel()}))

	err = run(cfg, logger)
	logFile.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Log.Debug {
		f, err := tea.LogToFile(filepath.Join(filepath.Dir(cfg.Log.Path), "tea-debug.log"), "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	}

	fetcher, err := source.NewFetcher(cfg.Location(), &http.Client{Timeout: cfg.FetchTimeout()})
	if err != nil {
		return err
	}
	client := source.NewClient(fetcher, cfg.Seed.Count, logger)

	model := app.New(cfg, store.New(logger), client, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}

// openLog opens cfg.Log.Path for appending. The TUI owns stdout, so logs go to a file.
func openLog(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
