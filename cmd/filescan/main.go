// Package main is the entry point for the filescan application.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/filescan/internal/config"
	"github.com/joe/filescan/internal/report"
	"github.com/joe/filescan/internal/tui"
	"github.com/joe/filescan/pkg/collection"
	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/filesystem"
	"github.com/joe/filescan/pkg/scanner"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitUsage
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "filescan"})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	matcher, err := cfg.BuildMatcher()
	if err != nil {
		reportError(logger, err, "")
		return exitUsage
	}

	fsys, base, closeFS, err := filesystem.CreateFileSystem(cfg.Root)
	if err != nil {
		reportError(logger, err, cfg.Root)
		return exitFailure
	}
	defer closeFS()

	logger.Debug("scanning", "root", cfg.Root, "recursive", cfg.Recursive, "dirs", cfg.Dirs)

	if _, err := fsys.Stat(base); err != nil {
		logger.Warn("root is not accessible, nothing to scan", "root", cfg.Root, "err", err)
	}

	s := scanner.New(cfg.ScannerOptions(fsys)...)
	scan := func() (*collection.Collection, error) {
		coll := collection.New()

		n, err := s.Scan(base, coll, matcher, cfg.Recursive)
		if err != nil {
			return coll, err //nolint:wrapcheck // Already carries the failing path
		}

		if cfg.Sort {
			coll.SortByPath()
		}

		logger.Debug("scan complete", "root", cfg.Root, "matches", n)

		return coll, nil
	}

	interactive := cfg.Interactive && term.IsTerminal(int(os.Stdout.Fd()))
	if cfg.Interactive && !interactive {
		logger.Warn("stdout is not a terminal, printing a listing instead")
	}

	if interactive {
		if err := tui.Run(cfg.Root, scan, tea.WithAltScreen()); err != nil {
			reportError(logger, err, cfg.Root)
			return exitFailure
		}

		return exitOK
	}

	started := time.Now()

	coll, err := scan()
	if err != nil {
		reportError(logger, err, cfg.Root)
		return exitFailure
	}

	failed, err := report.Write(os.Stdout, coll, report.Options{
		Preview: cfg.Lines,
		Elapsed: time.Since(started),
	})
	if err != nil {
		reportError(logger, err, "")
		return exitFailure
	}

	if failed > 0 {
		logger.Warn("some matches could not be described", "count", failed)
	}

	return exitOK
}

// reportError logs err with the actionable suggestions the enricher finds.
func reportError(logger *log.Logger, err error, affectedPath string) {
	enriched := errors.NewEnricher().Enrich(err, affectedPath)
	logger.Error(enriched.Error())

	if suggestions := errors.FormatSuggestions(enriched); suggestions != "" {
		fmt.Fprintln(os.Stderr, suggestions)
	}
}
