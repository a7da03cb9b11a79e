// Package app wires configuration, ignore rules, scanning and rendering
// into one run.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/chriswingler/basemapper/internal/config"
	"github.com/chriswingler/basemapper/internal/ignore"
	"github.com/chriswingler/basemapper/internal/logger"
	"github.com/chriswingler/basemapper/internal/render"
	"github.com/chriswingler/basemapper/internal/scanner"
	"github.com/chriswingler/basemapper/internal/summary"
	"github.com/fatih/color"
)

// App encapsulates one mapping run
type App struct {
	cfg *config.Config
	log *logger.Logger
}

// New creates an App and its logger from a finalized configuration
func New(cfg *config.Config) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log}
}

// Run executes the pipeline: validate the root, load ignore rules, scan,
// render the Markdown map and optionally the raw variant. A missing or
// non-directory root and an unwritable output are fatal; individual file
// read failures are rendered inline and never abort the run.
func (a *App) Run() error {
	startTime := time.Now()

	rootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		return fmt.Errorf("invalid root directory path '%s': %w", a.cfg.RootDir, err)
	}
	rootInfo, err := os.Stat(rootDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("directory '%s' does not exist", rootDir)
		}
		return fmt.Errorf("could not access directory '%s': %w", rootDir, err)
	}
	if !rootInfo.IsDir() {
		return fmt.Errorf("'%s' is not a directory", rootDir)
	}

	outputPath, err := filepath.Abs(a.cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("invalid output path '%s': %w", a.cfg.OutputPath, err)
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not determine working directory: %w", err)
	}

	// The running tool itself never appears in its own map.
	selfPath, selfErr := os.Executable()
	if selfErr != nil {
		a.log.Debug("could not resolve own executable path: %v", selfErr)
		selfPath = ""
	}

	patterns, ignoreSource, err := ignore.Load(a.cfg.IgnorePath, workingDir, rootDir)
	if err != nil {
		return err
	}
	if ignoreSource != "" {
		a.log.Info("Using ignore file: %s", ignoreSource)
	} else {
		a.log.Info("No %s file found. All files will be included.", ignore.ConfigFileName)
	}

	matcher, err := ignore.NewMatcher(rootDir, outputPath, patterns,
		ignore.WithLogger(a.log),
		ignore.WithGitignore(a.cfg.Gitignore),
	)
	if err != nil {
		return err
	}

	a.log.Info("Mapping directory: %s", rootDir)
	result, err := scanner.Scan(rootDir, matcher,
		scanner.WithLogger(a.log),
		scanner.WithSelfPath(selfPath),
	)
	if err != nil {
		return err
	}

	now := time.Now()
	err = writeDocument(outputPath, func(w io.Writer) error {
		return render.Markdown(w, rootDir, result, now)
	})
	if err != nil {
		return err
	}

	if a.cfg.Raw {
		rawPath := render.RawPath(outputPath)
		err = writeDocument(rawPath, func(w io.Writer) error {
			return render.Raw(w, rootDir, result)
		})
		if err != nil {
			return err
		}
		a.log.Info("Raw text version saved to: %s", rawPath)
	}

	summary.DisplayResults(a.log, result, outputPath, time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, result.Skipped, os.Stderr)
	}
	return nil
}

// writeDocument creates path and streams one rendered document into it.
// Failure to open the output sink is fatal to the run; whatever was
// already written stays on disk.
func writeDocument(path string, renderFn func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	defer file.Close()

	if err := renderFn(file); err != nil {
		return fmt.Errorf("failed to write output file '%s': %w", path, err)
	}
	return nil
}
