// Package config holds the explicit run configuration for one mapping
package config

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// DefaultOutputFileName is the primary output document written into the
// working directory when no output path is given.
const DefaultOutputFileName = "codebase_map.md"

// Config holds all settings for one mapping run. It replaces any global
// state: the whole scan/render pipeline takes its inputs from here.
type Config struct {
	// Paths
	RootDir    string
	OutputPath string
	IgnorePath string

	// Output variants
	Raw bool

	// Filtering
	Gitignore bool

	// Logging
	Verbose     bool
	Quiet       bool
	NoColor     bool
	UseColors   bool
	ShowSkipped bool
}

// New returns a Config with defaults: scan the working directory and write
// the map next to it.
func New() (*Config, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &Config{
		RootDir:    workingDir,
		OutputPath: filepath.Join(workingDir, DefaultOutputFileName),
	}, nil
}

// Finalize resolves derived settings once the flags are bound. Colors stay
// off when explicitly disabled or when stderr is not a terminal.
func (c *Config) Finalize() {
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}
