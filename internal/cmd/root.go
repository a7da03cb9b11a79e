// Package cmd defines the basemapper command-line surface
package cmd

import (
	"github.com/chriswingler/basemapper/internal/app"
	"github.com/chriswingler/basemapper/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for basemapper
func NewRootCommand() *cobra.Command {
	var (
		rawVariant  bool
		gitignore   bool
		showSkipped bool
		verbose     bool
		quiet       bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "basemapper [directory] [output-file] [ignore-file]",
		Short: "Map a directory tree into a single Markdown document",
		Long: `Basemapper recursively walks a directory, filters entries against
.bmignore patterns, and writes one Markdown document containing a linked
directory structure plus the contents of every included text file.

The directory defaults to the current working directory, the output file
to ` + config.DefaultOutputFileName + ` in the working directory, and the ignore file is
autodetected (explicit path, then ./.bmignore, then <directory>/.bmignore).

The output file, .bmignore files and the tool itself are always excluded.`,
		Args:         cobra.MaximumNArgs(3),
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if len(args) > 0 {
				cfg.RootDir = args[0]
			}
			if len(args) > 1 {
				cfg.OutputPath = args[1]
			}
			if len(args) > 2 {
				cfg.IgnorePath = args[2]
			}
			cfg.Raw = rawVariant
			cfg.Gitignore = gitignore
			cfg.ShowSkipped = showSkipped
			cfg.Verbose = verbose
			cfg.Quiet = quiet
			cfg.NoColor = noColor
			cfg.Finalize()

			return app.New(cfg).Run()
		},
	}

	cmd.Flags().BoolVar(&rawVariant, "raw", false, "also generate a plain-text variant alongside the Markdown output")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "additionally exclude paths matched by the tree's .gitignore rules")
	cmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "list skipped files/directories and reasons after the run")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational messages")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")

	return cmd
}
