// Package ignore loads .bmignore exclusion patterns and decides which
// paths stay out of the generated map.
//
// The pattern dialect is a simplified gitignore: blank lines and '#'
// comments are skipped, a trailing '/' is stripped, a leading '/' anchors
// the pattern to the scan root, and a leading '**/' matches basenames at
// any depth. Plain patterns match either the root-relative path or the
// basename. The package uses the functional options pattern for matcher
// configuration.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chriswingler/basemapper/internal/utils"
)

// ConfigFileName is the conventional ignore-file basename. Files with this
// basename are always excluded from the map themselves.
const ConfigFileName = ".bmignore"

// Load resolves and parses the ignore file. Resolution order, first match
// wins with no merging: the explicitly supplied path, ConfigFileName in the
// working directory, then ConfigFileName in the scan root. When none
// exists the returned pattern set is empty and nothing beyond the hard
// exclusions is ignored. The second return value is the source file that
// was used, empty when none was found.
func Load(explicitPath, workingDir, rootDir string) ([]Pattern, string, error) {
	sourcePath := ""
	switch {
	case explicitPath != "" && fileExists(explicitPath):
		sourcePath = explicitPath
	case fileExists(filepath.Join(workingDir, ConfigFileName)):
		sourcePath = filepath.Join(workingDir, ConfigFileName)
	case fileExists(filepath.Join(rootDir, ConfigFileName)):
		sourcePath = filepath.Join(rootDir, ConfigFileName)
	default:
		return nil, "", nil
	}

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, sourcePath, fmt.Errorf("ignore: failed to read '%s': %w", sourcePath, err)
	}

	// Invalid bytes are substituted rather than rejected; an ignore file
	// with a stray encoding error still yields its usable patterns.
	return ParsePatterns(utils.DecodeText(content)), sourcePath, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
