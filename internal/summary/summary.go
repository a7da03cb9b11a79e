// Package summary reports scan results and skipped paths at end of run
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/chriswingler/basemapper/internal/scanner"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs the outcome of one mapping run. The directory count
// includes the implicit root, matching the rendered summary section.
func DisplayResults(logger Logger, result *scanner.Result, outputPath string, duration time.Duration) {
	logger.Info("Directory mapping complete. Output saved to: %s", outputPath)
	logger.Info("Found %d directories and %d files.", len(result.Dirs)+1, len(result.Files))
	logger.Info("Mapping complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every excluded path with its reason, sorted
// for stable output.
func DisplaySkippedItems(logger Logger, items []scanner.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(items))
	if len(items) == 0 {
		logger.Info("No items were skipped.")
		return
	}

	sorted := make([]scanner.SkippedItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR "
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
