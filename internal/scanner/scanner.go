package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/chriswingler/basemapper/internal/ignore"
	"github.com/chriswingler/basemapper/internal/utils"
)

// Options configures a Scan
type Options struct {
	Logger utils.Logger
	// SelfPath is the absolute path of the running tool; it is hard
	// excluded from the result regardless of ignore configuration.
	SelfPath string
}

// Option is a functional option for configuring Options
type Option func(*Options)

// WithLogger sets a custom logger for the scanner
func WithLogger(logger utils.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithSelfPath sets the tool's own absolute path for hard exclusion
func WithSelfPath(path string) Option {
	return func(o *Options) {
		o.SelfPath = path
	}
}

// Scan traverses rootDir once, top down, applying the matcher. Ignored
// directories are pruned: their descendants are never visited. The root
// itself is implicit and never recorded. rootDir must be absolute.
//
// Traversal order across siblings is whatever the filesystem yields; the
// renderers re-sort before output.
func Scan(rootDir string, matcher *ignore.Matcher, opts ...Option) (*Result, error) {
	options := Options{Logger: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&options)
	}

	result := &Result{}

	walkErr := filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, err error) error {
		isDir := entry != nil && entry.IsDir()

		relativePath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			options.Logger.Error("scanner: path calculation failed for %q: %v", path, relErr)
			result.Skipped = append(result.Skipped, SkippedItem{Path: path, Reason: ReasonPathError, IsDir: isDir})
			return nil
		}
		relativePath = filepath.ToSlash(relativePath)

		if err != nil {
			// One unreadable entry never aborts the walk. WalkDir reports
			// a directory a second time when reading it fails; drop the
			// entry recorded on the first visit so it is counted as
			// skipped, not as an included directory.
			options.Logger.Warn("scanner: error visiting %q: %v", relativePath, err)
			if isDir {
				result.dropDir(relativePath)
			}
			result.Skipped = append(result.Skipped, SkippedItem{Path: relativePath, Reason: ReasonWalkError, IsDir: isDir})
			return nil
		}

		if isDir {
			// The directory itself is tested first; an ignored directory
			// is pruned along with everything under it.
			if matcher.Matches(path) {
				options.Logger.Debug("scanner: pruning directory %q", relativePath)
				result.Skipped = append(result.Skipped, SkippedItem{Path: relativePath, Reason: ReasonIgnoredRule, IsDir: true})
				return fs.SkipDir
			}
			if relativePath != "." {
				result.Dirs = append(result.Dirs, relativePath)
			}
			return nil
		}

		if options.SelfPath != "" && path == options.SelfPath {
			options.Logger.Debug("scanner: excluding tool entry point %q", relativePath)
			result.Skipped = append(result.Skipped, SkippedItem{Path: relativePath, Reason: ReasonHardExcluded})
			return nil
		}
		if matcher.Matches(path) {
			result.Skipped = append(result.Skipped, SkippedItem{Path: relativePath, Reason: ReasonIgnoredRule})
			return nil
		}

		result.Files = append(result.Files, FileEntry{RelativePath: relativePath, AbsolutePath: path})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("scanner: walk of '%s' failed: %w", rootDir, walkErr)
	}

	options.Logger.Debug("scanner: found %d directories and %d files", len(result.Dirs), len(result.Files))
	return result, nil
}
