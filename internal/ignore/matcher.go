package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/chriswingler/basemapper/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a candidate path is excluded from the map. The
// hard exclusions (the ignore file itself and the output document) are
// checked before any pattern and cannot be disabled.
type Matcher struct {
	rootDir    string
	outputPath string
	patterns   []Pattern

	// Optional repository .gitignore layering on top of the .bmignore
	// patterns, off unless requested.
	useGitignore bool
	repoIgnore   gitignore.GitIgnore

	logger utils.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithLogger sets a custom logger for the matcher
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithGitignore additionally suppresses paths matched by the scan tree's
// repository .gitignore rules, honoring negation rules.
func WithGitignore(enabled bool) Option {
	return func(m *Matcher) {
		m.useGitignore = enabled
	}
}

// NewMatcher builds a Matcher for one run. rootDir is the scan root and
// outputPath the resolved output document; both must be absolute.
func NewMatcher(rootDir, outputPath string, patterns []Pattern, opts ...Option) (*Matcher, error) {
	matcher := &Matcher{
		rootDir:    rootDir,
		outputPath: outputPath,
		patterns:   patterns,
		logger:     utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(matcher)
	}

	if matcher.useGitignore {
		repoMatcher, repoErr := gitignore.NewRepository(rootDir)
		if repoErr != nil {
			if repoMatcher == nil {
				matcher.logger.Warn("ignore: no usable .gitignore rules under '%s': %v", rootDir, repoErr)
				repoMatcher = gitignore.New(nil, "", nil)
			} else {
				return nil, fmt.Errorf("ignore: failed to load repository .gitignore rules: %w", repoErr)
			}
		}
		matcher.repoIgnore = repoMatcher
	}

	return matcher, nil
}

// Matches reports whether the absolute path absPath is excluded. The checks
// run in a fixed order and short-circuit on the first hit: the ignore
// file's own basename, the output document, each .bmignore pattern, then
// the optional .gitignore layer.
func (m *Matcher) Matches(absPath string) bool {
	if filepath.Base(absPath) == ConfigFileName {
		m.logger.Debug("ignore: %q excluded (ignore-file basename)", absPath)
		return true
	}
	if absPath == m.outputPath {
		m.logger.Debug("ignore: %q excluded (output document)", absPath)
		return true
	}

	relativePath, err := filepath.Rel(m.rootDir, absPath)
	if err != nil {
		m.logger.Warn("ignore: cannot relativize %q against %q: %v", absPath, m.rootDir, err)
		return false
	}
	relativePath = filepath.ToSlash(relativePath)
	basename := filepath.Base(absPath)

	for _, pattern := range m.patterns {
		switch {
		case pattern.Anchored:
			// Root-anchored: exact position only, never at other depths.
			if Match(pattern.Body, relativePath) {
				m.logger.Debug("ignore: %q excluded by anchored pattern %q", relativePath, pattern.Raw)
				return true
			}
		case pattern.AnyDepth:
			// '**/' prefix: basename match at any depth.
			if Match(pattern.Body, basename) {
				m.logger.Debug("ignore: %q excluded by **/ pattern %q", relativePath, pattern.Raw)
				return true
			}
		default:
			if Match(pattern.Raw, relativePath) || Match(pattern.Raw, basename) {
				m.logger.Debug("ignore: %q excluded by pattern %q", relativePath, pattern.Raw)
				return true
			}
		}
	}

	if m.repoIgnore != nil && m.matchesGitignore(absPath) {
		m.logger.Debug("ignore: %q excluded by repository .gitignore", relativePath)
		return true
	}
	return false
}

// matchesGitignore delegates to the gitignore library, guarding against
// panics inside it: an undecidable path is treated as not ignored.
// The repository matcher resolves per-directory .gitignore files through
// its Match method and wants an absolute path; the path must exist on
// disk, which holds for everything the scanner hands us.
func (m *Matcher) matchesGitignore(absPath string) (ignored bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("ignore: panic in gitignore matcher for %q: %v", absPath, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Match(absPath)
	if match == nil {
		return false
	}
	// Ignore is false when the last matching rule is a negation, so
	// re-included paths stay in.
	return match.Ignore()
}
