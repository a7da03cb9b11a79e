package ignore

import "strings"

// Pattern is a single exclusion rule loaded from a .bmignore file.
// Patterns are immutable once parsed; evaluation order never changes the
// outcome since matching is existence-based with no negation.
type Pattern struct {
	// Raw is the pattern as written, after trailing-slash stripping.
	Raw string
	// Body is Raw with the anchoring prefix ("/" or "**/") removed.
	Body string
	// Anchored marks a leading "/": the pattern only matches the
	// root-relative path, never at other depths.
	Anchored bool
	// AnyDepth marks a leading "**/": the pattern matches basenames at
	// any depth.
	AnyDepth bool
}

// ParsePattern turns one .bmignore line into a Pattern. It returns false
// for lines that carry no rule: blanks and comments.
func ParsePattern(line string) (Pattern, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Pattern{}, false
	}

	// Directory-style patterns drop a single trailing separator.
	line = strings.TrimSuffix(line, "/")
	if line == "" {
		return Pattern{}, false
	}

	pattern := Pattern{Raw: line, Body: line}
	switch {
	case strings.HasPrefix(line, "/"):
		pattern.Anchored = true
		pattern.Body = line[1:]
	case strings.HasPrefix(line, "**/"):
		pattern.AnyDepth = true
		pattern.Body = line[3:]
	}
	return pattern, true
}

// ParsePatterns parses the full text of a .bmignore file.
func ParsePatterns(content string) []Pattern {
	var patterns []Pattern
	for _, line := range strings.Split(content, "\n") {
		if pattern, ok := ParsePattern(line); ok {
			patterns = append(patterns, pattern)
		}
	}
	return patterns
}
