package ignore

// Match reports whether name matches the glob pattern. The dialect is the
// classic shell/fnmatch one: '*' matches any run of characters with no
// special treatment of path separators (patterns are matched against whole
// multi-segment relative paths), '?' matches exactly one character, and
// '[...]' matches a character class with '!' negation and '-' ranges. An
// unterminated class matches a literal '['. Matching is case-sensitive.
//
// The engine is deliberately self-contained so the matching semantics do
// not drift with the host platform's glob implementation.
func Match(pattern, name string) bool {
	return matchRunes([]rune(pattern), []rune(name))
}

func matchRunes(pattern, name []rune) bool {
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			// Collapse consecutive stars; a trailing star matches the rest.
			for len(pattern) > 0 && pattern[0] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 0 {
				return true
			}
			// Try every possible split for the star.
			for i := 0; i <= len(name); i++ {
				if matchRunes(pattern, name[i:]) {
					return true
				}
			}
			return false

		case '?':
			if len(name) == 0 {
				return false
			}
			pattern = pattern[1:]
			name = name[1:]

		case '[':
			rest, matched, ok := matchClass(pattern, name)
			if !ok {
				// Unterminated class: treat '[' as a literal character.
				if len(name) == 0 || name[0] != '[' {
					return false
				}
				pattern = pattern[1:]
				name = name[1:]
				continue
			}
			if !matched {
				return false
			}
			pattern = rest
			name = name[1:]

		default:
			if len(name) == 0 || name[0] != pattern[0] {
				return false
			}
			pattern = pattern[1:]
			name = name[1:]
		}
	}
	return len(name) == 0
}

// matchClass evaluates a '[...]' class at the head of pattern against the
// first rune of name. It returns the pattern remainder past the class, the
// match result, and whether the class was well-formed. A ']' directly after
// the opening bracket (or after '!') is a literal member of the class.
func matchClass(pattern, name []rune) (rest []rune, matched, ok bool) {
	i := 1
	negated := false
	if i < len(pattern) && pattern[i] == '!' {
		negated = true
		i++
	}

	start := i
	for i < len(pattern) && (i == start || pattern[i] != ']') {
		i++
	}
	if i >= len(pattern) {
		return nil, false, false
	}

	if len(name) == 0 {
		// A well-formed class still consumes nothing to match against.
		return pattern[i+1:], false, true
	}

	target := name[0]
	members := pattern[start:i]
	found := false
	for j := 0; j < len(members); j++ {
		if j+2 < len(members) && members[j+1] == '-' {
			if members[j] <= target && target <= members[j+2] {
				found = true
			}
			j += 2
			continue
		}
		if members[j] == target {
			found = true
		}
	}

	return pattern[i+1:], found != negated, true
}
