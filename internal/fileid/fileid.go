// Package fileid derives stable document anchors from relative file paths.
package fileid

import "strings"

// Prefix is prepended to every generated identifier so anchors cannot
// collide with other ids in the rendered document.
const Prefix = "file_"

// replacedCharacters is the exact set of characters that become
// underscores. Characters outside this set (including '<', '>', '?'
// and '-') pass through untouched.
const replacedCharacters = "/\\. ()[]{}:;,'\"`!@#$%^&*+=|~"

// Make returns a deterministic anchor id for a relative path. The result is
// lower-cased, so two paths differing only by letter case map to the same
// id; that collision is accepted behavior, matching the rendered document's
// anchor scheme.
func Make(relativePath string) string {
	var builder strings.Builder
	builder.Grow(len(Prefix) + len(relativePath))
	builder.WriteString(Prefix)
	for _, character := range relativePath {
		if strings.ContainsRune(replacedCharacters, character) {
			builder.WriteByte('_')
			continue
		}
		builder.WriteRune(character)
	}
	return strings.ToLower(builder.String())
}
