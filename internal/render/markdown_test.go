package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chriswingler/basemapper/internal/ignore"
	"github.com/chriswingler/basemapper/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T, root string, ignoreLines ...string) *scanner.Result {
	t.Helper()
	var patterns []ignore.Pattern
	for _, line := range ignoreLines {
		if pattern, ok := ignore.ParsePattern(line); ok {
			patterns = append(patterns, pattern)
		}
	}
	matcher, err := ignore.NewMatcher(root, filepath.Join(root, "out.md"), patterns)
	require.NoError(t, err)
	result, err := scanner.Scan(root, matcher)
	require.NoError(t, err)
	return result
}

func TestMarkdownEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("print('hi')\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.bin"), []byte("x\x00y"), 0o644))

	result := scanFixture(t, root, "sub/")
	var buf bytes.Buffer
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, Markdown(&buf, root, result, now))
	doc := buf.String()

	assert.Contains(t, doc, "# Codebase Map: "+filepath.Base(root))
	assert.Contains(t, doc, "Generated by basemapper on 2024-05-01 12:30:00")
	assert.Contains(t, doc, "Base directory: `"+root+"`")

	// The excluded directory and its file never surface.
	assert.NotContains(t, doc, "b.bin")
	assert.NotContains(t, doc, "sub/")

	// Listed file links to its content anchor.
	assert.Contains(t, doc, "- 📄 [a.py](#file_a_py)")
	assert.Contains(t, doc, "<a id='file_a_py'></a>")
	assert.Contains(t, doc, "## a.py")
	assert.Contains(t, doc, "```python\nprint('hi')\n```")

	// Summary counts only the implicit root and the one file.
	assert.Contains(t, doc, "- **Total directories:** 1 (including root)")
	assert.Contains(t, doc, "- **Total files:** 1")
}

func TestMarkdownBinaryFileSkipsContent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "blob.bin"), []byte("a\x00b"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, root, scanFixture(t, root), time.Now()))
	doc := buf.String()

	// Binary files are listed but their content is suppressed.
	assert.Contains(t, doc, "## blob.bin")
	assert.Contains(t, doc, binaryMarker)
	assert.NotContains(t, doc, "```")
}

func TestMarkdownUnknownExtensionGetsUntaggedFence(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.xyz"), []byte("plain\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, root, scanFixture(t, root), time.Now()))
	assert.Contains(t, buf.String(), "```\nplain\n```")
}

func TestMarkdownGuaranteesTrailingNewline(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "x.go"), []byte("package x"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, root, scanFixture(t, root), time.Now()))
	assert.Contains(t, buf.String(), "```go\npackage x\n```")
}

func TestMarkdownTreeOrdering(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "zebra"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "alpha"), 0o755))
	for _, path := range []string{"root.txt", "zebra/z.txt", "alpha/a.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, path), []byte("x\n"), 0o644))
	}

	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, root, scanFixture(t, root), time.Now()))
	doc := buf.String()

	// Root files precede directories; directories sort lexicographically.
	rootFile := strings.Index(doc, "📄 [root.txt]")
	alphaDir := strings.Index(doc, "📁 **alpha/**")
	zebraDir := strings.Index(doc, "📁 **zebra/**")
	require.NotEqual(t, -1, rootFile)
	require.NotEqual(t, -1, alphaDir)
	require.NotEqual(t, -1, zebraDir)
	assert.Less(t, rootFile, alphaDir)
	assert.Less(t, alphaDir, zebraDir)

	// Nested files appear indented under their directory.
	assert.Contains(t, doc, "    - 📄 [a.txt](#file_alpha_a_txt)")
}

func TestMarkdownIsByteStableAcrossRuns(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "lib.go"), []byte("package pkg\n"), 0o644))

	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var first, second bytes.Buffer
	require.NoError(t, Markdown(&first, root, scanFixture(t, root), now))
	require.NoError(t, Markdown(&second, root, scanFixture(t, root), now))
	assert.Equal(t, first.String(), second.String())
}

func TestLanguageForFile(t *testing.T) {
	assert.Equal(t, "python", LanguageForFile("a.py"))
	assert.Equal(t, "go", LanguageForFile("cmd/main.go"))
	assert.Equal(t, "yaml", LanguageForFile("config.YML"))
	assert.Equal(t, "", LanguageForFile("LICENSE"))
	assert.Equal(t, "", LanguageForFile("data.xyz"))
}
