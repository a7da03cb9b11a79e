package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chriswingler/basemapper/internal/fileid"
	"github.com/chriswingler/basemapper/internal/scanner"
	"github.com/chriswingler/basemapper/internal/utils"
)

const (
	binaryMarker    = "*[BINARY FILE - CONTENTS SKIPPED]*"
	timestampLayout = "2006-01-02 15:04:05"
)

// Markdown writes the full codebase map document: header, linked directory
// structure, per-file content sections with anchors, and a summary. A file
// that cannot be read gets an inline error marker and the run continues;
// only writer failures are returned.
func Markdown(w io.Writer, rootDir string, result *scanner.Result, now time.Time) error {
	out := bufio.NewWriter(w)
	rootName := filepath.Base(rootDir)

	fmt.Fprintf(out, "# Codebase Map: %s\n\n", rootName)
	fmt.Fprintf(out, "Generated by basemapper on %s\n\n", now.Format(timestampLayout))
	fmt.Fprintf(out, "Base directory: `%s`\n\n", rootDir)
	fmt.Fprint(out, "---\n\n")

	fmt.Fprint(out, "# Directory Structure\n\n")
	fmt.Fprintf(out, "- 📂 **%s** (ROOT)\n", rootName)
	writeMarkdownTree(out, BuildTree(result), "", 1)

	fmt.Fprint(out, "\n---\n\n")
	fmt.Fprint(out, "# File Contents\n\n")

	files := sortedFiles(result)
	for _, file := range files {
		fmt.Fprintf(out, "<a id='%s'></a>\n\n", fileid.Make(file.RelativePath))
		fmt.Fprintf(out, "## %s\n\n", file.RelativePath)

		if utils.IsBinaryFile(file.AbsolutePath) {
			fmt.Fprintf(out, "%s\n\n", binaryMarker)
			continue
		}

		content, err := os.ReadFile(file.AbsolutePath)
		if err != nil {
			fmt.Fprintf(out, "*[ERROR: %v]*\n\n", err)
			continue
		}

		text := utils.DecodeText(content)
		fmt.Fprintf(out, "```%s\n", LanguageForFile(file.RelativePath))
		fmt.Fprint(out, text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprint(out, "\n")
		}
		fmt.Fprint(out, "```\n\n")
	}

	fmt.Fprint(out, "# Summary\n\n")
	fmt.Fprintf(out, "- **Total directories:** %d (including root)\n", len(result.Dirs)+1)
	fmt.Fprintf(out, "- **Total files:** %d\n", len(files))

	return out.Flush()
}

// writeMarkdownTree lists a directory node: its files first as anchor
// links, then each subdirectory recursively, one indent level deeper.
func writeMarkdownTree(out *bufio.Writer, node *Node, parentPath string, indent int) {
	for _, name := range node.sortedNames() {
		child := node.Children[name]
		childPath := name
		if parentPath != "" {
			childPath = parentPath + "/" + name
		}
		if !child.IsDir {
			fmt.Fprintf(out, "%s- 📄 [%s](#%s)\n", strings.Repeat(" ", indent*2), name, fileid.Make(childPath))
			continue
		}
		fmt.Fprintf(out, "%s- 📁 **%s/**\n", strings.Repeat(" ", indent*2), name)
		writeMarkdownTree(out, child, childPath, indent+1)
	}
}

// sortedFiles returns the result's files ordered by relative path.
func sortedFiles(result *scanner.Result) []scanner.FileEntry {
	files := make([]scanner.FileEntry, len(result.Files))
	copy(files, result.Files)
	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files
}
