package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chriswingler/basemapper/internal/scanner"
	"github.com/chriswingler/basemapper/internal/utils"
)

// RawPath derives the plain-text variant's output path from the primary
// output path by swapping the extension for .txt.
func RawPath(outputPath string) string {
	return strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".txt"
}

// Raw writes the minimal plain-text variant: a box-drawing tree of the
// included directories and files, then a flat dump of each file's content.
// No anchors, fences or language tags.
func Raw(w io.Writer, rootDir string, result *scanner.Result) error {
	out := bufio.NewWriter(w)

	fmt.Fprint(out, "DIRECTORY STRUCTURE:\n\n")
	fmt.Fprintf(out, "%s\n", filepath.Base(rootDir))
	writeRawTree(out, BuildTree(result), "")

	fmt.Fprint(out, "\nFILE CONTENTS:\n\n")
	for _, file := range sortedFiles(result) {
		if utils.IsBinaryFile(file.AbsolutePath) {
			fmt.Fprintf(out, "%s [BINARY]\n\n", file.RelativePath)
			continue
		}

		content, err := os.ReadFile(file.AbsolutePath)
		if err != nil {
			fmt.Fprintf(out, "%s [ERROR: %v]\n\n", file.RelativePath, err)
			continue
		}

		text := utils.DecodeText(content)
		fmt.Fprintf(out, "%s\n", file.RelativePath)
		fmt.Fprint(out, text)
		if !strings.HasSuffix(text, "\n") {
			fmt.Fprint(out, "\n")
		}
		fmt.Fprint(out, "\n")
	}

	return out.Flush()
}

// writeRawTree prints the listing tree with line-drawing connectors.
// Files sort before directories at each level.
func writeRawTree(out *bufio.Writer, node *Node, prefix string) {
	names := node.sortedNames()
	for i, name := range names {
		last := i == len(names)-1
		connector := "├── "
		if last {
			connector = "└── "
		}

		child := node.Children[name]
		if !child.IsDir {
			fmt.Fprintf(out, "%s%s%s\n", prefix, connector, name)
			continue
		}

		fmt.Fprintf(out, "%s%s%s/\n", prefix, connector, name)
		childPrefix := prefix + "│   "
		if last {
			childPrefix = prefix + "    "
		}
		writeRawTree(out, child, childPrefix)
	}
}
