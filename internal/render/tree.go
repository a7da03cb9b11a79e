// Package render turns a scan result into the output documents.
package render

import (
	"sort"
	"strings"

	"github.com/chriswingler/basemapper/internal/scanner"
)

// Node is one entry in the listing tree. Directories carry children;
// files are tagged explicitly rather than marked by a sentinel value.
type Node struct {
	IsDir    bool
	Children map[string]*Node
}

func newDirNode() *Node {
	return &Node{IsDir: true, Children: make(map[string]*Node)}
}

// BuildTree assembles the combined directory/file tree from a scan result.
// Paths are slash-separated and relative to the scan root; the returned
// node is the implicit root.
func BuildTree(result *scanner.Result) *Node {
	root := newDirNode()
	for _, dir := range result.Dirs {
		root.ensureDir(dir)
	}
	for _, file := range result.Files {
		parts := strings.Split(file.RelativePath, "/")
		parent := root
		if len(parts) > 1 {
			parent = root.ensureDir(strings.Join(parts[:len(parts)-1], "/"))
		}
		parent.Children[parts[len(parts)-1]] = &Node{}
	}
	return root
}

// ensureDir walks or creates the directory chain for a relative path and
// returns its node.
func (n *Node) ensureDir(relativePath string) *Node {
	current := n
	for _, part := range strings.Split(relativePath, "/") {
		child, ok := current.Children[part]
		if !ok || !child.IsDir {
			child = newDirNode()
			current.Children[part] = child
		}
		current = child
	}
	return current
}

// sortedNames returns the node's child names with files before
// directories, each group lexicographic. Both renderers list a
// directory's direct files before descending into its subdirectories.
func (n *Node) sortedNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		left, right := n.Children[names[i]], n.Children[names[j]]
		if left.IsDir != right.IsDir {
			return !left.IsDir
		}
		return names[i] < names[j]
	})
	return names
}
