package render

import (
	"testing"

	"github.com/chriswingler/basemapper/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	result := &scanner.Result{
		Dirs: []string{"empty", "src", "src/util"},
		Files: []scanner.FileEntry{
			{RelativePath: "README.md"},
			{RelativePath: "src/main.go"},
			{RelativePath: "src/util/io.go"},
		},
	}

	root := BuildTree(result)
	require.Len(t, root.Children, 3)

	assert.True(t, root.Children["empty"].IsDir)
	assert.False(t, root.Children["README.md"].IsDir)

	src := root.Children["src"]
	require.NotNil(t, src)
	assert.False(t, src.Children["main.go"].IsDir)
	assert.True(t, src.Children["util"].IsDir)
	assert.False(t, src.Children["util"].Children["io.go"].IsDir)
}

func TestSortedNamesFilesBeforeDirectories(t *testing.T) {
	result := &scanner.Result{
		Dirs: []string{"aaa"},
		Files: []scanner.FileEntry{
			{RelativePath: "zzz.txt"},
			{RelativePath: "bbb.txt"},
		},
	}

	names := BuildTree(result).sortedNames()
	assert.Equal(t, []string{"bbb.txt", "zzz.txt", "aaa"}, names)
}
