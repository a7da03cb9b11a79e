package fileid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple path", "path/to/file.txt", "file_path_to_file_txt"},
		{"spaces replaced", "my path with spaces/file name.py", "file_my_path_with_spaces_file_name_py"},
		{"mixed case folded", "Path/To/File.TXT", "file_path_to_file_txt"},
		{"already safe", "normal_file_name", "file_normal_file_name"},
		{"empty string", "", "file_"},
		{"leading and trailing specials", "./file.", "file___file_"},
		{"backslash replaced", `dir\file.txt`, "file_dir_file_txt"},
		{
			"brackets and braces replaced",
			"a(b)[c]{d}.txt",
			"file_a_b__c__d__txt",
		},
		{
			"punctuation run collapses to underscores",
			`:;,'"` + "`" + `!@#$%^&*+=|~`,
			"file_" + strings.Repeat("_", 18),
		},
		{
			"angle brackets question mark and dash preserved",
			"file/path_with<angle_brackets>and?question.mark",
			"file_file_path_with<angle_brackets>and?question_mark",
		},
		{"dash preserved", "some-dir/some-file.go", "file_some-dir_some-file_go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.path))
		})
	}
}

func TestMakeDeterministic(t *testing.T) {
	paths := []string{"a/b/c.go", "weird name (v2).txt", "UPPER/lower.MD", ""}
	for _, path := range paths {
		first := Make(path)
		assert.Equal(t, first, Make(path), "same input must always yield the same id")
		assert.True(t, strings.HasPrefix(first, Prefix))
	}
}

func TestMakeReplacesEveryListedCharacter(t *testing.T) {
	for _, character := range replacedCharacters {
		id := Make(string(character))
		assert.Equal(t, Prefix+"_", id, "character %q must become an underscore", character)
	}
}
