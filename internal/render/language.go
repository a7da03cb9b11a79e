package render

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps file extensions to fenced-code-block language
// tags. Unknown extensions yield an untagged block.
var languageByExtension = map[string]string{
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".jsx":        "jsx",
	".tsx":        "tsx",
	".html":       "html",
	".css":        "css",
	".scss":       "scss",
	".sass":       "sass",
	".less":       "less",
	".cpp":        "cpp",
	".c":          "c",
	".h":          "c",
	".hpp":        "cpp",
	".java":       "java",
	".sh":         "bash",
	".bat":        "batch",
	".ps1":        "powershell",
	".json":       "json",
	".xml":        "xml",
	".yaml":       "yaml",
	".yml":        "yaml",
	".md":         "markdown",
	".sql":        "sql",
	".rb":         "ruby",
	".go":         "go",
	".php":        "php",
	".cs":         "csharp",
	".swift":      "swift",
	".kt":         "kotlin",
	".rs":         "rust",
	".dart":       "dart",
	".lua":        "lua",
	".r":          "r",
	".pl":         "perl",
	".pm":         "perl",
	".scala":      "scala",
	".groovy":     "groovy",
	".coffee":     "coffeescript",
	".elm":        "elm",
	".erl":        "erlang",
	".hs":         "haskell",
	".ex":         "elixir",
	".exs":        "elixir",
	".clj":        "clojure",
	".fs":         "fsharp",
	".fsx":        "fsharp",
	".cmake":      "cmake",
	".dockerfile": "dockerfile",
	".tf":         "terraform",
	".vue":        "vue",
	".svelte":     "svelte",
}

// LanguageForFile returns the language tag for a file path, or "" when the
// extension has no mapping.
func LanguageForFile(path string) string {
	extension := strings.ToLower(filepath.Ext(path))
	return languageByExtension[extension]
}
