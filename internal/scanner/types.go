// Package scanner walks the tree once and materializes everything the
// renderers need.
package scanner

// FileEntry identifies one included file. Content is never carried here;
// renderers read it lazily from AbsolutePath.
type FileEntry struct {
	// RelativePath is slash-separated and relative to the scan root.
	RelativePath string
	AbsolutePath string
}

// SkippedReason clarifies why a path was left out of the scan result.
type SkippedReason string

const (
	ReasonIgnoredRule  SkippedReason = "Ignored (Pattern Rule)"
	ReasonHardExcluded SkippedReason = "Excluded (Tool Entry Point)"
	ReasonWalkError    SkippedReason = "Skipped (Walk Error)"
	ReasonPathError    SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem records one excluded path and the rule that excluded it.
type SkippedItem struct {
	Path   string
	Reason SkippedReason
	IsDir  bool
}

// Result is the complete outcome of one walk: every included directory
// (relative, root itself implicit) and every included file, plus the
// skipped paths for reporting. It is built fully in memory because both
// renderers consume the same listing twice.
type Result struct {
	Dirs    []string
	Files   []FileEntry
	Skipped []SkippedItem
}

// dropDir removes a previously recorded directory entry.
func (r *Result) dropDir(relativePath string) {
	for i, dir := range r.Dirs {
		if dir == relativePath {
			r.Dirs = append(r.Dirs[:i], r.Dirs[i+1:]...)
			return
		}
	}
}
