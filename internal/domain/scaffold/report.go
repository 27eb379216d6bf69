package scaffold

// Report summarizes a generation run. Created and Skipped hold paths
// relative to Root, in the order they were visited.
type Report struct {
	Root    string
	Created []string
	Skipped []string
}

// RecordCreated appends a path that was written to disk.
func (r *Report) RecordCreated(relPath string) {
	r.Created = append(r.Created, relPath)
}

// RecordSkipped appends a path that already existed and was left untouched.
func (r *Report) RecordSkipped(relPath string) {
	r.Skipped = append(r.Skipped, relPath)
}
