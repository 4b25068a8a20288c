package modelpath

import "fmt"

// ExportError reports an export directory that does not contain exactly one
// entry where the estimator layout requires one. It indicates a corrupted
// or hand-edited artifact tree, not a transient condition, and retrying
// will not help.
type ExportError struct {
	Dir     string
	Entries int
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("modelpath: expected exactly one entry under %s, found %d", e.Dir, e.Entries)
}
