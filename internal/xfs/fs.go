package xfs

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FS is the storage access surface needed to inspect exported artifact
// trees. Implementations may be backed by a local filesystem or a remote
// object store; callers treat paths as opaque hierarchical identifiers.
type FS interface {
	// Exists reports whether the given path exists.
	Exists(ctx context.Context, path string) (bool, error)

	// ListDir returns the immediate children of the given directory as
	// full paths.
	ListDir(ctx context.Context, path string) ([]string, error)
}

// OS implements FS over the local filesystem.
type OS struct{}

// NewOS creates a new local filesystem FS.
func NewOS() *OS {
	return &OS{}
}

// Exists reports whether the given path exists on the local filesystem.
func (o *OS) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// ListDir returns the immediate children of the given directory as full paths.
func (o *OS) ListDir(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(dir, entry.Name()))
	}

	return children, nil
}

// Join joins path elements onto a base location. Unlike path.Join it
// preserves URI-style prefixes (for example "gs://bucket"), which cleaning
// would collapse to a single slash.
func Join(base string, elem ...string) string {
	if i := strings.Index(base, "://"); i >= 0 {
		scheme := base[:i+3]
		parts := append([]string{base[i+3:]}, elem...)
		return scheme + path.Join(parts...)
	}

	return path.Join(append([]string{base}, elem...)...)
}

// ExpandTilde replaces a leading "~" or "~/" with the user's home
// directory. Other tilde-prefixed strings ("~user") are returned unchanged.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}
