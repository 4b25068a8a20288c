package artifact

import "errors"

// Error definitions for the artifact package.
var (
	ErrNotModel = errors.New("artifact is not a model artifact")
	ErrNotFound = errors.New("artifact not found in registry")
)
