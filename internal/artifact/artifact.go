package artifact

// Type identifies what a pipeline artifact holds.
type Type string

const (
	// TypeModel is a trained model export tree.
	TypeModel Type = "Model"
)

// VersionForLayoutChange is the artifact version at which exported model
// trees switched from the estimator layout to the flat layout. Artifacts
// recorded with an older version keep the legacy directory names.
const VersionForLayoutChange = 1

// Artifact is a versioned pipeline output tracked by an external artifact
// store. Version is the toolkit artifact version recorded at export time;
// zero means the producer predates version stamping.
type Artifact struct {
	ID        string
	Type      Type
	OutputURI string
	Version   int
}

// IsOldModelArtifact reports whether the model artifact was produced by an
// old toolkit version and therefore uses the legacy directory layout.
// Only artifacts of type Model are accepted.
func IsOldModelArtifact(a *Artifact) (bool, error) {
	if a.Type != TypeModel {
		return false, ErrNotModel
	}

	return a.Version < VersionForLayoutChange, nil
}
