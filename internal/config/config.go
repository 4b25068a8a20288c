package config

// Config holds the main configuration for the application.
type Config struct {
	Version string                 `json:"version"           yaml:"version"`
	Storage StorageConfig          `json:"storage,omitempty" yaml:"storage,omitempty"`
	Models  map[string]ModelConfig `json:"models"            yaml:"models"`
}

// StorageConfig holds configuration for storage access.
type StorageConfig struct {
	// PipelineRoot is joined in front of relative model output URIs.
	PipelineRoot string `json:"pipeline_root,omitempty" yaml:"pipeline_root,omitempty"`

	// ProbeCacheTTL caches existence and listing probes for the given
	// duration (e.g. "30s"). Empty disables the cache.
	ProbeCacheTTL string `json:"probe_cache_ttl,omitempty" yaml:"probe_cache_ttl,omitempty"`
}

// ModelConfig holds configuration for a single exported model artifact.
type ModelConfig struct {
	// OutputURI is the root of the artifact tree the trainer wrote.
	OutputURI string `json:"output_uri" yaml:"output_uri"`

	// ArtifactVersion is the artifact version recorded by the toolkit
	// that produced the export. It selects the directory layout.
	ArtifactVersion int `json:"artifact_version,omitempty" yaml:"artifact_version,omitempty"`

	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
