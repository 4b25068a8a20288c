package envvar

const (
	// ModelpathEnv is the environment variable used to determine the environment
	ModelpathEnv = "MODELPATH_ENV"

	// ModelpathPipelineRoot overrides the pipeline root that relative model
	// output URIs are resolved against
	ModelpathPipelineRoot = "MODELPATH_PIPELINE_ROOT"
)
