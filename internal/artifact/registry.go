package artifact

import (
	"sync"
	"time"
)

// Resolution holds the resolved locations of one model artifact's exports.
type Resolution struct {
	Artifact         *Artifact `json:"artifact"`
	ServingModelPath string    `json:"serving_model_path"`
	EvalModelPath    string    `json:"eval_model_path"`
	StampedModelPath string    `json:"stamped_model_path"`
	WarmupFilePath   string    `json:"warmup_file_path"`
	ResolvedAt       time.Time `json:"resolved_at"`
}

// Registry stores resolved model artifacts.
type Registry struct {
	resolutions map[string]*Resolution
	mu          sync.RWMutex
}

// NewRegistry creates a new artifact registry.
func NewRegistry() *Registry {
	return &Registry{
		resolutions: make(map[string]*Resolution),
	}
}

// Set adds a resolution to the registry.
func (r *Registry) Set(resolution *Resolution) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolutions[resolution.Artifact.ID] = resolution
}

// Get returns the resolution for the artifact with the given ID.
func (r *Registry) Get(id string) (*Resolution, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolution, ok := r.resolutions[id]
	return resolution, ok
}

// List returns all resolutions.
func (r *Registry) List() []*Resolution {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolutions := make([]*Resolution, 0, len(r.resolutions))
	for _, resolution := range r.resolutions {
		resolutions = append(resolutions, resolution)
	}

	return resolutions
}

// Delete deletes the resolution for the artifact with the given ID.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.resolutions, id)
}
