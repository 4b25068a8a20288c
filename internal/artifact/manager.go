package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/ekisa-team/modelpath/internal/config"
	"github.com/ekisa-team/modelpath/internal/envvar"
	"github.com/ekisa-team/modelpath/internal/modelpath"
	"github.com/ekisa-team/modelpath/internal/xfs"
)

// Manager resolves the configured model artifacts and keeps the registry
// in sync with the config.
type Manager struct {
	resolver *modelpath.Resolver
	registry *Registry
	mu       sync.RWMutex
}

// NewManager creates a new Manager over the given storage backend.
func NewManager(fs xfs.FS) *Manager {
	return &Manager{
		resolver: modelpath.NewResolver(fs),
		registry: NewRegistry(),
	}
}

// Registry returns the artifact registry.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// LoadFromConfig resolves every model declared in the config and updates
// the registry, dropping entries for models no longer declared.
func (m *Manager) LoadFromConfig(ctx context.Context, cfg *config.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	root := resolvePipelineRoot(cfg)

	resolvedKeys := make(map[string]bool)
	for id, modelConfig := range cfg.Models {
		outputURI := resolveOutputURI(modelConfig.OutputURI, root)

		art := &Artifact{
			ID:        id,
			Type:      TypeModel,
			OutputURI: outputURI,
			Version:   modelConfig.ArtifactVersion,
		}

		isOld, err := IsOldModelArtifact(art)
		if err != nil {
			return fmt.Errorf("failed to classify artifact %s: %w", id, err)
		}

		servingPath, err := m.resolver.ServingModelPath(ctx, outputURI, isOld)
		if err != nil {
			return fmt.Errorf("failed to resolve serving model for %s: %w", id, err)
		}

		evalPath, err := m.resolver.EvalModelPath(ctx, outputURI, isOld)
		if err != nil {
			return fmt.Errorf("failed to resolve eval model for %s: %w", id, err)
		}

		resolution := &Resolution{
			Artifact:         art,
			ServingModelPath: servingPath,
			EvalModelPath:    evalPath,
			StampedModelPath: modelpath.StampedModelPath(outputURI),
			WarmupFilePath:   modelpath.WarmupFilePath(servingPath),
			ResolvedAt:       time.Now(),
		}

		resolvedKeys[id] = true
		m.registry.Set(resolution)

		slog.Info("Model artifact resolved",
			"model_id", id,
			"serving_path", servingPath,
			"eval_path", evalPath,
			"old_layout", isOld,
		)
	}

	// Drop resolutions for models removed from the config (if any)
	current := m.registry.List()
	for _, resolution := range current {
		if !resolvedKeys[resolution.Artifact.ID] {
			m.registry.Delete(resolution.Artifact.ID)
			slog.Info("Model artifact removed from registry", "model_id", resolution.Artifact.ID)
		}
	}

	return nil
}

// resolveOutputURI anchors relative output URIs at the pipeline root.
// URIs with a scheme prefix are always absolute.
func resolveOutputURI(uri, root string) string {
	uri = xfs.ExpandTilde(uri)
	if root == "" || path.IsAbs(uri) || strings.Contains(uri, "://") {
		return uri
	}

	return xfs.Join(root, uri)
}

// resolvePipelineRoot returns the pipeline root.
// Precedence:
// 1. MODELPATH_PIPELINE_ROOT environment variable.
// 2. PipelineRoot field in the config.
func resolvePipelineRoot(cfg *config.Config) string {
	if p := os.Getenv(envvar.ModelpathPipelineRoot); p != "" {
		return xfs.ExpandTilde(p)
	}

	return xfs.ExpandTilde(cfg.Storage.PipelineRoot)
}
