// Package modelpath resolves the on-disk locations of exported models
// under the directory layouts the pipeline has used over time.
//
// Current layout, written by the generic trainer:
//
//	<output URI>
//	|-- Format-TFMA      <- EvalModelDir, EvalModelPath
//	|   |-- saved_model.pb
//	|-- Format-Serving   <- ServingModelDir, ServingModelPath
//	    |-- saved_model.pb
//
// Legacy estimator layout, still readable for backwards compatibility:
//
//	<output URI>
//	|-- eval_model_dir       <- EvalModelDir
//	|   |-- <timestamped>    <- EvalModelPath
//	|       |-- saved_model.pb
//	|-- serving_model_dir    <- ServingModelDir
//	    |-- export
//	        |-- <exporter name>
//	            |-- <timestamped>  <- ServingModelPath
//	                |-- saved_model.pb
package modelpath

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ekisa-team/modelpath/internal/xfs"
)

// Directory names written by current pipeline versions. These must match
// the trees produced by external exporters exactly.
const (
	ServingModelDirName = "Format-Serving"
	EvalModelDirName    = "Format-TFMA"
	StampedModelDirName = "stamped_model"
)

// Directory names written by estimator-based pipeline versions.
const (
	LegacyServingModelDirName = "serving_model_dir"
	LegacyEvalModelDirName    = "eval_model_dir"
)

const (
	exportDirName      = "export"
	savedModelFilename = "saved_model.pb"

	warmupAssetsDirName = "assets.extra"
	warmupFileName      = "tf_serving_warmup_requests"
)

// ServingModelDir returns the directory holding the model exported for
// serving. Purely lexical.
func ServingModelDir(outputURI string, isOldArtifact bool) string {
	if isOldArtifact {
		return xfs.Join(outputURI, LegacyServingModelDirName)
	}
	return xfs.Join(outputURI, ServingModelDirName)
}

// EvalModelDir returns the directory holding the model exported for
// evaluation. Purely lexical.
func EvalModelDir(outputURI string, isOldArtifact bool) string {
	if isOldArtifact {
		return xfs.Join(outputURI, LegacyEvalModelDirName)
	}
	return xfs.Join(outputURI, EvalModelDirName)
}

// StampedModelPath returns the location of the stamped model. Purely lexical.
func StampedModelPath(outputURI string) string {
	return xfs.Join(outputURI, StampedModelDirName)
}

// WarmupFilePath returns the serving warm-up request file location for a
// resolved SavedModel path. This is a lexical operation and does not
// guarantee the path is valid.
func WarmupFilePath(savedModelPath string) string {
	return xfs.Join(savedModelPath, warmupAssetsDirName, warmupFileName)
}

// Resolver locates exported models through storage probes, detecting which
// layout convention an artifact tree uses. It is stateless and safe for
// concurrent use.
type Resolver struct {
	fs     xfs.FS
	logger *slog.Logger
}

// NewResolver creates a Resolver over the given storage backend.
func NewResolver(fs xfs.FS) *Resolver {
	return &Resolver{
		fs:     fs,
		logger: slog.Default(),
	}
}

// layoutRule pairs a storage-state predicate with a resolution step. Rules
// are evaluated in a fixed priority order, current layout before legacy,
// so the fallback precedence stays explicit.
type layoutRule struct {
	name    string
	matches func(ctx context.Context) (bool, error)
	resolve func(ctx context.Context) (string, error)
}

func (r *Resolver) applyRules(ctx context.Context, rules []layoutRule) (string, error) {
	for _, rule := range rules {
		ok, err := rule.matches(ctx)
		if err != nil {
			return "", err
		}
		if ok {
			return rule.resolve(ctx)
		}
	}

	// Rule sets end with a catch-all, so this is unreachable.
	return "", errors.New("modelpath: no layout rule matched")
}

// ServingModelPath resolves the final serving model location under
// outputURI. Trees without an estimator export directory resolve to the
// serving directory itself; estimator trees resolve to the single
// timestamped run nested under the single exporter entry.
func (r *Resolver) ServingModelPath(ctx context.Context, outputURI string, isOldArtifact bool) (string, error) {
	modelDir := ServingModelDir(outputURI, isOldArtifact)
	exportDir := xfs.Join(modelDir, exportDirName)

	rules := []layoutRule{
		{
			name: "flat",
			matches: func(ctx context.Context) (bool, error) {
				ok, err := r.fs.Exists(ctx, exportDir)
				return !ok, err
			},
			resolve: func(context.Context) (string, error) {
				return modelDir, nil
			},
		},
		{
			name:    "estimator",
			matches: matchAlways,
			resolve: func(ctx context.Context) (string, error) {
				r.warnEstimatorLayout("serving", modelDir)
				exporterDir, err := r.onlyChild(ctx, exportDir)
				if err != nil {
					return "", err
				}
				return r.onlyChild(ctx, exporterDir)
			},
		},
	}

	return r.applyRules(ctx, rules)
}

// EvalModelPath resolves the final evaluation model location under
// outputURI. When no evaluation model was ever exported, the serving model
// is used for evaluation instead.
func (r *Resolver) EvalModelPath(ctx context.Context, outputURI string, isOldArtifact bool) (string, error) {
	modelDir := EvalModelDir(outputURI, isOldArtifact)
	modelFile := xfs.Join(modelDir, savedModelFilename)

	rules := []layoutRule{
		{
			name: "flat",
			matches: func(ctx context.Context) (bool, error) {
				return r.fs.Exists(ctx, modelFile)
			},
			resolve: func(context.Context) (string, error) {
				return modelDir, nil
			},
		},
		{
			name: "estimator",
			matches: func(ctx context.Context) (bool, error) {
				return r.fs.Exists(ctx, modelDir)
			},
			resolve: func(ctx context.Context) (string, error) {
				r.warnEstimatorLayout("eval", modelDir)
				return r.onlyChild(ctx, modelDir)
			},
		},
		{
			name:    "serving-fallback",
			matches: matchAlways,
			resolve: func(ctx context.Context) (string, error) {
				return r.ServingModelPath(ctx, outputURI, isOldArtifact)
			},
		},
	}

	return r.applyRules(ctx, rules)
}

func matchAlways(context.Context) (bool, error) {
	return true, nil
}

// onlyChild returns the single entry under dir. Estimator exports nest
// exactly one directory per level; anything else is a malformed tree.
func (r *Resolver) onlyChild(ctx context.Context, dir string) (string, error) {
	children, err := r.fs.ListDir(ctx, dir)
	if err != nil {
		return "", err
	}
	if len(children) != 1 {
		return "", &ExportError{Dir: dir, Entries: len(children)}
	}

	return children[0], nil
}

func (r *Resolver) warnEstimatorLayout(kind, modelDir string) {
	r.logger.Warn("Estimator-based model exports are deprecated, re-export with the flat layout",
		"model", kind,
		"dir", modelDir,
	)
}
