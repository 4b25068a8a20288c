package main

import (
	"context"
	"flag"
	"log/slog"
	"path"
	"time"

	"github.com/ekisa-team/modelpath/internal/artifact"
	"github.com/ekisa-team/modelpath/internal/config"
	"github.com/ekisa-team/modelpath/internal/env"
	"github.com/ekisa-team/modelpath/internal/logger"
	"github.com/ekisa-team/modelpath/internal/xfs"
)

func main() {
	var (
		flagConfigPath = flag.String("config", path.Join(config.DefaultConfigPath(), "config.yaml"), "Path to config file")
		flagSchemaPath = flag.String("schema", path.Join(config.DefaultConfigPath(), "modelpath.v1.schema.json"), "Path to schema file")
		flagWatch      = flag.Bool("watch", false, "Keep running and re-resolve on config changes")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/modelpath.log"),
		),
	)

	cfg, err := config.LoadAndValidate(*flagConfigPath, *flagSchemaPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		return
	}

	manager := newManager(cfg)
	if err := manager.LoadFromConfig(context.Background(), cfg); err != nil {
		slog.Error("Failed to resolve model artifacts", "error", err)
		return
	}

	slog.Info("Config loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	if !*flagWatch {
		return
	}

	// Reloads reuse the manager so the registry diff drops models removed
	// from the config.
	_, err = config.NewWatcher(*flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload config", "error", err)
			return
		}

		if err := manager.LoadFromConfig(context.Background(), cfg); err != nil {
			slog.Error("Failed to resolve model artifacts", "error", err)
			return
		}
	})
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
		return
	}

	select {}
}

// newManager builds a Manager over the local filesystem, with probe
// caching when the config asks for it.
func newManager(cfg *config.Config) *artifact.Manager {
	var fs xfs.FS = xfs.NewOS()
	if cfg.Storage.ProbeCacheTTL != "" {
		ttl, err := time.ParseDuration(cfg.Storage.ProbeCacheTTL)
		if err != nil {
			slog.Warn("Invalid probe_cache_ttl, using default", "value", cfg.Storage.ProbeCacheTTL, "error", err)
			ttl = 0
		}
		fs = xfs.NewCached(fs, ttl)
	}

	return artifact.NewManager(fs)
}
