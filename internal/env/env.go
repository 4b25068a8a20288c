package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/modelpath/internal/envvar"
)

// Environment is the runtime environment of the application.
type Environment string

const (
	// Development is the default environment for local work.
	Development Environment = "development"

	// Production is the environment for deployed instances.
	Production Environment = "production"
)

// FromEnv determines the environment from MODELPATH_ENV. Unknown or empty
// values fall back to Development.
func FromEnv() Environment {
	switch strings.ToLower(os.Getenv(envvar.ModelpathEnv)) {
	case "production", "prod":
		return Production
	default:
		return Development
	}
}
