package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "models"],
  "properties": {
    "version": {"type": "string"},
    "storage": {
      "type": "object",
      "properties": {
        "pipeline_root": {"type": "string"},
        "probe_cache_ttl": {"type": "string"}
      },
      "additionalProperties": false
    },
    "models": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["output_uri"],
        "properties": {
          "output_uri": {"type": "string", "minLength": 1},
          "artifact_version": {"type": "integer", "minimum": 0},
          "tags": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

func writeTestConfig(t *testing.T, yaml string) (configPath, schemaPath string) {
	t.Helper()

	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	schemaPath = filepath.Join(dir, "modelpath.v1.schema.json")

	require.NoError(t, os.WriteFile(configPath, []byte(yaml), 0o644))
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	return configPath, schemaPath
}

func TestLoadAndValidate(t *testing.T) {
	configPath, schemaPath := writeTestConfig(t, `
version: "1"
storage:
  pipeline_root: /var/pipelines
  probe_cache_ttl: 30s
models:
  taxi:
    output_uri: taxi/Trainer/model/12
    artifact_version: 1
    tags: [taxi]
`)

	cfg, err := LoadAndValidate(configPath, schemaPath)
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "/var/pipelines", cfg.Storage.PipelineRoot)
	assert.Equal(t, "30s", cfg.Storage.ProbeCacheTTL)

	taxi, ok := cfg.Models["taxi"]
	require.True(t, ok)
	assert.Equal(t, "taxi/Trainer/model/12", taxi.OutputURI)
	assert.Equal(t, 1, taxi.ArtifactVersion)
}

func TestLoadAndValidate_MissingOutputURI(t *testing.T) {
	configPath, schemaPath := writeTestConfig(t, `
version: "1"
models:
  taxi:
    artifact_version: 1
`)

	_, err := LoadAndValidate(configPath, schemaPath)
	assert.ErrorContains(t, err, "validation failed")
}

func TestLoadAndValidate_InvalidYAML(t *testing.T) {
	configPath, schemaPath := writeTestConfig(t, "version: [unterminated")

	_, err := LoadAndValidate(configPath, schemaPath)
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	_, schemaPath := writeTestConfig(t, `version: "1"`)

	_, err := LoadAndValidate(filepath.Join(t.TempDir(), "nope.yaml"), schemaPath)
	assert.Error(t, err)
}
