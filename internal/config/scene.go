package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tween/internal/spec"
)

const SupportedSchema = "v1"

// LoadSceneSpec parses a scene YAML and validates its schema_version.
func LoadSceneSpec(path string) (spec.File, error) {
	var cfg spec.File
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.SchemaVersion == "" {
		cfg.SchemaVersion = SupportedSchema
	}
	if cfg.SchemaVersion != SupportedSchema {
		return cfg, fmt.Errorf("scene schema_version %q not supported (want %q)", cfg.SchemaVersion, SupportedSchema)
	}
	for i, t := range cfg.Transitions {
		if t.Actor == "" || t.Property == "" {
			return cfg, fmt.Errorf("scene transition %d: actor and property are required", i)
		}
		if t.DurationMS <= 0 {
			return cfg, fmt.Errorf("scene transition %d: duration_ms must be positive", i)
		}
	}
	return cfg, nil
}
