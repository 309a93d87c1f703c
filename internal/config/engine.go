package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Engine is the process configuration, distinct from the scene document:
// where to listen, which scene to play, and the clock default.
type Engine struct {
	HTTPPort int    `koanf:"http_port"`
	Scene    string `koanf:"scene"`

	TickInterval time.Duration `koanf:"tick_interval"`

	Log struct {
		Level string `koanf:"level"`
		JSON  bool   `koanf:"json"`
	} `koanf:"log"`
}

// LoadEngineConfig merges YAML (if present) with env-vars
// (prefix `TWEEN_ENGINE__`, delimiter `__`).
func LoadEngineConfig(path string) (Engine, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Engine{}, err
		}
	}
	_ = k.Load(env.Provider("TWEEN_ENGINE__", "__", nil), nil)

	var cfg Engine
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(c *Engine) {
	if c.HTTPPort == 0 {
		c.HTTPPort = 8090
	}
	if c.Scene == "" {
		c.Scene = "scene.yml"
	}
	if c.TickInterval == 0 {
		c.TickInterval = 15 * time.Millisecond
	}
}
