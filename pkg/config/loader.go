// ABOUTME: Config loader layering defaults, an optional YAML file and env vars
// ABOUTME: Env keys use the FNEWS_ prefix with double underscores for nesting

package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "FNEWS_"
	configPath = "FNEWS_CONFIG"
)

// Load builds a Config by layering defaults, an optional file, and env
// vars. Order of precedence (low -> high):
//  1. Default()
//  2. YAML file if FNEWS_CONFIG is set
//  3. env (prefix FNEWS_)
//
// Nested keys use a double underscore: FNEWS_SERVER__ADDR -> server.addr,
// while single underscores stay literal: FNEWS_LOG_LEVEL -> log_level.
func Load() (*Config, error) {
	cfg := *Default()

	k := koanf.New(".")

	if path := os.Getenv(configPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
