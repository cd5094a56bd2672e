// Package config loads settings for the actionx command.
//
// Sources are applied in order, later ones winning: defaults, ACTIONX_*
// environment variables, then explicit overrides (command-line flags).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables read by Load, e.g. ACTIONX_LOG_LEVEL.
const EnvPrefix = "ACTIONX_"

// Config holds command settings. An empty Namespace keeps the separator the
// manifest declares.
type Config struct {
	LogLevel  string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogJSON   bool   `koanf:"log_json"`
	Namespace string `koanf:"namespace" validate:"omitempty,max=16"`
	Format    string `koanf:"format" validate:"oneof=tree dot json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogJSON:   false,
		Namespace: "",
		Format:    "tree",
	}
}

// Load merges defaults, environment and overrides, then validates the result.
// Override keys use the koanf tag names; empty string values are ignored.
func Load(overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	for key, value := range overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply override %q: %w", key, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}
