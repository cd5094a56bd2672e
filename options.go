package actionx

import (
	"fmt"
	"io"

	"dario.cat/mergo"
	"github.com/charmbracelet/log"
)

// DefaultNamespace joins nested action map keys into action types.
const DefaultNamespace = "/"

// Config controls how CreateActions builds creators.
type Config struct {
	// Namespace separates nested keys in generated action types,
	// e.g. "TODO/ADD".
	Namespace string
	// Logger receives debug output while building. Defaults to a discarding logger.
	Logger *log.Logger
}

// DefaultConfig returns the settings used for any field left unset.
func DefaultConfig() Config {
	return Config{
		Namespace: DefaultNamespace,
		Logger:    log.New(io.Discard),
	}
}

// Option configures a CreateActions call.
type Option func(*Config)

// WithNamespace sets the separator used to join nested action types.
func WithNamespace(ns string) Option {
	return func(c *Config) {
		c.Namespace = ns
	}
}

// WithLogger routes build diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// newConfig applies opts and fills the remaining zero fields from DefaultConfig.
func newConfig(opts []Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := mergo.Merge(&cfg, DefaultConfig(), mergo.WithoutDereference); err != nil {
		return Config{}, fmt.Errorf("apply default options: %w", err)
	}
	return cfg, nil
}
