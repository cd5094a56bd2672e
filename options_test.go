package actionx

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := newConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultNamespace, cfg.Namespace)
		assert.NotNil(t, cfg.Logger)
	})

	t.Run("explicit values win", func(t *testing.T) {
		l := log.New(io.Discard)
		cfg, err := newConfig([]Option{WithNamespace("."), WithLogger(l), nil})
		require.NoError(t, err)
		assert.Equal(t, ".", cfg.Namespace)
		assert.Same(t, l, cfg.Logger)
	})

	t.Run("empty namespace falls back to default", func(t *testing.T) {
		cfg, err := newConfig([]Option{WithNamespace("")})
		require.NoError(t, err)
		assert.Equal(t, DefaultNamespace, cfg.Namespace)
	})
}
