package dialect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schemalens/schemalens/pkg/dialect"
)

func TestRegistry(t *testing.T) {
	cfg := testConfig()
	cfg.Name = "registrytest"
	dialect.Register(cfg, "rtest", "rt")

	t.Run("lookup by name", func(t *testing.T) {
		got, err := dialect.Get("registrytest")
		require.NoError(t, err)
		assert.Same(t, cfg, got)
	})

	t.Run("lookup by alias", func(t *testing.T) {
		got, err := dialect.Get("rtest")
		require.NoError(t, err)
		assert.Same(t, cfg, got)
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		got, err := dialect.Get("RegistryTest")
		require.NoError(t, err)
		assert.Same(t, cfg, got)
	})

	t.Run("unknown dialect", func(t *testing.T) {
		_, err := dialect.Get("nosuchdialect")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown dialect")
	})

	t.Run("list includes aliases sorted", func(t *testing.T) {
		names := dialect.List()
		assert.Contains(t, names, "registrytest")
		assert.Contains(t, names, "rtest")
		assert.Contains(t, names, "rt")
		assert.IsNonDecreasing(t, names)
	})
}
