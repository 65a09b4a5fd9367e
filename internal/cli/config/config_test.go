package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	// Import dialect packages to ensure dialects are registered via init()
	_ "github.com/schemalens/schemalens/pkg/dialects"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("dialect", "d", "", "")
	flags.StringP("output", "o", "", "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, DefaultDialect, s.Dialect)
	assert.Equal(t, DefaultOutput, s.Output)
	assert.False(t, s.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "schemalens.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dialect: postgres\nverbose: true\n"), 0644))

	s, err := Load(cfgPath, newFlags())
	require.NoError(t, err)

	assert.Equal(t, "postgres", s.Dialect)
	assert.True(t, s.Verbose)
	assert.Equal(t, DefaultOutput, s.Output)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "schemalens.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dialect: postgres\n"), 0644))

	t.Setenv("SCHEMALENS_DIALECT", "mysql")

	s, err := Load(cfgPath, newFlags())
	require.NoError(t, err)
	assert.Equal(t, "mysql", s.Dialect)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SCHEMALENS_DIALECT", "mysql")

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--dialect", "sqlite"}))

	s, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", s.Dialect)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	t.Setenv("SCHEMALENS_OUTPUT", "json")

	s, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "json", s.Output)
}

func TestLoadInvalidDialect(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--dialect", "db2"}))

	_, err := Load("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dialect")
}

func TestLoadInvalidOutput(t *testing.T) {
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--output", "xml"}))

	_, err := Load("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoadBadConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "schemalens.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{ unclosed"), 0644))

	_, err := Load(cfgPath, newFlags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidateAcceptsAliases(t *testing.T) {
	s := &Settings{Dialect: "pg", Output: "table"}
	assert.NoError(t, s.Validate())
}
