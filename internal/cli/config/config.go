// Package config loads CLI configuration for schemalens.
//
// Configuration is merged from four sources with the following precedence
// (highest to lowest): flags > environment variables > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/schemalens/schemalens/pkg/dialect"
)

// Settings holds the resolved CLI configuration.
type Settings struct {
	Dialect string `koanf:"dialect"`
	Output  string `koanf:"output"`
	Verbose bool   `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect = "standard"
	DefaultOutput  = "table"
)

// OutputFormats lists the accepted --output values.
var OutputFormats = []string{"table", "json", "yaml"}

var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > schemalens.yaml > schemalens.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"schemalens.yaml", "schemalens.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load merges configuration from defaults, an optional config file,
// SCHEMALENS_ environment variables, and explicitly set flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect": DefaultDialect,
		"output":  DefaultOutput,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// SCHEMALENS_DIALECT -> dialect
	if err := k.Load(env.Provider("SCHEMALENS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SCHEMALENS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return f.Name, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the settings name a registered dialect and a known
// output format.
func (s *Settings) Validate() error {
	if _, err := dialect.Get(s.Dialect); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, f := range OutputFormats {
		if s.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (expected one of %s)",
		s.Output, strings.Join(OutputFormats, ", "))
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}
