package config

import (
	"os"

	"github.com/pseudomuto/prettify/pkg/consts"
	"github.com/pseudomuto/prettify/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads the file named by PRETTIFY_CONFIG, falling back to prettify.yaml or
	// prettify.toml in the working directory. Defaults are used when none exists
	// so that every command can run without a configuration file.
	func() (*Config, error) {
		if path := os.Getenv(consts.ConfigEnvVar); path != "" {
			return LoadConfigFile(path)
		}

		for _, path := range []string{consts.ConfigFile, consts.ConfigFileTOML} {
			if _, err := os.Stat(path); err == nil {
				return LoadConfigFile(path)
			}
		}

		return Default(), nil
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))
