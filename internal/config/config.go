package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config represents the ygodeck configuration.
type Config struct {
	CatalogPath string `toml:"catalog" env:"CATALOG"`
	Format      string `toml:"format" env:"FORMAT"`
	NoColor     bool   `toml:"no_color" env:"NO_COLOR"`
}

const envPrefix = "YGODECK_"

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Format: "tcg",
	}
}

// XDGConfigHome returns XDG_CONFIG_HOME or its default path.
func XDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// FilePath returns the default path of the config file.
func FilePath() string {
	return filepath.Join(XDGConfigHome(), "ygodeck", "config.toml")
}

// Load reads the config file at path, then applies YGODECK_* environment
// variables. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Wrap(err, "failed to decode config file")
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "failed to stat config file")
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse environment")
	}

	return cfg, nil
}
