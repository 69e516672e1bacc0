// Package config loads settings from the environment and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix  = "WINERROR"
	envConfig  = "WINERROR_CONFIG"
	configName = "config.toml"
)

// Config keys.
const (
	KeyLanguage   = "language"
	KeySource     = "source"
	KeyLogLevel   = "log-level"
	KeyUILanguage = "ui-language"
)

type Config struct {
	// Language is used instead of the current locale when --language is absent.
	Language string
	// Source selects the message table: auto, system or catalog.
	Source     string
	LogLevel   string
	UILanguage string
}

func Default() *Config {
	return &Config{
		Source:   "auto",
		LogLevel: "warn",
	}
}

// Load reads WINERROR_* environment variables and, if present, the config
// file named by WINERROR_CONFIG or <user config dir>/winerror/config.toml.
func Load() (*Config, error) {
	return load(viper.New(), os.Getenv(envConfig))
}

func load(v *viper.Viper, file string) (*Config, error) {
	def := Default()
	v.SetDefault(KeyLanguage, def.Language)
	v.SetDefault(KeySource, def.Source)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyUILanguage, def.UILanguage)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	explicit := file != ""
	if !explicit {
		if dir, err := os.UserConfigDir(); err == nil {
			file = filepath.Join(dir, "winerror", configName)
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			missing := errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
			if explicit || !missing {
				return nil, fmt.Errorf("read config %s: %w", file, err)
			}
		}
	}

	return &Config{
		Language:   strings.TrimSpace(v.GetString(KeyLanguage)),
		Source:     strings.TrimSpace(v.GetString(KeySource)),
		LogLevel:   strings.TrimSpace(v.GetString(KeyLogLevel)),
		UILanguage: strings.TrimSpace(v.GetString(KeyUILanguage)),
	}, nil
}
