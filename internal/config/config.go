// Package config loads application settings from an optional YAML file plus
// SCHEDVIEW_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Store   StoreConfig   `mapstructure:"store"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServiceConfig locates the external generation/validation service. The call
// timeout is fixed by the client and deliberately not configurable.
type ServiceConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// StoreConfig locates the session slot store.
type StoreConfig struct {
	Dir string `mapstructure:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the config file at path, or "config.yaml" in the working
// directory when path is empty. A missing file is fine: defaults and
// environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("service.base_url", "http://localhost:8080")
	v.SetDefault("store.dir", ".schedview")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("SCHEDVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	return &cfg, nil
}
