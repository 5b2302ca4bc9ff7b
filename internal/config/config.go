// Package config provides configuration loading and validation for the analyzer.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// App holds the application-level settings shared by the CLI and the HTTP
// server. Scoring configuration lives in the Registry, not here.
type App struct {
	Port           int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	DatabaseURL    string `mapstructure:"database_url"`
	CategoriesFile string `mapstructure:"categories_file"`
	LogJSON        bool   `mapstructure:"log_json"`
	LogDebug       bool   `mapstructure:"log_debug"`
}

// Defaults applied before any config file or environment override.
const (
	defaultPort = 8080
	envPrefix   = "ATS"
)

// LoadApp reads application settings from an optional config file plus
// ATS_-prefixed environment variables. An empty path means env and defaults
// only; a named file that cannot be read or parsed is an error.
func LoadApp(path string) (*App, error) {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("database_url", "")
	v.SetDefault("categories_file", "")
	v.SetDefault("log_json", false)
	v.SetDefault("log_debug", false)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var app App
	if err := v.Unmarshal(&app); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(&app); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &app, nil
}
