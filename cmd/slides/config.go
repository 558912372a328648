package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/slides/internal/model"
)

const (
	defaultServerURL = "http://127.0.0.1:8000"
	defaultMaxSlides = model.DefaultMaxSlides
	defaultSkin      = model.DefaultSkin
	defaultTimeout   = model.DefaultRequestTimeout
	defaultLogLevel  = "info"
)

// cliConfig holds the TUI client configuration.
type cliConfig struct {
	ServerURL      string        `mapstructure:"server-url"`
	SessionID      string        `mapstructure:"session-id"`
	MaxSlides      int           `mapstructure:"max-slides"`
	ExportDir      string        `mapstructure:"export-dir"`
	Skin           string        `mapstructure:"skin"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	LogLevel       string        `mapstructure:"log-level"`
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SLIDES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("server-url", defaultServerURL)
	v.SetDefault("session-id", "")
	v.SetDefault("max-slides", defaultMaxSlides)
	v.SetDefault("export-dir", ".")
	v.SetDefault("skin", defaultSkin)
	v.SetDefault("request-timeout", defaultTimeout)
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "slides", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	// Expand ~ in export-dir
	if strings.HasPrefix(cfg.ExportDir, "~/") {
		cfg.ExportDir = filepath.Join(home, cfg.ExportDir[2:])
	}
	return cfg, nil
}

func (c cliConfig) validate() error {
	if c.MaxSlides < model.MinSlides || c.MaxSlides > model.MaxSlides {
		return model.ConfigError(fmt.Sprintf("invalid max-slides: %d (want %d-%d)", c.MaxSlides, model.MinSlides, model.MaxSlides), nil)
	}
	if c.RequestTimeout <= 0 {
		return model.ConfigError(fmt.Sprintf("invalid request-timeout: %s", c.RequestTimeout), nil)
	}
	if strings.TrimSpace(c.ServerURL) == "" {
		return model.ConfigError("server-url is required", nil)
	}
	return nil
}
