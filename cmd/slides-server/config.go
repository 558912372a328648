package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/slides/internal/model"
)

const (
	defaultAPIAddr           = "127.0.0.1:8000"
	defaultArtifactCacheSize = 64
	defaultLogLevel          = "info"
)

// appConfig is the generation service configuration.
type appConfig struct {
	APIAddr           string   `mapstructure:"api-addr"`
	Documents         []string `mapstructure:"documents"`
	ArtifactCacheSize int      `mapstructure:"artifact-cache-size"`
	LogLevel          string   `mapstructure:"log-level"`
	ConfigPath        string   `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SLIDES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("api-addr", defaultAPIAddr)
	v.SetDefault("documents", []string{})
	v.SetDefault("artifact-cache-size", defaultArtifactCacheSize)
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "slides", "server.yml"))
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
	cfg.ConfigPath = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.ConfigPath); err != nil {
		cfg.ConfigPath = ""
	}

	if _, _, err := net.SplitHostPort(cfg.APIAddr); err != nil {
		return cfg, model.ConfigError(fmt.Sprintf("invalid api-addr %q", cfg.APIAddr), err)
	}
	if cfg.ArtifactCacheSize <= 0 {
		return cfg, model.ConfigError(fmt.Sprintf("invalid artifact-cache-size: %d", cfg.ArtifactCacheSize), nil)
	}

	// Expand ~ in document paths
	for i, p := range cfg.Documents {
		if strings.HasPrefix(p, "~/") {
			cfg.Documents[i] = filepath.Join(home, p[2:])
		}
	}
	return cfg, nil
}
