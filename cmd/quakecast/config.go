package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the quakecast configuration file
// (~/.config/quakecast/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	ModelPath string `yaml:"model_path"`
	ModelsDir string `yaml:"models_dir"`

	// Output
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Server
	ServerAddress string   `yaml:"server_address"`
	RateLimit     *float64 `yaml:"rate_limit"`
	RateBurst     *int64   `yaml:"rate_burst"`
	CacheSize     *int64   `yaml:"cache_size"`
	Watch         *bool    `yaml:"watch"`
}

// configPathFunc is a seam for tests.
var configPathFunc = configPath

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "quakecast", "config.yaml")
}

// LoadConfig reads the config file. A missing or invalid file yields a zero Config.
func LoadConfig() Config {
	path := configPathFunc()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}
	}
	return c
}

// applyGlobalConfig fills root flag variables from the config file when the
// flag was not set on the command line or through the environment.
func applyGlobalConfig(c *cli.Command, cfg Config) {
	if cfg.ModelPath != "" && !c.IsSet("model") {
		modelPath = cfg.ModelPath
	}
	if cfg.ModelsDir != "" && !c.IsSet("models-path") {
		modelsPath = cfg.ModelsDir
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// applyServeConfig applies config file defaults to serve command variables.
func applyServeConfig(c *cli.Command, cfg Config, opts *serveOptions) {
	if cfg.ServerAddress != "" && !c.IsSet("addr") {
		opts.addr = cfg.ServerAddress
	}
	if cfg.RateLimit != nil && !c.IsSet("rate-limit") {
		opts.rateLimit = *cfg.RateLimit
	}
	if cfg.RateBurst != nil && !c.IsSet("rate-burst") {
		opts.rateBurst = *cfg.RateBurst
	}
	if cfg.CacheSize != nil && !c.IsSet("cache-size") {
		opts.cacheSize = *cfg.CacheSize
	}
	if cfg.Watch != nil && !c.IsSet("watch") {
		opts.watch = *cfg.Watch
	}
}
