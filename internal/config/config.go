// Package config assembles client configuration from the environment, with
// an optional YAML file underneath. Precedence: env > file > defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// BaseURL is the API host without the /api suffix.
	BaseURL string

	// Timeout is the fixed per-request upper bound.
	Timeout time.Duration

	// CacheTTL is the freshness window for memoized reads.
	CacheTTL time.Duration

	// RedisAddr, when set, switches the query cache from in-process memory
	// to Redis so results survive across CLI invocations.
	RedisAddr string

	// TokenPath overrides where the bearer token file lives.
	TokenPath string
}

// fileConfig is the YAML shape; durations are strings ("3s", "10m") parsed
// with time.ParseDuration.
type fileConfig struct {
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	CacheTTL  string `yaml:"cache_ttl"`
	RedisAddr string `yaml:"redis_addr"`
	TokenPath string `yaml:"token_path"`
}

func defaults() Config {
	return Config{
		BaseURL:  "http://localhost:8000",
		Timeout:  10 * time.Second,
		CacheTTL: 5 * time.Minute,
	}
}

// Load reads the config file at path (when non-empty and present) and then
// lets the environment override it.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fc fileConfig
			if err := yaml.Unmarshal(raw, &fc); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
			if err := apply(&cfg, fc); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, err
		}
	}

	cfg.BaseURL = getenv("PRODTRACK_API_URL", cfg.BaseURL)
	cfg.RedisAddr = getenv("PRODTRACK_REDIS_ADDR", cfg.RedisAddr)
	cfg.TokenPath = getenv("PRODTRACK_TOKEN_PATH", cfg.TokenPath)
	if d, ok := getenvDuration("PRODTRACK_TIMEOUT"); ok {
		cfg.Timeout = d
	}
	if d, ok := getenvDuration("PRODTRACK_CACHE_TTL"); ok {
		cfg.CacheTTL = d
	}
	return cfg, nil
}

func apply(cfg *Config, fc fileConfig) error {
	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.RedisAddr != "" {
		cfg.RedisAddr = fc.RedisAddr
	}
	if fc.TokenPath != "" {
		cfg.TokenPath = fc.TokenPath
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if fc.CacheTTL != "" {
		d, err := time.ParseDuration(fc.CacheTTL)
		if err != nil {
			return err
		}
		cfg.CacheTTL = d
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string) (time.Duration, bool) {
	v := os.Getenv(k)
	if v == "" {
		return 0, false
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, false
	}
	return d, true
}
