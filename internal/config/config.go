// Package config loads the admin settings from defaults, an optional YAML
// file, a .env file and NORTHWIND_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL = "https://northwind-backend-b088.onrender.com/api"
	DefaultTimeout = 30 * time.Second

	envPrefix = "NORTHWIND_"
)

// Config is the full settings surface.
type Config struct {
	AppName       string        `yaml:"app_name"`
	Version       string        `yaml:"version"`
	BaseURL       string        `yaml:"base_url"`
	Timeout       time.Duration `yaml:"timeout"`
	Addr          string        `yaml:"addr"`
	BasePath      string        `yaml:"base_path"`
	LogLevel      string        `yaml:"log_level"`
	RevenueLimit  int           `yaml:"revenue_limit"`
	Theme         string        `yaml:"theme"`
	Variant       string        `yaml:"variant"`
	Renderer      string        `yaml:"renderer"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		AppName:       "Northwind Traders",
		Version:       "1.0.0",
		BaseURL:       DefaultBaseURL,
		Timeout:       DefaultTimeout,
		Addr:          ":8080",
		LogLevel:      "INFO",
		RevenueLimit:  10,
		Theme:         "northwind",
		Variant:       "light",
		Renderer:      "fomantic",
		ShutdownGrace: 5 * time.Second,
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration. path names an optional YAML file; envFiles
// are loaded with godotenv before the environment is read, and missing ones
// are skipped. lookup defaults to os.LookupEnv.
func Load(path string, lookup LookupFunc, envFiles ...string) (Config, error) {
	cfg := Defaults()

	if strings.TrimSpace(path) != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := loadEnvFiles(envFiles...); err != nil {
		return Config{}, err
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the client cannot work with.
func (c Config) Validate() error {
	raw := strings.TrimSpace(c.BaseURL)
	if raw == "" {
		return errors.New("config: base_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("config: base_url must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("config: base_url %q has no host", raw)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("config: addr is required")
	}
	return nil
}

func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	return nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	str("BASE_URL", &cfg.BaseURL)
	str("ADDR", &cfg.Addr)
	str("BASE_PATH", &cfg.BasePath)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("THEME", &cfg.Theme)
	str("VARIANT", &cfg.Variant)
	str("RENDERER", &cfg.Renderer)

	if v, ok := lookup(envPrefix + "TIMEOUT"); ok && strings.TrimSpace(v) != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return err
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(envPrefix + "REVENUE_LIMIT"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sREVENUE_LIMIT: %w", envPrefix, err)
		}
		cfg.RevenueLimit = n
	}
	return nil
}

// parseTimeout accepts a Go duration ("45s") or a bare number of
// milliseconds ("30000").
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %sTIMEOUT: %w", envPrefix, err)
	}
	return d, nil
}
