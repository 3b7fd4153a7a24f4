// Package config resolves dmaicboard settings from defaults, an optional
// YAML file, a .env file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexanderramin/dmaicboard/internal/domain"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Command-line flags override it.
type Config struct {
	Source        string
	Table         string
	Format        string
	HTTPTimeoutMs int
	LogCalls      bool
}

// fileConfig mirrors the YAML file; nil fields fall through to defaults.
type fileConfig struct {
	Source        string `yaml:"source"`
	Table         string `yaml:"table"`
	Format        string `yaml:"format"`
	HTTPTimeoutMs *int   `yaml:"http_timeout_ms"`
	LogCalls      *bool  `yaml:"log_calls"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Source:        "Actividades.csv",
		Table:         "Actividades",
		Format:        "text",
		HTTPTimeoutMs: 15000,
		LogCalls:      false,
	}
}

// HTTPTimeout returns the remote fetch timeout.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

// LoadConfig layers, lowest to highest precedence: defaults, the YAML file
// named by DMAICBOARD_CONFIG, and environment variables. envFiles are
// loaded into the environment first without overriding variables that are
// already set; missing .env files are ignored.
func LoadConfig(envFiles ...string) (Config, error) {
	loadDotEnv(envFiles)

	cfg := DefaultConfig()

	if path := os.Getenv("DMAICBOARD_CONFIG"); path != "" {
		fc, err := readFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = merge(cfg, fc)
	}

	if v := os.Getenv("DMAICBOARD_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("DMAICBOARD_TABLE"); v != "" {
		cfg.Table = v
	}
	if v := os.Getenv("DMAICBOARD_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("DMAICBOARD_HTTP_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeoutMs = n
		}
	}
	if v := os.Getenv("DMAICBOARD_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}

func loadDotEnv(files []string) {
	if len(files) == 0 {
		_ = godotenv.Load()
		return
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

func readFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &fc, nil
}

func merge(cfg Config, fc *fileConfig) Config {
	cfg.Source = domain.CoalesceStr(fc.Source, cfg.Source)
	cfg.Table = domain.CoalesceStr(fc.Table, cfg.Table)
	cfg.Format = domain.CoalesceStr(fc.Format, cfg.Format)
	cfg.HTTPTimeoutMs = domain.FromPtr(cfg.HTTPTimeoutMs, positive(fc.HTTPTimeoutMs))
	cfg.LogCalls = domain.FromPtr(cfg.LogCalls, fc.LogCalls)
	return cfg
}

func positive(p *int) *int {
	if p == nil || *p <= 0 {
		return nil
	}
	return p
}
