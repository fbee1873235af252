// Package config loads triage configuration from a YAML file, with
// TRIAGE_* environment variables taking precedence over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration unless told
// otherwise.
const DefaultPath = "triage.yaml"

// Config holds all triage configuration.
type Config struct {
	RepoOwner       string       `yaml:"repo_owner"`
	RepoName        string       `yaml:"repo_name"`
	LogFile         string       `yaml:"log_file"`
	MonitorInterval int          `yaml:"monitor_interval"` // seconds between rescans
	MaxBatch        int          `yaml:"max_errors_per_batch"`
	LogLevel        string       `yaml:"log_level"`
	Output          OutputConfig `yaml:"output"`
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Format string `yaml:"format"` // "stdout", "file", or "both"
	Path   string `yaml:"path"`   // file path for "file" and "both"
	Pretty bool   `yaml:"pretty"` // pretty-print JSON on stdout
	Full   bool   `yaml:"full"`   // include issue/PR bodies and fix text
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		RepoOwner:       "example",
		RepoName:        "webapp",
		LogFile:         "logs/app.log",
		MonitorInterval: 60,
		MaxBatch:        10,
		LogLevel:        "info",
		Output: OutputConfig{
			Format: "stdout",
			Path:   "reports.ndjson",
		},
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist. Environment overrides apply in both cases.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Interval returns the rescan interval as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.MonitorInterval) * time.Second
}

func applyEnv(c *Config) {
	c.RepoOwner = getenv("TRIAGE_REPO_OWNER", c.RepoOwner)
	c.RepoName = getenv("TRIAGE_REPO_NAME", c.RepoName)
	c.LogFile = getenv("TRIAGE_LOG_FILE", c.LogFile)
	c.LogLevel = getenv("TRIAGE_LOG_LEVEL", c.LogLevel)
	c.Output.Format = getenv("TRIAGE_OUTPUT", c.Output.Format)
	c.Output.Path = getenv("TRIAGE_OUTPUT_PATH", c.Output.Path)
	c.MonitorInterval = getenvInt("TRIAGE_INTERVAL", c.MonitorInterval)
	c.MaxBatch = getenvInt("TRIAGE_MAX_BATCH", c.MaxBatch)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
