// Package config holds the gatherer configuration: defaults, optional
// YAML file, and environment overrides, in that precedence order. Flag
// overrides are applied on top by the CLI layer.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Source selects how cluster data is collected.
const (
	// SourceCLI shells out to oc/kubectl.
	SourceCLI = "cli"
	// SourceAPI talks to the API server through client-go.
	SourceAPI = "api"
)

// Config carries every tunable of a gather run.
type Config struct {
	// Kubeconfig is the kubeconfig path for the API source. Empty means
	// automatic discovery.
	Kubeconfig string `yaml:"kubeconfig"`

	// Source is "cli" or "api".
	Source string `yaml:"source"`

	// CLIPath overrides the cluster CLI binary. Empty means autodetect
	// (oc preferred, kubectl fallback).
	CLIPath string `yaml:"cliPath"`

	// NamespaceResource is the resource listed to enumerate namespaces.
	// Empty means autodetect: "projects" under oc, "namespaces" otherwise.
	NamespaceResource string `yaml:"namespaceResource"`

	// WorkloadTypes are the workload resources inventoried per namespace.
	WorkloadTypes []string `yaml:"workloadTypes"`

	// ExcludeNamespaces are wildcard patterns (prefix*, *suffix,
	// *contains*, exact) for namespaces to skip.
	ExcludeNamespaces []string `yaml:"excludeNamespaces"`

	// RateLimit paces CLI invocations, in calls per second.
	RateLimit float64 `yaml:"rateLimit"`

	// RateLimitBurst is the CLI invocation burst size.
	RateLimitBurst int `yaml:"rateLimitBurst"`

	// Concurrency bounds the node gather fan-out.
	Concurrency int `yaml:"concurrency"`

	// OutputDir is the report directory. Empty means a timestamped
	// resource-gather_YYYYMMDD_HHMMSS directory under the working dir.
	OutputDir string `yaml:"outputDir"`

	// Format is the report output format: csv, json, or yaml.
	Format string `yaml:"format"`

	// MetricsListen is the address of the optional metrics listener.
	// Empty disables it.
	MetricsListen string `yaml:"metricsListen"`

	// Debug raises log verbosity and echoes reports to stdout.
	Debug bool `yaml:"debug"`

	// LogJSON switches log output to JSON.
	LogJSON bool `yaml:"logJson"`
}

// Default returns the built-in configuration with environment overrides
// applied.
func Default() *Config {
	cfg := &Config{
		Source:         SourceCLI,
		WorkloadTypes:  []string{"deployment", "deploymentconfig", "statefulset"},
		RateLimit:      20,
		RateLimitBurst: 40,
		Concurrency:    4,
		Format:         "csv",
	}

	if v := os.Getenv("RESGATHER_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("RESGATHER_CLI_PATH"); v != "" {
		cfg.CLIPath = v
	}
	if v := os.Getenv("RESGATHER_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("RESGATHER_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("RESGATHER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Concurrency = n
		}
	}

	return cfg
}

// Load returns the default configuration merged with the YAML file at
// path. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks fields the rest of the program assumes to be sane.
func (c *Config) Validate() error {
	if c.Source != SourceCLI && c.Source != SourceAPI {
		return fmt.Errorf("invalid source: %q (must be %q or %q)", c.Source, SourceCLI, SourceAPI)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v", c.RateLimit)
	}
	return nil
}
