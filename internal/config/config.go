package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCorpus = "silesia.tar"
	DefaultOutput = "compression_benchmark_results.json"
)

type Config struct {
	Corpus string `yaml:"corpus"`
	Output string `yaml:"output"`

	// Codecs selects which codecs to benchmark; empty means all known.
	Codecs []string `yaml:"codecs"`

	// TrialTimeoutSeconds bounds each external tool invocation. 0 disables
	// the timeout, matching the trusted-local-tool assumption.
	TrialTimeoutSeconds int `yaml:"trial_timeout_seconds"`

	// Binaries overrides the default binary per codec, e.g. pointing
	// "snappy" at /opt/bin/snzip.
	Binaries map[string]string `yaml:"binaries"`

	// Variants lists extra binaries to benchmark side by side with the
	// default; the full level sweep repeats once per variant.
	Variants map[string][]string `yaml:"variants"`
}

// Default is the configuration used when no config file exists.
func Default() *Config {
	return &Config{Corpus: DefaultCorpus, Output: DefaultOutput}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Corpus == "" {
		return fmt.Errorf("corpus is required")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output is required")
	}
	if cfg.TrialTimeoutSeconds < 0 {
		return fmt.Errorf("trial_timeout_seconds must not be negative")
	}
	return nil
}
