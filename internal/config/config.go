// Package config loads pdfextract settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvFile           = "PDFEXTRACT_CONFIG"
	EnvDoclingBin     = "PDFEXTRACT_DOCLING_BIN"
	EnvDoclingTimeout = "PDFEXTRACT_DOCLING_TIMEOUT"
	EnvVerbose        = "PDFEXTRACT_VERBOSE"
)

// Config is the file schema
type Config struct {
	Docling Docling `yaml:"docling"`
	Verbose bool    `yaml:"verbose"`
}

// Docling configures the docling CLI
type Docling struct {
	Bin     string        `yaml:"bin"`
	Timeout time.Duration `yaml:"timeout"`
	Args    []string      `yaml:"args"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Docling: Docling{
			Bin:     "docling",
			Timeout: 10 * time.Minute,
		},
	}
}

// Load returns the defaults overlaid with the file at path, when path is not
// empty, and then with the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvDoclingBin); v != "" {
		cfg.Docling.Bin = v
	}
	if v := os.Getenv(EnvDoclingTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvDoclingTimeout)
		}
		cfg.Docling.Timeout = d
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvVerbose)
		}
		cfg.Verbose = b
	}
	return nil
}
