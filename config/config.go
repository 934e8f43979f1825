package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/t14raptor/go-fast-eiod/analysis"
)

// Config holds all configuration options for eiod.
type Config struct {
	// Analysis limits
	Analysis AnalysisConfig `koanf:"analysis"`

	// Paths skipped when walking directories
	Exclude ExcludeConfig `koanf:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output"`

	// Number of files analyzed concurrently
	Workers int `koanf:"workers"`
}

// AnalysisConfig bounds the analysis and selects what is analyzed.
type AnalysisConfig struct {
	MaxDepth       int  `koanf:"max_depth"`
	MaxSteps       int  `koanf:"max_steps"`
	FunctionBodies bool `koanf:"function_bodies"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns []string `koanf:"patterns"`
	Dirs     []string `koanf:"dirs"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown
	Color  bool   `koanf:"color"`
}

var formats = []string{"text", "json", "markdown"}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MaxDepth:       analysis.DefaultMaxDepth,
			MaxSteps:       analysis.DefaultMaxSteps,
			FunctionBodies: true,
		},
		Exclude: ExcludeConfig{
			Patterns: []string{"*.min.js"},
			Dirs:     []string{"node_modules", ".git", "dist", "build"},
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Workers: runtime.NumCPU(),
	}
}

// Load loads configuration from a file. Keys missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

// LoadOrDefault loads the first config file found in the current directory,
// or returns the defaults when there is none. A config file that exists but
// does not load is an error.
func LoadOrDefault() (*Config, error) {
	configNames := []string{
		"eiod.toml",
		"eiod.yaml",
		"eiod.yml",
		"eiod.json",
		".eiod.toml",
		".eiod.yaml",
		".eiod.yml",
		".eiod.json",
	}

	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return Load(name)
		}
	}

	return DefaultConfig(), nil
}

// Validate rejects settings no command can honor.
func (c *Config) Validate() error {
	valid := false
	for _, f := range formats {
		if c.Output.Format == f {
			valid = true
		}
	}
	if !valid {
		return errors.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(formats, ", "))
	}
	if c.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// AnalyzerOptions returns the analyzer limits from the configuration.
func (c *Config) AnalyzerOptions() []analysis.Option {
	return []analysis.Option{
		analysis.WithMaxDepth(c.Analysis.MaxDepth),
		analysis.WithMaxSteps(c.Analysis.MaxSteps),
	}
}

// ShouldExclude checks if a path should be skipped when walking a directory.
func (c *Config) ShouldExclude(path string) bool {
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, string(filepath.Separator)+dir+string(filepath.Separator)) ||
			strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
