package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".n8nlint"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .n8nlint configuration file.
type File struct {
	// Plain disables styled output.
	Plain bool `yaml:"plain,omitempty"`

	// Progress enables per-file progress output.
	Progress bool `yaml:"progress,omitempty"`

	// Concurrency overrides DefaultConcurrency().
	Concurrency int `yaml:"concurrency,omitempty"`

	// FailOnWarning makes warnings fail the run.
	FailOnWarning bool `yaml:"failOnWarning,omitempty"`

	// DeprecatedNodeTypes lists node types that should no longer be used,
	// e.g. "n8n-nodes-base.function".
	DeprecatedNodeTypes []string `yaml:"deprecatedNodeTypes,omitempty"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"logFormat,omitempty"`

	// Colors overrides the styled output palette.
	Colors Colors `yaml:"colors,omitempty"`
}

// Colors holds "#rrggbb" overrides for the styled output palette.
// Empty values keep the default color.
type Colors struct {
	Error   string `yaml:"error,omitempty"`
	Warning string `yaml:"warning,omitempty"`
	Info    string `yaml:"info,omitempty"`
	Success string `yaml:"success,omitempty"`
	Context string `yaml:"context,omitempty"`
}

// merge returns c with every non-empty value of o applied on top.
func (c Colors) merge(o Colors) Colors {
	pick := func(base, override string) string {
		if override != "" {
			return override
		}
		return base
	}
	return Colors{
		Error:   pick(c.Error, o.Error),
		Warning: pick(c.Warning, o.Warning),
		Info:    pick(c.Info, o.Info),
		Success: pick(c.Success, o.Success),
		Context: pick(c.Context, o.Context),
	}
}

func (c Colors) values() []string {
	return []string{c.Error, c.Warning, c.Info, c.Success, c.Context}
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .n8nlint in the current directory
// 3. Look for .n8nlint in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
