package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "n8nlint"

	// LogFormatText selects slog's key=value output.
	LogFormatText = "text"

	// LogFormatJSON selects slog's JSON output.
	LogFormatJSON = "json"

	// maxDefaultConcurrency caps DefaultConcurrency on machines with many CPUs.
	maxDefaultConcurrency = 4
)

// DefaultConcurrency returns the number of workflow files validated at once
// when neither the config file nor a flag says otherwise: the CPU count,
// capped at 4.
func DefaultConcurrency() int {
	return min(maxDefaultConcurrency, runtime.NumCPU())
}

// Config holds all options for a validation run. It is populated from the
// config file and CLI flags and passed down explicitly.
type Config struct {
	// Targets is the list of workflow files to validate.
	Targets []string

	// Plain disables colors, icons and the summary panel.
	Plain bool

	// Progress enables a progress line per validated file on stderr.
	Progress bool

	// Verbose enables debug logging.
	Verbose bool

	// Concurrency is the maximum number of files validated in parallel.
	Concurrency int

	// FailOnWarning makes warnings fail the run the same way errors do.
	FailOnWarning bool

	// DeprecatedNodeTypes lists node types that produce a warning when used.
	DeprecatedNodeTypes []string

	// LogFormat is LogFormatText or LogFormatJSON.
	LogFormat string

	// Colors overrides the styled output palette.
	Colors Colors

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches the usual locations (see FindConfigFile).
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Concurrency: DefaultConcurrency(),
		LogFormat:   LogFormatText,
	}
}

// Apply copies the values set in the file onto c. Zero values in the file
// leave c untouched.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Plain {
		c.Plain = true
	}
	if f.Progress {
		c.Progress = true
	}
	if f.FailOnWarning {
		c.FailOnWarning = true
	}
	if f.Concurrency != 0 {
		c.Concurrency = f.Concurrency
	}
	if len(f.DeprecatedNodeTypes) > 0 {
		c.DeprecatedNodeTypes = append([]string(nil), f.DeprecatedNodeTypes...)
	}
	if f.LogFormat != "" {
		c.LogFormat = f.LogFormat
	}
	c.Colors = c.Colors.merge(f.Colors)
}

// XDGConfigDir returns the XDG config directory for n8nlint.
// On Linux: ~/.config/n8nlint
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return ErrNoTarget
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	for _, t := range c.DeprecatedNodeTypes {
		if strings.TrimSpace(t) == "" {
			return ErrEmptyDeprecatedType
		}
	}
	if c.LogFormat != LogFormatText && c.LogFormat != LogFormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	for _, v := range c.Colors.values() {
		if v != "" && !hexColor.MatchString(v) {
			return fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
	}
	return nil
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
