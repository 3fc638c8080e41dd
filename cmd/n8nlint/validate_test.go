package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/nao1215/n8nlint/internal/config"
	"github.com/nao1215/n8nlint/internal/model"
	"github.com/nao1215/n8nlint/internal/report"
)

const cleanWorkflow = `{
  "nodes": [
    {"name": "Start", "type": "n8n-nodes-base.manualTrigger", "typeVersion": 1, "position": [0, 0], "parameters": {}}
  ],
  "connections": {}
}`

const deprecatedWorkflow = `{
  "nodes": [
    {"name": "Code", "type": "n8n-nodes-base.function", "typeVersion": 1, "position": [0, 0], "parameters": {}}
  ]
}`

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// runRoot executes the root command with args and returns stdout, stderr and the error.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewValidateCmd(t *testing.T) {
	t.Parallel()

	cmd := NewValidateCmd()
	for _, name := range []string{"plain", "progress", "concurrency", "fail-on-warning", "config"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected flag %q", name)
		}
	}
	if f := cmd.Flags().Lookup("concurrency"); f != nil {
		if f.Shorthand != "j" {
			t.Errorf("expected concurrency shorthand 'j', got %q", f.Shorthand)
		}
		if want := strconv.Itoa(config.DefaultConcurrency()); f.DefValue != want {
			t.Errorf("expected concurrency default %s, got %s", want, f.DefValue)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	t.Run("clean workflow succeeds with plain summary", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "concurrency: 2\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		stdout, _, err := runRoot(t, "validate", "-c", cfgPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(stdout, "Validation complete: No issues found") {
			t.Errorf("unexpected output %q", stdout)
		}
		if !strings.Contains(stdout, "- 1 node validated") {
			t.Errorf("expected node count in %q", stdout)
		}
		if strings.Contains(stdout, "\x1b[") {
			t.Errorf("expected plain output for a non-terminal writer, got %q", stdout)
		}
	})

	t.Run("broken workflow fails and lists findings", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "{}\n")
		path := writeFile(t, dir, "broken.json", `{"name": "x"}`)

		stdout, _, err := runRoot(t, "validate", "--config", cfgPath, path)
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
		if !strings.Contains(stdout, "ERROR: workflow has no nodes (Property: nodes, Line: 1, File: "+path+")") {
			t.Errorf("expected finding in %q", stdout)
		}
		if !strings.Contains(stdout, "\n  Expected: array\n  Actual: missing\n") {
			t.Errorf("expected expected/actual lines in %q", stdout)
		}
		if !strings.Contains(stdout, "Validation complete: 1 error") {
			t.Errorf("expected summary in %q", stdout)
		}
	})

	t.Run("warnings pass unless fail-on-warning", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "deprecatedNodeTypes:\n  - n8n-nodes-base.function\n")
		path := writeFile(t, dir, "old.json", deprecatedWorkflow)

		stdout, _, err := runRoot(t, "validate", "-c", cfgPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "WARNING: node type is deprecated") {
			t.Errorf("expected deprecation warning in %q", stdout)
		}

		_, _, err = runRoot(t, "validate", "-c", cfgPath, "--fail-on-warning", path)
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("expected ErrValidationFailed, got %v", err)
		}
	})

	t.Run("progress goes to stderr", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "progress: true\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		stdout, stderr, err := runRoot(t, "validate", "-c", cfgPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, path+": 1/1 (100.0%)") {
			t.Errorf("expected progress line in stderr %q", stderr)
		}
		if strings.Contains(stdout, "1/1") {
			t.Errorf("progress leaked to stdout %q", stdout)
		}
	})

	t.Run("no targets is a configuration error", func(t *testing.T) {
		t.Parallel()

		cfgPath := writeFile(t, t.TempDir(), "cfg.yaml", "{}\n")
		_, _, err := runRoot(t, "validate", "-c", cfgPath)
		if !errors.Is(err, config.ErrNoTarget) {
			t.Errorf("expected ErrNoTarget, got %v", err)
		}
	})

	t.Run("missing explicit config is an error", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		_, _, err := runRoot(t, "validate", "-c", missing, "x.json")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid concurrency flag is rejected", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "{}\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		_, _, err := runRoot(t, "validate", "-c", cfgPath, "-j", "0", path)
		if !errors.Is(err, config.ErrInvalidConcurrency) {
			t.Errorf("expected ErrInvalidConcurrency, got %v", err)
		}
	})
}

func TestValidateCommandLogging(t *testing.T) {
	t.Parallel()

	t.Run("json log format", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "{}\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		_, stderr, err := runRoot(t, "-v", "--log-format", "json", "validate", "-c", cfgPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stderr, `"msg":"starting validation"`) {
			t.Errorf("expected JSON log line in %q", stderr)
		}
		if !strings.Contains(stderr, `"findings":0`) {
			t.Errorf("expected findings count in %q", stderr)
		}
	})

	t.Run("log format from config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "logFormat: json\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		_, stderr, err := runRoot(t, "--verbose", "validate", "-c", cfgPath, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(stderr, "{") {
			t.Errorf("expected JSON logs, got %q", stderr)
		}
	})

	t.Run("unknown log format is rejected", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "{}\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		_, _, err := runRoot(t, "--log-format", "xml", "validate", "-c", cfgPath, path)
		if !errors.Is(err, config.ErrInvalidLogFormat) {
			t.Errorf("expected ErrInvalidLogFormat, got %v", err)
		}
	})

	t.Run("invalid color in config is rejected", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfgPath := writeFile(t, dir, "cfg.yaml", "colors:\n  error: red\n")
		path := writeFile(t, dir, "clean.json", cleanWorkflow)

		_, _, err := runRoot(t, "validate", "-c", cfgPath, path)
		if !errors.Is(err, config.ErrInvalidColor) {
			t.Errorf("expected ErrInvalidColor, got %v", err)
		}
	})
}

func TestBuildTheme(t *testing.T) {
	t.Parallel()

	t.Run("no overrides keeps the default palette", func(t *testing.T) {
		t.Parallel()
		theme, err := buildTheme(config.Colors{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if theme != report.GruvboxTheme() {
			t.Errorf("expected default theme, got %+v", theme)
		}
	})

	t.Run("overrides are applied", func(t *testing.T) {
		t.Parallel()
		theme, err := buildTheme(config.Colors{Error: "#010203", Context: "#0a0b0c"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if theme.Error != (report.RGB{R: 1, G: 2, B: 3}) || theme.Context != (report.RGB{R: 10, G: 11, B: 12}) {
			t.Errorf("unexpected theme %+v", theme)
		}
		if theme.Warning != report.GruvboxTheme().Warning {
			t.Errorf("expected default warning color, got %+v", theme.Warning)
		}
	})

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()
		if _, err := buildTheme(config.Colors{Info: "blue"}); !errors.Is(err, report.ErrInvalidColor) {
			t.Errorf("expected report.ErrInvalidColor, got %v", err)
		}
	})
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	theme := report.GruvboxTheme()
	theme.Success = report.RGB{R: 7, G: 8, B: 9}

	var styled, plain bytes.Buffer
	if err := newConsole(&styled, false, theme).Render(nil, model.Summary{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(styled.String(), "38;2;7;8;9") {
		t.Errorf("expected themed border in %q", styled.String())
	}

	if err := newConsole(&plain, true, theme).Render(nil, model.Summary{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plain.String() != "Validation complete: No issues found\n" {
		t.Errorf("unexpected plain output %q", plain.String())
	}
}

func TestUsePlain(t *testing.T) {
	t.Parallel()

	if !usePlain(true, os.Stdout) {
		t.Error("expected forced plain")
	}
	if !usePlain(false, &bytes.Buffer{}) {
		t.Error("expected plain for non-file writers")
	}
}
