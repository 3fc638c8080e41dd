package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/n8nlint/internal/config"
	"github.com/nao1215/n8nlint/internal/log"
	"github.com/nao1215/n8nlint/internal/report"
	"github.com/nao1215/n8nlint/internal/workflow"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrValidationFailed is returned when the findings should fail the run.
var ErrValidationFailed = errors.New("validation failed")

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [workflow-file...]",
		Short: "Validate one or more n8n workflow files",
		Long: `Validate checks n8n workflow files (JSON or YAML) and prints every finding
grouped by severity, followed by a summary.

Styled output is used when stdout is a terminal. Plain output is used when
stdout is redirected, when NO_COLOR is set, or when --plain is given.

Examples:
  # Validate a single workflow
  n8nlint validate workflow.json

  # Validate many files, four at a time, with progress on stderr
  n8nlint validate -j 4 --progress workflows/*.json

  # Treat warnings as failures
  n8nlint validate --fail-on-warning workflow.json

Configuration file (.n8nlint) example:
  plain: false
  concurrency: 8
  failOnWarning: true
  logFormat: json
  deprecatedNodeTypes:
    - n8n-nodes-base.function
    - n8n-nodes-base.functionItem
  colors:
    error: "#cc241d"
    success: "#98971a"`,
		Args: cobra.ArbitraryArgs,
		RunE: runValidateCmd,
	}

	cmd.Flags().Bool("plain", false, "Disable colors, icons and the summary panel")
	cmd.Flags().BoolP("progress", "p", false, "Print progress to stderr while validating")
	cmd.Flags().IntP("concurrency", "j", config.DefaultConcurrency(), "Number of files validated in parallel")
	cmd.Flags().BoolP("fail-on-warning", "w", false, "Exit with an error when warnings are found")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .n8nlint in current or home directory)")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), log.Options{
		Verbose: cfg.Verbose,
		JSON:    cfg.LogFormat == config.LogFormatJSON,
	})
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runValidate(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), logger)
}

// contextOf returns the command context, or Background when unset.
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra flags.
// Flags that were set explicitly win over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named config file must exist; a missing default one is fine.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.Apply(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("plain") {
		if cfg.Plain, err = flags.GetBool("plain"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("progress") {
		if cfg.Progress, err = flags.GetBool("progress"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("fail-on-warning") {
		if cfg.FailOnWarning, err = flags.GetBool("fail-on-warning"); err != nil {
			return nil, err
		}
	}

	if f := cmd.Flags().Lookup("log-format"); f != nil && f.Changed {
		cfg.LogFormat = f.Value.String()
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	return cfg, nil
}

// usePlain decides the render mode for w.
func usePlain(forcePlain bool, w io.Writer) bool {
	if forcePlain || os.Getenv("NO_COLOR") != "" {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return !term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int on supported platforms
}

// buildTheme applies the configured color overrides to the default palette.
func buildTheme(colors config.Colors) (report.Theme, error) {
	theme := report.GruvboxTheme()
	overrides := []struct {
		value string
		dst   *report.RGB
	}{
		{colors.Error, &theme.Error},
		{colors.Warning, &theme.Warning},
		{colors.Info, &theme.Info},
		{colors.Success, &theme.Success},
		{colors.Context, &theme.Context},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		rgb, err := report.ParseRGB(o.value)
		if err != nil {
			return report.Theme{}, err
		}
		*o.dst = rgb
	}
	return theme, nil
}

// newConsole creates a Console for w, styled with theme unless plain.
func newConsole(w io.Writer, plain bool, theme report.Theme) *report.Console {
	if plain {
		return report.NewConsole(w, true)
	}
	return report.NewConsole(w, false,
		report.WithFormatter(report.NewStyledFormatter(report.WithTheme(theme))))
}

// runValidate validates the configured targets and renders the result.
func runValidate(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer, logger *slog.Logger) error {
	logger.Info("starting validation",
		"targets", len(cfg.Targets),
		"concurrency", cfg.Concurrency,
	)

	validator := workflow.NewValidator(
		workflow.WithConcurrency(cfg.Concurrency),
		workflow.WithDeprecatedNodeTypes(cfg.DeprecatedNodeTypes),
		workflow.WithLogger(logger),
	)

	theme, err := buildTheme(cfg.Colors)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	var progress workflow.ProgressFunc
	if cfg.Progress {
		progressConsole := newConsole(stderr, usePlain(cfg.Plain, stderr), theme)
		progress = func(done, total int, path string) {
			if err := progressConsole.Progress(done, total, path); err != nil {
				logger.Warn("failed to write progress", "error", err)
			}
		}
	}

	result, err := validator.ValidateFiles(ctx, cfg.Targets, progress)
	if err != nil {
		return fmt.Errorf("validation aborted: %w", err)
	}

	console := newConsole(stdout, usePlain(cfg.Plain, stdout), theme)
	if err := console.Render(result.Findings, result.Summary); err != nil {
		return err
	}

	logger.Debug("validation finished",
		"findings", result.Summary.TotalFindings(),
		"errors", result.Summary.TotalErrors,
		"warnings", result.Summary.TotalWarnings,
		"info", result.Summary.TotalInfo,
	)

	if result.Summary.HasErrors() || (cfg.FailOnWarning && result.Summary.HasWarnings()) {
		return ErrValidationFailed
	}
	return nil
}
