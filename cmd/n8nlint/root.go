package main

import (
	"fmt"
	"os"

	"github.com/nao1215/n8nlint/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for n8nlint.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "n8nlint",
		Short: "Validate n8n workflow definitions",
		Long: `n8nlint checks n8n workflow files for structural problems such as
missing node fields, duplicate node names and broken connections, and
prints the findings grouped by severity followed by a summary.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.LogFormatText, "Log format on stderr: text or json")

	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
