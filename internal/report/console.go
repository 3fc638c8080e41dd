package report

import (
	"fmt"
	"io"

	"github.com/nao1215/n8nlint/internal/model"
)

// baseWriter holds the output destination shared by writers in this package.
// It knows nothing about formatting.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// writeLine writes text followed by a newline.
func (b baseWriter) writeLine(text string) error {
	_, err := io.WriteString(b.output, text+"\n")
	return err
}

// Console renders validation results directly to an output stream.
//
// Render writes the findings block, when there is one, and then the summary,
// each terminated by a newline. Progress writes a single progress line and
// writes nothing when the total is zero. The first failed write is returned
// wrapped with what was being written; nothing is retried and nothing after
// the failure is attempted.
//
// A Console is not safe for concurrent use. Callers sharing one output
// stream between goroutines must serialize calls themselves.
type Console struct {
	baseWriter
	formatter Formatter
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithFormatter replaces the formatter chosen from the plain flag.
func WithFormatter(f Formatter) ConsoleOption {
	return func(c *Console) {
		c.formatter = f
	}
}

// NewConsole creates a Console writing to output. The plain flag selects
// the formatter once for the lifetime of the Console.
func NewConsole(output io.Writer, plain bool, opts ...ConsoleOption) *Console {
	c := &Console{
		baseWriter: newBaseWriter(output),
		formatter:  NewFormatter(plain),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Formatter returns the formatter used by the Console.
func (c *Console) Formatter() Formatter {
	return c.formatter
}

// Render writes the findings block (when there are findings) and then the
// summary. A write failure is returned as is; nothing is retried.
func (c *Console) Render(findings []model.Finding, summary model.Summary) error {
	if len(findings) > 0 {
		if err := c.writeLine(c.formatter.FormatFindings(findings)); err != nil {
			return fmt.Errorf("failed to write findings: %w", err)
		}
	}
	if err := c.writeLine(c.formatter.FormatSummary(summary)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// Progress writes one progress line. Nothing is written when total is zero.
func (c *Console) Progress(current, total int, message string) error {
	text := c.formatter.FormatProgress(current, total, message)
	if text == "" {
		return nil
	}
	if err := c.writeLine(text); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}
