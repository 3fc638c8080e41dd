package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/n8nlint/internal/config"
	"github.com/nao1215/n8nlint/internal/model"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ProgressFunc is called after each file has been validated. Calls are
// serialized.
type ProgressFunc func(done, total int, path string)

// Validator checks workflow files.
type Validator struct {
	deprecated  map[string]bool
	concurrency int
	logger      *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithDeprecatedNodeTypes sets node types that produce a warning.
func WithDeprecatedNodeTypes(types []string) Option {
	return func(v *Validator) {
		for _, t := range types {
			v.deprecated[t] = true
		}
	}
}

// WithConcurrency sets the number of files validated in parallel. The
// default is config.DefaultConcurrency(). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.concurrency = n
		}
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		deprecated:  make(map[string]bool),
		concurrency: config.DefaultConcurrency(),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Result is the outcome of validating a set of files.
type Result struct {
	Findings []model.Finding
	Summary  model.Summary
}

// Validate checks one workflow document. path is only used as context in
// findings. It returns the findings and the number of nodes in the document.
func (v *Validator) Validate(path string, data []byte) ([]model.Finding, int) {
	c := &checker{file: path, deprecated: v.deprecated}

	root, err := parseDocument(data)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotMapping):
			c.add("error", err.Error(), root.Line,
				model.WithExpected("object"),
				model.WithActual(kindName(root)),
			)
		default:
			c.add("error", err.Error(), 0)
		}
		return c.findings, 0
	}

	nodes := c.checkNodes(root)
	c.checkConnections(root, nodes)
	v.logCredentials(path, root)

	return c.findings, nodeCount(root)
}

// ValidateFile reads and checks one workflow file. Read failures become an
// error finding.
func (v *Validator) ValidateFile(path string) ([]model.Finding, int) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the command line
	if err != nil {
		return []model.Finding{
			model.NewFinding("error", "failed to read workflow: "+err.Error(), model.WithFile(path)),
		}, 0
	}
	findings, nodes := v.Validate(path, data)
	v.logger.Debug("validated workflow", "file", path, "nodes", nodes, "findings", len(findings))
	return findings, nodes
}

// ValidateFiles checks paths concurrently. Findings are returned in the
// order of paths regardless of completion order. The only error returned is
// the context error when ctx is cancelled.
func (v *Validator) ValidateFiles(ctx context.Context, paths []string, progress ProgressFunc) (*Result, error) {
	start := time.Now()

	type fileResult struct {
		findings []model.Finding
		nodes    int
	}
	results := make([]fileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	var (
		mu   sync.Mutex
		done int
	)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			findings, nodes := v.ValidateFile(path)
			results[i] = fileResult{findings: findings, nodes: nodes}

			mu.Lock()
			defer mu.Unlock()
			done++
			if progress != nil {
				progress(done, len(paths), path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		findings   []model.Finding
		totalNodes int
	)
	for _, r := range results {
		findings = append(findings, r.findings...)
		totalNodes += r.nodes
	}

	return &Result{
		Findings: findings,
		Summary:  model.NewSummary(findings, totalNodes, time.Since(start)),
	}, nil
}

// nodeCount returns the number of entries in the nodes array.
func nodeCount(root *yaml.Node) int {
	nodes := lookup(root, "nodes")
	if nodes == nil || nodes.Kind != yaml.SequenceNode {
		return 0
	}
	return len(nodes.Content)
}

// logCredentials logs which credential types each node uses. The display
// names go under the "credentials" key, which the logger masks.
func (v *Validator) logCredentials(path string, root *yaml.Node) {
	if !v.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	nodes := lookup(root, "nodes")
	if nodes == nil || nodes.Kind != yaml.SequenceNode {
		return
	}
	for _, item := range nodes.Content {
		creds := lookup(item, "credentials")
		if creds == nil || creds.Kind != yaml.MappingNode {
			continue
		}
		name, _ := scalar(lookup(item, "name"))
		var types, names []string
		for i := 0; i+1 < len(creds.Content); i += 2 {
			types = append(types, creds.Content[i].Value)
			credName, _ := scalar(lookup(creds.Content[i+1], "name"))
			names = append(names, credName)
		}
		v.logger.Debug("node uses credentials",
			"file", path,
			"node", name,
			"types", strings.Join(types, ","),
			"credentials", strings.Join(names, ","),
		)
	}
}
