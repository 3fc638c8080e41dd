// Package model defines the data handed from the workflow validator to the
// report renderers.
//
// This package contains the following main types:
//   - Severity: classification of a finding (error, warning, info, or other)
//   - Finding: one reported validation issue with optional context
//   - Summary: aggregate counts and timing for a complete validation pass
//
// Findings and summaries are value types. Nothing in the reporting path
// mutates them after construction.
package model
