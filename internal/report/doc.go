// Package report renders validation findings and summaries for a terminal.
//
// Two Formatter variants share one contract:
//   - StyledFormatter: colors, icons and a bordered summary panel
//   - PlainFormatter: unstyled text for logs and pipes
//
// Both variants build their text from the same field tables (fields.go), so
// they always agree on which context is shown and in what order. Console
// pairs a Formatter with an io.Writer for direct rendering.
package report
