// Package log provides the slog setup used by n8nlint.
//
// n8n workflow files routinely carry credential references, HTTP header
// parameters and webhook secrets. When the validator logs node parameters
// at debug level those values would end up in CI logs, so every logger
// built here wraps its handler in a RedactingHandler that masks them.
//
//	logger := log.New(os.Stderr, log.Options{Verbose: true})
//	logger.Debug("checking node", "node", "HTTP Request", "authorization", "Bearer abc")
//	// authorization=***
package log
