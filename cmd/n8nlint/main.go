// Package main provides the entry point for the n8nlint CLI.
//
// n8nlint validates n8n workflow definitions and reports the findings in
// the terminal.
//
// Usage:
//
//	n8nlint validate workflow.json
//	n8nlint validate --plain workflows/*.json
//
// See --help for all available options.
package main

// main is the entry point for n8nlint.
func main() {
	Execute()
}
