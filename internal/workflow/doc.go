// Package workflow checks n8n workflow documents and produces findings for
// the report package.
//
// Documents are parsed into yaml.Node trees rather than Go structs so every
// finding can point at the line it came from. JSON input works unchanged
// because the YAML parser accepts JSON.
package workflow
