// Package config provides configuration structures and utilities for n8nlint.
// It defines the options that control how workflow files are validated and
// how results are rendered, and loads optional settings from a YAML file.
package config
