package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrNoTarget is returned when no workflow file is specified.
	ErrNoTarget = errors.New("no target specified: provide one or more workflow files")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrEmptyDeprecatedType is returned when a deprecated node type entry is blank.
	ErrEmptyDeprecatedType = errors.New("invalid deprecated node type: must not be empty")

	// ErrInvalidLogFormat is returned when the log format is not text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidColor is returned when a palette color is not "#rrggbb".
	ErrInvalidColor = errors.New("invalid color: must be #rrggbb")
)
