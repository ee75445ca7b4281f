package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when no crawl record input is specified.
	// Provide a file path argument or pipe records through stdin with "-".
	ErrNoInput = errors.New("no input specified: provide a crawl records file or \"-\" for stdin")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	// Zero workers would mean no pages get audited at all.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")
)
