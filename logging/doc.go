// Package logging provides a minimal logging interface and adapters for the
// drafting pipeline.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the orchestrator and adapters use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	pipe := draftpipe.New(func(o *draftpipe.Options) {
//		o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal so users can plug in
// any structured logger.
package logging
