// Package logutil provides a structured logging abstraction built on top of slog.
//
// It wraps the standard library's slog package with convenience functions and
// environment-aware configuration for the urltool CLI. The urlkit library
// packages themselves never log; parsing diagnostics flow through the
// urlparse violation callback instead.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	// Log messages at different levels
//	logutil.Debug("parsing input", "url", raw)
//	logutil.Info("batch completed", "count", n)
//	logutil.Warn("syntax violation", "detail", v.Description())
//	logutil.Error("parse failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set URLKIT_DEBUG=true environment variable
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"batch completed","count":12}
//
// Otherwise, logs use a human-readable text format:
//
//	time=2024-01-15T10:30:00Z level=INFO msg="batch completed" count=12
package logutil
