// Package logger provides structured logging based on Zap.
//
// It builds a configured logger per environment (console encoding for
// development, JSON for production) and integrates with the Fiber web
// framework.
//
// # Request correlation
//
// The WithRayID helper extracts the ray ID injected by the rayid middleware
// from a Fiber context and attaches it to the log entry, so every log line
// belonging to one request shares the same identifier.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("analysis complete")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("dataset locked")
package logger
