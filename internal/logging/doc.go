// Package logging provides structured logging for the Pali terminal tools.
//
// This package wraps zap with convenience functions for the logging
// patterns used by pacli and patui. By default logging is silent so that
// command output stays clean for scripting; set PALI_LOG_LEVEL to enable it.
//
// # Log Levels
//
//   - Debug: request/response details, ID resolution steps
//   - Info: normal operations (config saved, todos loaded)
//   - Warn: non-fatal issues (error responses from the server)
//   - Error: failures surfaced to the user
//
// # Usage
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	logging.Info("todos loaded", zap.Int("count", len(todos)))
//
// All logging functions are safe for concurrent use.
package logging
