// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). All logging goes to stderr: stdout belongs to
// command output, whose formats are a user-facing contract.
//
// # Run Correlation
//
// Each process run is tagged with a run_id (a UUID generated at startup).
// The WithRunID helper attaches it to the logger so all entries of one
// session can be correlated in the log history.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("shell started")
package logger
