// Package history implements the append-only command-history log.
//
// Every accepted input line is recorded, batched two at a time before being
// flushed to disk. The log is a side channel: a write failure is reported to
// the caller but never blocks or fails the command itself.
package history
