package history

import (
	"fmt"
	"os"
	"strings"
)

// Config holds configuration for the command-history log.
type Config struct {
	// File is the append-only history log path.
	File string `mapstructure:"file" default:"history.log"`
	// BatchSize is the number of accepted commands buffered before a flush.
	BatchSize int `mapstructure:"batch_size" default:"2"`
}

// Writer appends accepted command lines to a log file in batches. Lines are
// buffered in memory and written out once BatchSize of them accumulate; the
// file is opened per flush so no descriptor is held between commands.
//
// Writer is not safe for concurrent use; the command loop is sequential.
type Writer struct {
	path    string
	batch   int
	pending []string
}

// New creates a Writer. A BatchSize below 1 falls back to 2, the
// historical flush cadence.
func New(cfg Config) *Writer {
	batch := cfg.BatchSize
	if batch < 1 {
		batch = 2
	}
	return &Writer{path: cfg.File, batch: batch}
}

// Append buffers one command line, flushing when the batch is full.
func (w *Writer) Append(line string) error {
	w.pending = append(w.pending, line)
	if len(w.pending) < w.batch {
		return nil
	}
	return w.Flush()
}

// Flush appends all buffered lines to the log file. The buffer is cleared
// even on failure so a bad disk cannot grow it without bound.
func (w *Writer) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	data := strings.Join(w.pending, "\n") + "\n"
	w.pending = w.pending[:0]

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(data); err != nil {
		return fmt.Errorf("append history log: %w", err)
	}
	return nil
}

// Close flushes any buffered remainder. The batch cadence only guarantees
// writes every BatchSize commands, so Close is what keeps the final odd
// lines from being lost on clean shutdown.
func (w *Writer) Close() error {
	return w.Flush()
}
