// Package status persists the human-readable hook messages to the status
// file the installer surfaces after the transaction.
package status

import (
	"fmt"
	"os"
)

// FileWriter implements ports.StatusWriter against a single fixed path. Only
// one hook invocation runs at a time, so no locking is applied.
type FileWriter struct {
	path string
}

// NewFileWriter creates a writer for the given status file path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{path: path}
}

// Path returns the status file location.
func (w *FileWriter) Path() string {
	return w.path
}

// Truncate creates or empties the status file and writes msg as its first
// line.
func (w *FileWriter) Truncate(msg string) error {
	return w.write(msg, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// Append adds msg as a further line, creating the file if a previous write
// never happened.
func (w *FileWriter) Append(msg string) error {
	return w.write(msg, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
}

func (w *FileWriter) write(msg string, flag int) error {
	f, err := os.OpenFile(w.path, flag, 0o644)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, msg); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
