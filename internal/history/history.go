// Package history keeps a local record of executed queries as a JSON file
// under the configuration directory. Recording is best effort; callers are
// expected to treat failures as non-fatal.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const historyFile = "history.json"

// Entry is one executed query.
type Entry struct {
	ID         string    `json:"id"`
	Profile    string    `json:"profile,omitempty"`
	Query      string    `json:"query"`
	Rows       int       `json:"rows"`
	DurationMS int64     `json:"duration_ms"`
	At         time.Time `json:"at"`
}

// Log is a query history backed by a single JSON file.
type Log struct {
	path string
}

// New creates a history log stored under dir.
func New(dir string) *Log {
	return &Log{path: filepath.Join(dir, historyFile)}
}

// Entries returns the recorded history, newest first. A missing or
// unreadable file yields an empty history.
func (l *Log) Entries() []Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

// Append records an entry, assigning an ID and timestamp when unset.
func (l *Log) Append(e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	entries := append([]Entry{e}, l.Entries()...)

	if err := os.MkdirAll(filepath.Dir(l.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, data, 0o600)
}
