// Package kv provides the synchronous local key-value store that backs
// every persisted document: whole JSON strings keyed by string.
package kv

// Store is the persistence contract. Read reports whether a document
// exists; Write and Remove operate on whole documents with no atomicity
// guarantee beyond a single key.
type Store interface {
	Read(key string) (string, bool)
	Write(key, value string) error
	Remove(key string) error
}

// NoopStore discards writes and reads nothing. It stands in when no
// writable data location is available, so callers degrade to empty
// collections and default values instead of failing.
type NoopStore struct{}

// NewNoopStore creates a NoopStore.
func NewNoopStore() *NoopStore { return &NoopStore{} }

func (*NoopStore) Read(string) (string, bool) { return "", false }

func (*NoopStore) Write(string, string) error { return nil }

func (*NoopStore) Remove(string) error { return nil }
