package kv

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "test.db"))
	if err != nil {
		t.Fatalf("Expected store to open, got %v", err)
	}
	defer store.Close()

	if _, ok := store.Read("missing"); ok {
		t.Error("Expected missing key to read as absent")
	}

	if err := store.Write("accounting_config", `{"databases":[]}`); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	value, ok := store.Read("accounting_config")
	if !ok || value != `{"databases":[]}` {
		t.Errorf("Expected stored value back, got %q (present=%v)", value, ok)
	}

	// Upsert semantics
	if err := store.Write("accounting_config", `{"databases":[],"currentDatabaseId":"x"}`); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	value, _ = store.Read("accounting_config")
	if value != `{"databases":[],"currentDatabaseId":"x"}` {
		t.Errorf("Expected overwrite to win, got %q", value)
	}

	if err := store.Remove("accounting_config"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := store.Read("accounting_config"); ok {
		t.Error("Expected key removed")
	}
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Expected store to open, got %v", err)
	}
	if err := store.Write("doc", "persisted"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	store.Close()

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("Expected store to reopen, got %v", err)
	}
	defer reopened.Close()

	value, ok := reopened.Read("doc")
	if !ok || value != "persisted" {
		t.Errorf("Expected document to survive reopen, got %q (present=%v)", value, ok)
	}
}
