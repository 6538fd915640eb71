package kv

import "testing"

func TestMemoryStore_ReadWriteRemove(t *testing.T) {
	store := NewMemoryStore()

	if _, ok := store.Read("missing"); ok {
		t.Error("Expected missing key to read as absent")
	}

	if err := store.Write("doc", `{"a":1}`); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	value, ok := store.Read("doc")
	if !ok {
		t.Fatal("Expected doc to exist after write")
	}
	if value != `{"a":1}` {
		t.Errorf("Expected stored value back, got %s", value)
	}

	if err := store.Remove("doc"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := store.Read("doc"); ok {
		t.Error("Expected doc to be gone after remove")
	}
	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d documents", store.Len())
	}
}

func TestMemoryStore_OverwriteAndRemoveMissing(t *testing.T) {
	store := NewMemoryStore()

	if err := store.Write("doc", "first"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := store.Write("doc", "second"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	value, _ := store.Read("doc")
	if value != "second" {
		t.Errorf("Expected overwrite to win, got %s", value)
	}

	// Removing a key that never existed is not an error
	if err := store.Remove("missing"); err != nil {
		t.Errorf("Expected no error removing missing key, got %v", err)
	}
}

func TestNoopStore(t *testing.T) {
	store := NewNoopStore()

	if err := store.Write("doc", "value"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := store.Read("doc"); ok {
		t.Error("Expected NoopStore to retain nothing")
	}
	if err := store.Remove("doc"); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}
