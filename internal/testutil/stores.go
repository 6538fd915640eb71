package testutil

import (
	"github.com/jangbu/jangbu-server/internal/kv"
	"github.com/jangbu/jangbu-server/internal/repository/kvstore"
)

// Stores bundles an in-memory key-value store with the repositories
// built on top of it, for wiring services under test.
type Stores struct {
	KV           *kv.MemoryStore
	Config       *kvstore.ConfigRepository
	Transactions *kvstore.TransactionRepository
	Settings     *kvstore.SettingsRepository
	Receipts     *kvstore.ReceiptRepository
}

// NewStores creates a fresh in-memory store and repository set
func NewStores() *Stores {
	store := kv.NewMemoryStore()
	return &Stores{
		KV:           store,
		Config:       kvstore.NewConfigRepository(store),
		Transactions: kvstore.NewTransactionRepository(store),
		Settings:     kvstore.NewSettingsRepository(store),
		Receipts:     kvstore.NewReceiptRepository(store),
	}
}
