package kvstore

import (
	"encoding/json"
	"fmt"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/kv"
	"github.com/rs/zerolog/log"
)

// TransactionRepository persists one transaction array document per
// database id.
type TransactionRepository struct {
	store kv.Store
}

// NewTransactionRepository creates a TransactionRepository over the
// given store.
func NewTransactionRepository(store kv.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// GetAll returns the database's transactions. An absent or corrupt
// document reads as an empty collection, never as an error.
func (r *TransactionRepository) GetAll(databaseID string) ([]domain.Transaction, error) {
	if databaseID == "" {
		return []domain.Transaction{}, nil
	}

	raw, ok := r.store.Read(transactionsKey(databaseID))
	if !ok {
		return []domain.Transaction{}, nil
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
		log.Warn().Err(err).Str("database_id", databaseID).Msg("transaction document is corrupt, treating as empty")
		return []domain.Transaction{}, nil
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// SaveAll overwrites the database's transaction document.
func (r *TransactionRepository) SaveAll(databaseID string, transactions []domain.Transaction) error {
	if databaseID == "" {
		return domain.ErrNoDatabaseSelected
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("encode transactions: %w", err)
	}
	return r.store.Write(transactionsKey(databaseID), string(raw))
}

// Remove deletes the database's transaction document.
func (r *TransactionRepository) Remove(databaseID string) error {
	if databaseID == "" {
		return nil
	}
	return r.store.Remove(transactionsKey(databaseID))
}

// MigrateLegacy moves a pre-registry transaction document under the
// given database id. An existing document under that id is not
// overwritten.
func (r *TransactionRepository) MigrateLegacy(databaseID string) (bool, error) {
	raw, ok := r.store.Read(legacyTransactionsKey)
	if !ok || databaseID == "" {
		return false, nil
	}

	if _, exists := r.store.Read(transactionsKey(databaseID)); !exists {
		if err := r.store.Write(transactionsKey(databaseID), raw); err != nil {
			return false, err
		}
	}
	if err := r.store.Remove(legacyTransactionsKey); err != nil {
		return false, err
	}
	return true, nil
}
