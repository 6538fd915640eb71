package kvstore

import (
	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/kv"
)

// ReceiptRepository persists data-URI encoded receipt images. The key
// returned by Save is what transactions store in their receiptPath.
type ReceiptRepository struct {
	store kv.Store
}

// NewReceiptRepository creates a ReceiptRepository over the given store.
func NewReceiptRepository(store kv.Store) *ReceiptRepository {
	return &ReceiptRepository{store: store}
}

// Save stores the image under a key derived from the filename and
// returns that key.
func (r *ReceiptRepository) Save(filename, dataURI string) (string, error) {
	key := receiptKeyPrefix + filename
	if err := r.store.Write(key, dataURI); err != nil {
		return "", err
	}
	return key, nil
}

// Get returns the stored image for the given key.
func (r *ReceiptRepository) Get(key string) (string, error) {
	dataURI, ok := r.store.Read(key)
	if !ok {
		return "", domain.ErrReceiptNotFound
	}
	return dataURI, nil
}

// Remove deletes the stored image. Removing a missing key is a no-op.
func (r *ReceiptRepository) Remove(key string) error {
	return r.store.Remove(key)
}
