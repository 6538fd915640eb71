package domain

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is a single income or expense event. Field names and json
// tags are the persisted document layout and must stay import-compatible
// with previously exported data.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Title       string          `json:"title"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Notes       string          `json:"notes,omitempty"`
	ReceiptPath string          `json:"receiptPath,omitempty"`
}

// TransactionRepository reads and writes the per-database transaction
// document as a whole. Only id is unique within a document; dates,
// titles and amounts may repeat freely.
type TransactionRepository interface {
	GetAll(databaseID string) ([]Transaction, error)
	SaveAll(databaseID string, transactions []Transaction) error
	Remove(databaseID string) error
	// MigrateLegacy moves a pre-registry transaction document (stored
	// without a database suffix) under the given database id. Returns
	// true when a document was moved.
	MigrateLegacy(databaseID string) (bool, error)
}
