package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/util"
	"github.com/rs/zerolog/log"
)

// TransactionService handles transaction-related business logic. Every
// operation takes an explicit database id; resolving "current" is the
// caller's job via the registry.
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	receiptService  *ReceiptService
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo domain.TransactionRepository, receiptService *ReceiptService) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		receiptService:  receiptService,
	}
}

// CreateTransactionInput holds the input for creating a transaction.
type CreateTransactionInput struct {
	Date        string
	Title       string
	Amount      float64
	Category    string
	Type        domain.TransactionType
	Notes       string
	ReceiptPath string
}

// GetTransactions returns all transactions of a database. No ordering is
// guaranteed; presentation sorts as needed.
func (s *TransactionService) GetTransactions(databaseID string) ([]domain.Transaction, error) {
	return s.transactionRepo.GetAll(databaseID)
}

// AddTransaction validates the input, assigns a fresh id, appends the
// record and persists the document.
func (s *TransactionService) AddTransaction(databaseID string, input CreateTransactionInput) (*domain.Transaction, error) {
	transaction := domain.Transaction{
		ID:          newTransactionID(),
		Date:        input.Date,
		Title:       strings.TrimSpace(input.Title),
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Type:        input.Type,
		Notes:       strings.TrimSpace(input.Notes),
		ReceiptPath: input.ReceiptPath,
	}
	if err := validateTransaction(&transaction); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetAll(databaseID)
	if err != nil {
		return nil, err
	}
	transactions = append(transactions, transaction)
	if err := s.transactionRepo.SaveAll(databaseID, transactions); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// UpdateTransaction replaces the stored record matching the given
// transaction's id. Mutation is by full replacement; there are no
// partial-field patches.
func (s *TransactionService) UpdateTransaction(databaseID string, transaction domain.Transaction) error {
	transaction.Title = strings.TrimSpace(transaction.Title)
	transaction.Category = strings.TrimSpace(transaction.Category)
	transaction.Notes = strings.TrimSpace(transaction.Notes)
	if err := validateTransaction(&transaction); err != nil {
		return err
	}

	transactions, err := s.transactionRepo.GetAll(databaseID)
	if err != nil {
		return err
	}
	for i := range transactions {
		if transactions[i].ID == transaction.ID {
			transactions[i] = transaction
			return s.transactionRepo.SaveAll(databaseID, transactions)
		}
	}
	return domain.ErrTransactionNotFound
}

// DeleteTransaction removes the record matching id and releases its
// referenced receipt image, if any.
func (s *TransactionService) DeleteTransaction(databaseID, id string) error {
	transactions, err := s.transactionRepo.GetAll(databaseID)
	if err != nil {
		return err
	}

	for i := range transactions {
		if transactions[i].ID != id {
			continue
		}
		if path := transactions[i].ReceiptPath; path != "" {
			if err := s.receiptService.Delete(path); err != nil {
				log.Warn().Err(err).Str("receipt", path).Msg("Failed to release receipt")
			}
		}
		transactions = append(transactions[:i], transactions[i+1:]...)
		return s.transactionRepo.SaveAll(databaseID, transactions)
	}
	return domain.ErrTransactionNotFound
}

func validateTransaction(t *domain.Transaction) error {
	if t.Title == "" {
		return domain.ErrTitleRequired
	}
	if len(t.Title) > domain.MaxTransactionTitleLength {
		return domain.ErrTitleTooLong
	}
	if t.Amount <= 0 {
		return domain.ErrInvalidAmount
	}
	if t.Category == "" {
		return domain.ErrCategoryRequired
	}
	if t.Type != domain.TransactionTypeIncome && t.Type != domain.TransactionTypeExpense {
		return domain.ErrInvalidTransactionType
	}
	if _, err := util.ParseDate(t.Date); err != nil {
		return domain.ErrInvalidDate
	}
	if len(t.Notes) > domain.MaxTransactionNotesLength {
		return domain.ErrNotesTooLong
	}
	return nil
}

// newTransactionID returns a millisecond-timestamp-derived id with a
// random tail. Unique enough for a single session; not sortable.
func newTransactionID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
