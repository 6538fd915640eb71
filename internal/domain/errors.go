package domain

import "errors"

// Domain errors
var (
	ErrDatabaseNotFound       = errors.New("database not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrReceiptNotFound        = errors.New("receipt not found")
	ErrNoDatabaseSelected     = errors.New("no database selected")
	ErrNameRequired           = errors.New("name is required")
	ErrNameTooLong            = errors.New("name exceeds maximum length")
	ErrTitleRequired          = errors.New("title is required")
	ErrTitleTooLong           = errors.New("title exceeds maximum length")
	ErrCategoryRequired       = errors.New("category is required")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidDate            = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidYear            = errors.New("invalid year")
	ErrInvalidMonth           = errors.New("month index must be between 0 and 11")
	ErrNotesTooLong           = errors.New("notes exceed maximum length")
	ErrInvalidImport          = errors.New("invalid import document")
)

// Validation constants
const (
	MaxTransactionTitleLength = 255
	MaxTransactionNotesLength = 1000
	MaxDatabaseNameLength     = 100
)
