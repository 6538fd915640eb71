package handler

import (
	"errors"
	"net/http"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/jangbu/jangbu-server/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
	registry           *service.RegistryService
	publisher          websocket.EventPublisher
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService, registry *service.RegistryService, publisher websocket.EventPublisher) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		registry:           registry,
		publisher:          publisher,
	}
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Notes       string  `json:"notes"`
	ReceiptPath string  `json:"receiptPath"`
}

// GetTransactions handles GET /transactions
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	transactions, err := h.transactionService.GetTransactions(databaseID)
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to load transactions")
		return NewInternalError(c, "Failed to load transactions")
	}
	return c.JSON(http.StatusOK, transactions)
}

// CreateTransaction handles POST /transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	transaction, err := h.transactionService.AddTransaction(databaseID, service.CreateTransactionInput{
		Date:        req.Date,
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        domain.TransactionType(req.Type),
		Notes:       req.Notes,
		ReceiptPath: req.ReceiptPath,
	})
	if err != nil {
		if field := transactionValidationField(err); field != "" {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: field, Message: err.Error()},
			})
		}
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeCreated, websocket.EntityTypeTransaction, transaction))
	return c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT /transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	transaction := domain.Transaction{
		ID:          c.Param("id"),
		Date:        req.Date,
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        domain.TransactionType(req.Type),
		Notes:       req.Notes,
		ReceiptPath: req.ReceiptPath,
	}
	err = h.transactionService.UpdateTransaction(databaseID, transaction)
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return NewNotFoundError(c, "Transaction not found")
	case err != nil:
		if field := transactionValidationField(err); field != "" {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: field, Message: err.Error()},
			})
		}
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeUpdated, websocket.EntityTypeTransaction, transaction))
	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE /transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	id := c.Param("id")
	err = h.transactionService.DeleteTransaction(databaseID, id)
	if errors.Is(err, domain.ErrTransactionNotFound) {
		return NewNotFoundError(c, "Transaction not found")
	}
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeDeleted, websocket.EntityTypeTransaction, map[string]string{"id": id}))
	return c.NoContent(http.StatusNoContent)
}

// transactionValidationField maps transaction validation errors to the
// offending request field, or "" for non-validation errors.
func transactionValidationField(err error) string {
	switch {
	case errors.Is(err, domain.ErrTitleRequired), errors.Is(err, domain.ErrTitleTooLong):
		return "title"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "amount"
	case errors.Is(err, domain.ErrCategoryRequired):
		return "category"
	case errors.Is(err, domain.ErrInvalidTransactionType):
		return "type"
	case errors.Is(err, domain.ErrInvalidDate):
		return "date"
	case errors.Is(err, domain.ErrNotesTooLong):
		return "notes"
	}
	return ""
}
