package handler

import (
	"errors"
	"net/http"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReceiptHandler handles receipt image HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// SaveReceiptRequest represents the receipt upload request body
type SaveReceiptRequest struct {
	Filename string `json:"filename"`
	Data     string `json:"data"` // data-URI encoded image
}

// SaveReceipt handles POST /receipts
func (h *ReceiptHandler) SaveReceipt(c echo.Context) error {
	var req SaveReceiptRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Filename == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "filename", Message: "Filename is required"},
		})
	}

	key, err := h.receiptService.Save(req.Filename, req.Data)
	switch {
	case errors.Is(err, service.ErrReceiptTooLarge),
		errors.Is(err, service.ErrInvalidReceiptFormat),
		errors.Is(err, service.ErrInvalidReceiptData):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "data", Message: err.Error()},
		})
	case err != nil:
		log.Error().Err(err).Str("filename", req.Filename).Msg("Failed to store receipt")
		return NewInternalError(c, "Failed to store receipt")
	}

	return c.JSON(http.StatusCreated, map[string]string{"key": key})
}

// GetReceipt handles GET /receipts/:key (?thumb=true for the thumbnail)
func (h *ReceiptHandler) GetReceipt(c echo.Context) error {
	key := c.Param("key")

	var dataURI string
	var err error
	if c.QueryParam("thumb") == "true" {
		dataURI, err = h.receiptService.GetThumbnail(key)
	} else {
		dataURI, err = h.receiptService.Get(key)
	}
	if errors.Is(err, domain.ErrReceiptNotFound) {
		return NewNotFoundError(c, "Receipt not found")
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to load receipt")
		return NewInternalError(c, "Failed to load receipt")
	}
	return c.JSON(http.StatusOK, map[string]string{"key": key, "data": dataURI})
}

// DeleteReceipt handles DELETE /receipts/:key
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	key := c.Param("key")
	if err := h.receiptService.Delete(key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to delete receipt")
		return NewInternalError(c, "Failed to delete receipt")
	}
	return c.NoContent(http.StatusNoContent)
}
