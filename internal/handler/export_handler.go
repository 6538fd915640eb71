package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/jangbu/jangbu-server/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler serves backup export/import and CSV export
type ExportHandler struct {
	exportService *service.ExportService
	registry      *service.RegistryService
	publisher     websocket.EventPublisher
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService, registry *service.RegistryService, publisher websocket.EventPublisher) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		registry:      registry,
		publisher:     publisher,
	}
}

// ExportJSON handles GET /export
func (h *ExportHandler) ExportJSON(c echo.Context) error {
	document, err := h.exportService.ExportJSON()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build export")
		return NewInternalError(c, "Failed to build export")
	}

	filename := fmt.Sprintf("jangbu-backup-%s.json", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(document))
}

// ImportJSON handles POST /import with the raw backup document as body
func (h *ExportHandler) ImportJSON(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return NewValidationError(c, "Failed to read request body", nil)
	}

	err = h.exportService.ImportJSON(string(body))
	switch {
	case errors.Is(err, domain.ErrInvalidImport):
		return NewValidationError(c, "Invalid import document", nil)
	case errors.Is(err, domain.ErrNoDatabaseSelected):
		return NewValidationError(c, "No database selected for legacy import", nil)
	case err != nil:
		log.Error().Err(err).Msg("Failed to apply import")
		return NewInternalError(c, "Failed to apply import")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeImported, websocket.EntityTypeData, nil))
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// ExportCSV handles GET /export/csv for the selected database
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	document, err := h.exportService.ExportCSV(databaseID)
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to build CSV export")
		return NewInternalError(c, "Failed to build CSV export")
	}

	filename := fmt.Sprintf("jangbu-transactions-%s.csv", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(document))
}
