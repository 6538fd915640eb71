package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ReportHandler serves the category spending report
type ReportHandler struct {
	summaryService *service.SummaryService
	registry       *service.RegistryService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(summaryService *service.SummaryService, registry *service.RegistryService) *ReportHandler {
	return &ReportHandler{summaryService: summaryService, registry: registry}
}

// GetCategorySpending handles GET /reports/categories?month=N (0-based)
func (h *ReportHandler) GetCategorySpending(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	month, err := strconv.Atoi(c.QueryParam("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be an integer between 0 and 11"},
		})
	}

	report, err := h.summaryService.GetCategorySpending(databaseID, month)
	if errors.Is(err, domain.ErrInvalidMonth) {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: err.Error()},
		})
	}
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to build category report")
		return NewInternalError(c, "Failed to build category report")
	}
	return c.JSON(http.StatusOK, report)
}
