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

// DashboardHandler serves the dashboard summaries
type DashboardHandler struct {
	summaryService *service.SummaryService
	registry       *service.RegistryService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(summaryService *service.SummaryService, registry *service.RegistryService) *DashboardHandler {
	return &DashboardHandler{summaryService: summaryService, registry: registry}
}

// GetYearlySummary handles GET /dashboard/summary
func (h *DashboardHandler) GetYearlySummary(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	summary, err := h.summaryService.GetYearlySummary(databaseID)
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to build yearly summary")
		return NewInternalError(c, "Failed to build yearly summary")
	}
	return c.JSON(http.StatusOK, summary)
}

// GetMonthlySummary handles GET /dashboard/summary/:month (0-based index)
func (h *DashboardHandler) GetMonthlySummary(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: "Must be an integer between 0 and 11"},
		})
	}

	summary, err := h.summaryService.GetMonthlySummary(databaseID, month)
	if errors.Is(err, domain.ErrInvalidMonth) {
		return NewValidationError(c, "Invalid month", []ValidationError{
			{Field: "month", Message: err.Error()},
		})
	}
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to build monthly summary")
		return NewInternalError(c, "Failed to build monthly summary")
	}
	return c.JSON(http.StatusOK, summary)
}
