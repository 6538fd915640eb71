package handler

import (
	"net/http"

	"github.com/jangbu/jangbu-server/internal/domain"
	"github.com/jangbu/jangbu-server/internal/service"
	"github.com/jangbu/jangbu-server/internal/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SettingsHandler handles budget-settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
	registry        *service.RegistryService
	publisher       websocket.EventPublisher
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService, registry *service.RegistryService, publisher websocket.EventPublisher) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		registry:        registry,
		publisher:       publisher,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	settings, err := h.settingsService.GetSettings(databaseID)
	if err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to load settings")
		return NewInternalError(c, "Failed to load settings")
	}
	return c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	databaseID, err := resolveDatabaseID(c, h.registry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to resolve database")
		return NewInternalError(c, "Failed to resolve database")
	}

	var settings domain.Settings
	if err := c.Bind(&settings); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	if err := h.settingsService.SaveSettings(databaseID, settings); err != nil {
		log.Error().Err(err).Str("database_id", databaseID).Msg("Failed to save settings")
		return NewInternalError(c, "Failed to save settings")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeUpdated, websocket.EntityTypeSettings, settings))
	return c.JSON(http.StatusOK, settings)
}
