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

// DatabaseHandler handles registry-related HTTP requests
type DatabaseHandler struct {
	registry  *service.RegistryService
	publisher websocket.EventPublisher
}

// NewDatabaseHandler creates a new DatabaseHandler
func NewDatabaseHandler(registry *service.RegistryService, publisher websocket.EventPublisher) *DatabaseHandler {
	return &DatabaseHandler{registry: registry, publisher: publisher}
}

// CreateDatabaseRequest represents the create database request body
type CreateDatabaseRequest struct {
	Name   string `json:"name"`
	IsYear bool   `json:"isYear"`
	Year   int    `json:"year"`
}

// SetCurrentDatabaseRequest represents the set-current request body
type SetCurrentDatabaseRequest struct {
	ID string `json:"id"`
}

// GetConfig handles GET /databases
func (h *DatabaseHandler) GetConfig(c echo.Context) error {
	config, err := h.registry.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load registry")
		return NewInternalError(c, "Failed to load registry")
	}
	return c.JSON(http.StatusOK, config)
}

// CreateDatabase handles POST /databases
func (h *DatabaseHandler) CreateDatabase(c echo.Context) error {
	var req CreateDatabaseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	database, err := h.registry.AddDatabase(req.Name, req.IsYear, req.Year)
	switch {
	case errors.Is(err, domain.ErrNameRequired), errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: err.Error()},
		})
	case errors.Is(err, domain.ErrInvalidYear):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "year", Message: err.Error()},
		})
	case err != nil:
		log.Error().Err(err).Msg("Failed to create database")
		return NewInternalError(c, "Failed to create database")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeCreated, websocket.EntityTypeDatabase, database))
	return c.JSON(http.StatusCreated, database)
}

// DeleteDatabase handles DELETE /databases/:id
func (h *DatabaseHandler) DeleteDatabase(c echo.Context) error {
	id := c.Param("id")
	err := h.registry.DeleteDatabase(id)
	if errors.Is(err, domain.ErrDatabaseNotFound) {
		return NewNotFoundError(c, "Database not found")
	}
	if err != nil {
		log.Error().Err(err).Str("database_id", id).Msg("Failed to delete database")
		return NewInternalError(c, "Failed to delete database")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeDeleted, websocket.EntityTypeDatabase, map[string]string{"id": id}))
	return c.NoContent(http.StatusNoContent)
}

// SetCurrentDatabase handles PUT /databases/current
func (h *DatabaseHandler) SetCurrentDatabase(c echo.Context) error {
	var req SetCurrentDatabaseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.ID == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "id", Message: "Database id is required"},
		})
	}

	if err := h.registry.SetCurrentDatabase(req.ID); err != nil {
		log.Error().Err(err).Msg("Failed to set current database")
		return NewInternalError(c, "Failed to set current database")
	}

	h.publisher.Publish(websocket.NewEvent(websocket.EventTypeSelected, websocket.EntityTypeDatabase, map[string]string{"id": req.ID}))
	return c.JSON(http.StatusOK, map[string]string{"currentDatabaseId": req.ID})
}

// resolveDatabaseID picks the database scope for a request: the db query
// parameter when present, otherwise the registry's current pointer.
func resolveDatabaseID(c echo.Context, registry *service.RegistryService) (string, error) {
	if id := c.QueryParam("db"); id != "" {
		return id, nil
	}
	return registry.GetCurrentDatabaseID()
}
