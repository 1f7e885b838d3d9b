// Package v1 provides the public HTTP handlers for the feelio engine.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pranavshinde369/feelio/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
}

// NewHandler creates a new handler.
func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the API routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)

	e.POST("/api/session/start", h.StartSession)
	e.POST("/api/chat", h.Chat)
	e.POST("/api/process", h.Process)
	e.POST("/api/session/summary", h.SessionSummary)
	e.POST("/api/session/end", h.EndSession)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "feelio-engine",
		"version": "1.0.0",
	})
}

func errorResponse(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"error":   msg,
	})
}
