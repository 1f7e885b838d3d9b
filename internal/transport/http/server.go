// Package http provides the HTTP server for the feelio engine.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pranavshinde369/feelio/internal/config"
	"github.com/pranavshinde369/feelio/internal/service"
	v1 "github.com/pranavshinde369/feelio/internal/transport/http/v1"
	"github.com/pranavshinde369/feelio/internal/transport/ws"
)

// NewServer creates and configures the API server.
func NewServer(cfg *config.Config, svc *service.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))

	// Handlers
	apiHandler := v1.NewHandler(svc)
	wsHandler := ws.NewServer(svc)

	// Register routes
	apiHandler.RegisterRoutes(e)
	wsHandler.RegisterRoutes(e)

	return e
}
