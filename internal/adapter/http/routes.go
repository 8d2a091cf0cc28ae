// Package http provides the HTTP handler layer for the tour discovery API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all tour discovery API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *TourHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Tours group
	tours := api.Group("/tours")
	tours.GET("", h.ListTours)
	tours.GET("/featured", h.FeaturedTours)
	tours.GET("/suggestions", h.Suggestions)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *TourHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Tours group
	tours := api.Group("/tours")
	tours.GET("", h.ListTours)
	tours.GET("/featured", h.FeaturedTours)
	tours.GET("/suggestions", h.Suggestions)
}
