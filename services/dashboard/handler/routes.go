package handler

import (
	"github.com/fleetops/shipsight/internal/pkg/models"
	dashhttp "github.com/fleetops/shipsight/services/dashboard/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler coordinates the HTTP handlers for the dashboard service
type Handler struct {
	dashboardHandler *dashhttp.DashboardHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(dashboardHandler *dashhttp.DashboardHandler, cfg *models.Config) *Handler {
	return &Handler{
		dashboardHandler: dashboardHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers the dashboard page and the JSON API
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.dashboardHandler.DashboardPage)

	api := e.Group("/api/v1/dashboard")
	api.GET("/metrics", h.dashboardHandler.GetMetrics)
	api.GET("/status-distribution", h.dashboardHandler.GetStatusDistribution)
	api.GET("/incident-rates", h.dashboardHandler.GetIncidentRates)
	api.GET("/missing-trend", h.dashboardHandler.GetMissingTrend)
	api.GET("/destination-incidents", h.dashboardHandler.GetDestinationIncidents)
	api.GET("/filters", h.dashboardHandler.GetFilterOptions)
	api.GET("/unmapped-destinations", h.dashboardHandler.GetUnmappedDestinations)
}
