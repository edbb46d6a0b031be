package http

import (
	"net/http"

	"github.com/fleetops/shipsight/internal/pkg/logger"
	"github.com/fleetops/shipsight/internal/pkg/models"
	"github.com/fleetops/shipsight/internal/utils"
	"github.com/fleetops/shipsight/services/dashboard"
	"github.com/labstack/echo/v4"
)

// DashboardHandler handles HTTP requests for dashboard aggregates
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// driverParam reads the driver filter from the query string. The literal
// "All" from the dropdown means no filter.
func driverParam(c echo.Context) string {
	driver := c.QueryParam("driver")
	if driver == "All" {
		return ""
	}
	return driver
}

// groupKeyParam reads and validates the grouping dimension, defaulting to driver
func groupKeyParam(c echo.Context) (models.GroupKey, bool) {
	raw := c.QueryParam("group_by")
	if raw == "" {
		return models.GroupByDriver, true
	}
	key := models.GroupKey(raw)
	return key, key.Valid()
}

// incidentTypeParam reads and validates the map incident type, defaulting to Missing
func incidentTypeParam(c echo.Context) (models.ShipmentStatus, bool) {
	raw := c.QueryParam("type")
	if raw == "" {
		return models.StatusMissing, true
	}
	status := models.ShipmentStatus(raw)
	return status, status.IsIncident()
}

// GetMetrics handles KPI metric requests
func (h *DashboardHandler) GetMetrics(c echo.Context) error {
	metrics, err := h.dashboardUC.Metrics(c.Request().Context(), driverParam(c))
	if err != nil {
		logger.Error("Failed to compute metrics", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute metrics")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Metrics computed successfully", metrics)
}

// GetStatusDistribution handles status distribution requests
func (h *DashboardHandler) GetStatusDistribution(c echo.Context) error {
	distribution, err := h.dashboardUC.StatusDistribution(c.Request().Context(), driverParam(c))
	if err != nil {
		logger.Error("Failed to compute status distribution", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute status distribution")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Status distribution computed successfully", distribution)
}

// GetIncidentRates handles grouped incident percentage requests
func (h *DashboardHandler) GetIncidentRates(c echo.Context) error {
	groupKey, ok := groupKeyParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid group_by, expected driver_id, vehicle_id or route_id")
	}

	rates, err := h.dashboardUC.IncidentRates(c.Request().Context(), driverParam(c), groupKey)
	if err != nil {
		logger.Error("Failed to compute incident rates",
			logger.ErrorField(err),
			logger.String("group_by", string(groupKey)),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute incident rates")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Incident rates computed successfully", rates)
}

// GetMissingTrend handles Missing-over-time requests
func (h *DashboardHandler) GetMissingTrend(c echo.Context) error {
	trend, err := h.dashboardUC.MissingTrend(c.Request().Context(), driverParam(c))
	if err != nil {
		logger.Error("Failed to compute missing trend", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute missing trend")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Missing trend computed successfully", trend)
}

// GetDestinationIncidents handles per-destination incident percentage requests
func (h *DashboardHandler) GetDestinationIncidents(c echo.Context) error {
	status, ok := incidentTypeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid type, expected Missing or Damaged")
	}

	incidents, err := h.dashboardUC.DestinationIncidents(c.Request().Context(), driverParam(c), status)
	if err != nil {
		logger.Error("Failed to compute destination incidents",
			logger.ErrorField(err),
			logger.String("type", string(status)),
		)
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to compute destination incidents")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Destination incidents computed successfully", incidents)
}

// GetFilterOptions handles dashboard control option requests
func (h *DashboardHandler) GetFilterOptions(c echo.Context) error {
	options, err := h.dashboardUC.FilterOptions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list filter options", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list filter options")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Filter options retrieved successfully", options)
}

// GetUnmappedDestinations handles warning banner requests
func (h *DashboardHandler) GetUnmappedDestinations(c echo.Context) error {
	unmapped, err := h.dashboardUC.UnmappedDestinations(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list unmapped destinations", logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Failed to list unmapped destinations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Unmapped destinations retrieved successfully", unmapped)
}
