package http

import (
	"html/template"
	"net/http"

	"github.com/fleetops/shipsight/internal/pkg/logger"
	"github.com/fleetops/shipsight/internal/pkg/models"
	"github.com/fleetops/shipsight/internal/utils"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/labstack/echo/v4"
)

// chartSection is one rendered chart embedded into the page layout
type chartSection struct {
	Element template.HTML
	Script  template.HTML
}

// pageData is everything the dashboard layout needs. It is a pure function of
// the aggregate results and the selected controls.
type pageData struct {
	Title            string
	Unmapped         []string
	Metrics          *models.DashboardMetrics
	Filters          *models.FilterOptions
	SelectedDriver   string
	SelectedGroupKey models.GroupKey
	SelectedIncident models.ShipmentStatus
	Charts           []chartSection
}

// DashboardPage renders the full dashboard. Every request recomputes the
// filter and aggregation path from the in-memory dataset, so a control change
// simply resubmits the form.
func (h *DashboardHandler) DashboardPage(c echo.Context) error {
	ctx := c.Request().Context()

	driver := driverParam(c)
	groupKey, ok := groupKeyParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid group_by, expected driver_id, vehicle_id or route_id")
	}
	incidentType, ok := incidentTypeParam(c)
	if !ok {
		return utils.BadRequestResponse(c, "Invalid type, expected Missing or Damaged")
	}

	metrics, err := h.dashboardUC.Metrics(ctx, driver)
	if err != nil {
		return h.pageError(c, "Failed to compute metrics", err)
	}
	distribution, err := h.dashboardUC.StatusDistribution(ctx, driver)
	if err != nil {
		return h.pageError(c, "Failed to compute status distribution", err)
	}
	rates, err := h.dashboardUC.IncidentRates(ctx, driver, groupKey)
	if err != nil {
		return h.pageError(c, "Failed to compute incident rates", err)
	}
	trend, err := h.dashboardUC.MissingTrend(ctx, driver)
	if err != nil {
		return h.pageError(c, "Failed to compute missing trend", err)
	}
	destinations, err := h.dashboardUC.DestinationIncidents(ctx, driver, incidentType)
	if err != nil {
		return h.pageError(c, "Failed to compute destination incidents", err)
	}
	filters, err := h.dashboardUC.FilterOptions(ctx)
	if err != nil {
		return h.pageError(c, "Failed to list filter options", err)
	}
	unmapped, err := h.dashboardUC.UnmappedDestinations(ctx)
	if err != nil {
		return h.pageError(c, "Failed to list unmapped destinations", err)
	}

	selectedDriver := c.QueryParam("driver")
	if selectedDriver == "" {
		selectedDriver = "All"
	}

	data := pageData{
		Title:            "Shipping Errors Dashboard",
		Unmapped:         unmapped,
		Metrics:          metrics,
		Filters:          filters,
		SelectedDriver:   selectedDriver,
		SelectedGroupKey: groupKey,
		SelectedIncident: incidentType,
		Charts: []chartSection{
			snippetOf(statusPieChart(distribution)),
			snippetOf(incidentBarChart(rates, groupKey)),
			snippetOf(missingTrendChart(trend)),
			snippetOf(destinationMapChart(destinations, incidentType)),
		},
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return pageTemplate.Execute(c.Response().Writer, data)
}

// snippetOf renders a chart into the element and script fragments embedded by
// the page layout
func snippetOf(chart interface{ RenderSnippet() render.ChartSnippet }) chartSection {
	snippet := chart.RenderSnippet()
	return chartSection{
		Element: template.HTML(snippet.Element),
		Script:  template.HTML(snippet.Script),
	}
}

func (h *DashboardHandler) pageError(c echo.Context, message string, err error) error {
	logger.Error(message, logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, message)
}
