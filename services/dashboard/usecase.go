package dashboard

import (
	"context"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fleetops/shipsight/services/dashboard DashboardUC

// DashboardUC defines the dashboard aggregation operations. Every operation
// accepts an optional driver filter; an empty driverID means all drivers.
type DashboardUC interface {
	// Metrics returns the scalar KPI values
	Metrics(ctx context.Context, driverID string) (*models.DashboardMetrics, error)

	// StatusDistribution returns shipment counts per status
	StatusDistribution(ctx context.Context, driverID string) ([]models.StatusCount, error)

	// IncidentRates returns the Missing/Damaged percentage per group for the
	// given grouping dimension
	IncidentRates(ctx context.Context, driverID string, groupKey models.GroupKey) ([]models.GroupIncidentRate, error)

	// MissingTrend returns counts of Missing shipments per delivery date
	MissingTrend(ctx context.Context, driverID string) ([]models.TrendPoint, error)

	// DestinationIncidents returns the per-destination percentage of the given
	// incident status, for destinations with known coordinates
	DestinationIncidents(ctx context.Context, driverID string, status models.ShipmentStatus) ([]models.DestinationIncident, error)

	// FilterOptions returns the values offered by the dashboard controls
	FilterOptions(ctx context.Context) (*models.FilterOptions, error)

	// UnmappedDestinations returns destination names missing from the
	// coordinate lookup, for the warning banner
	UnmappedDestinations(ctx context.Context) ([]string, error)
}
