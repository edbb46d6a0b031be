package usecase

import (
	"context"
	"errors"

	"github.com/fleetops/shipsight/internal/pkg/models"
	"github.com/fleetops/shipsight/services/dashboard"
)

var (
	// ErrInvalidGroupKey is returned for a grouping dimension outside
	// driver_id/vehicle_id/route_id
	ErrInvalidGroupKey = errors.New("unsupported group key")

	// ErrInvalidIncidentType is returned for a map status other than
	// Missing or Damaged
	ErrInvalidIncidentType = errors.New("unsupported incident type")
)

// DashboardUC implements the dashboard aggregation operations
type DashboardUC struct {
	repo dashboard.DatasetRepo
	cfg  *models.Config
}

// NewDashboardUC creates a new dashboard usecase instance
func NewDashboardUC(repo dashboard.DatasetRepo, cfg *models.Config) *DashboardUC {
	return &DashboardUC{
		repo: repo,
		cfg:  cfg,
	}
}

// filteredShipments returns the shipments restricted to one driver when
// driverID is non-empty
func (uc *DashboardUC) filteredShipments(ctx context.Context, driverID string) ([]models.Shipment, error) {
	shipments, err := uc.repo.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	if driverID == "" {
		return shipments, nil
	}

	filtered := make([]models.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if s.DriverID == driverID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// UnmappedDestinations returns destination names missing from the coordinate lookup
func (uc *DashboardUC) UnmappedDestinations(ctx context.Context) ([]string, error) {
	return uc.repo.UnmappedDestinations(ctx)
}
