package dashboard

import (
	"context"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fleetops/shipsight/services/dashboard DatasetRepo

// DatasetRepo defines read access to the shipment datasets loaded at startup
type DatasetRepo interface {
	// Shipments returns all shipments, already enriched with delivery date
	// and destination coordinates
	Shipments(ctx context.Context) ([]models.Shipment, error)

	// Reference data
	Drivers(ctx context.Context) ([]models.Driver, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Routes(ctx context.Context) ([]models.Route, error)

	// UnmappedDestinations returns the distinct destination names that were
	// absent from the coordinate lookup, sorted alphabetically
	UnmappedDestinations(ctx context.Context) ([]string, error)
}
