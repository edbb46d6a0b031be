package repository

import (
	"context"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

// DatasetRepo holds the shipment datasets in memory for the lifetime of the
// process. The data is loaded once at construction and never mutated, so the
// accessors are safe for concurrent use without locking.
type DatasetRepo struct {
	cfg *models.Config

	shipments []models.Shipment
	drivers   []models.Driver
	vehicles  []models.Vehicle
	routes    []models.Route
	unmapped  []string
}

// NewDatasetRepo loads the four datasets from the configured paths and
// enriches shipments with derived columns. Any unreadable or undecodable file
// fails construction.
func NewDatasetRepo(cfg *models.Config) (*DatasetRepo, error) {
	r := &DatasetRepo{cfg: cfg}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

// Shipments returns all enriched shipments
func (r *DatasetRepo) Shipments(ctx context.Context) ([]models.Shipment, error) {
	return r.shipments, nil
}

// Drivers returns the driver reference data
func (r *DatasetRepo) Drivers(ctx context.Context) ([]models.Driver, error) {
	return r.drivers, nil
}

// Vehicles returns the vehicle reference data
func (r *DatasetRepo) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	return r.vehicles, nil
}

// Routes returns the route reference data
func (r *DatasetRepo) Routes(ctx context.Context) ([]models.Route, error) {
	return r.routes, nil
}

// UnmappedDestinations returns the distinct destinations absent from the
// coordinate lookup, sorted alphabetically
func (r *DatasetRepo) UnmappedDestinations(ctx context.Context) ([]string, error) {
	return r.unmapped, nil
}

// CheckHealth reports whether the dataset is loaded, for the readiness probe
func (r *DatasetRepo) CheckHealth(ctx context.Context) error {
	if len(r.shipments) == 0 {
		return ErrEmptyDataset
	}
	return nil
}
