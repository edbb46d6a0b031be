package repository

import (
	"errors"
	"fmt"
	"os"

	"github.com/fleetops/shipsight/internal/pkg/logger"
	"github.com/gocarina/gocsv"
)

// ErrEmptyDataset is returned by the readiness check when no shipments are loaded
var ErrEmptyDataset = errors.New("shipment dataset is empty")

// load reads the four datasets and derives the shipment columns
func (r *DatasetRepo) load() error {
	if err := readCSV(r.cfg.Data.ShipmentsPath, &r.shipments); err != nil {
		return fmt.Errorf("loading shipments: %w", err)
	}
	if err := readCSV(r.cfg.Data.DriversPath, &r.drivers); err != nil {
		return fmt.Errorf("loading drivers: %w", err)
	}
	if err := readCSV(r.cfg.Data.VehiclesPath, &r.vehicles); err != nil {
		return fmt.Errorf("loading vehicles: %w", err)
	}
	if err := readCSV(r.cfg.Data.RoutesPath, &r.routes); err != nil {
		return fmt.Errorf("loading routes: %w", err)
	}

	r.enrichShipments()

	logger.Info("Datasets loaded",
		logger.Int("shipments", len(r.shipments)),
		logger.Int("drivers", len(r.drivers)),
		logger.Int("vehicles", len(r.vehicles)),
		logger.Int("routes", len(r.routes)),
	)

	return nil
}

// readCSV decodes one CSV file into the given slice pointer
func readCSV(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := gocsv.UnmarshalFile(file, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
