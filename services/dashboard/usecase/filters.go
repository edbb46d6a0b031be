package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

// FilterOptions returns the values offered by the dashboard controls. Driver
// options come from the driver_ids actually present in shipments, labelled
// with the driver name when the reference data has one.
func (uc *DashboardUC) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	shipments, err := uc.repo.Shipments(ctx)
	if err != nil {
		return nil, err
	}
	drivers, err := uc.repo.Drivers(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(drivers))
	for _, d := range drivers {
		names[d.DriverID] = d.Name
	}

	seen := make(map[string]struct{})
	var ids []string
	for _, s := range shipments {
		if s.DriverID == "" {
			continue
		}
		if _, ok := seen[s.DriverID]; !ok {
			seen[s.DriverID] = struct{}{}
			ids = append(ids, s.DriverID)
		}
	}
	sort.Strings(ids)

	options := make([]models.DriverOption, 0, len(ids))
	for _, id := range ids {
		label := id
		if name := names[id]; name != "" {
			label = fmt.Sprintf("%s (%s)", name, id)
		}
		options = append(options, models.DriverOption{DriverID: id, Label: label})
	}

	return &models.FilterOptions{
		Drivers:       options,
		GroupKeys:     models.GroupKeys,
		IncidentTypes: models.IncidentStatuses,
	}, nil
}
