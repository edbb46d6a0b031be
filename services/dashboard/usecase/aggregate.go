package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

// round2 rounds a percentage to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groupValue returns the shipment field addressed by the group key
func groupValue(s models.Shipment, key models.GroupKey) string {
	switch key {
	case models.GroupByDriver:
		return s.DriverID
	case models.GroupByVehicle:
		return s.VehicleID
	case models.GroupByRoute:
		return s.RouteID
	}
	return ""
}

// StatusDistribution counts shipments per status over the filtered set,
// largest slice first
func (uc *DashboardUC) StatusDistribution(ctx context.Context, driverID string) ([]models.StatusCount, error) {
	shipments, err := uc.filteredShipments(ctx, driverID)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ShipmentStatus]int)
	for _, s := range shipments {
		counts[s.Status]++
	}

	distribution := make([]models.StatusCount, 0, len(counts))
	for status, count := range counts {
		distribution = append(distribution, models.StatusCount{Status: status, Count: count})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Status < distribution[j].Status
	})

	return distribution, nil
}

// IncidentRates computes, for every group of the chosen dimension, the share
// of its shipments with status Missing or Damaged. A group/status pair only
// appears when at least one such incident exists.
func (uc *DashboardUC) IncidentRates(ctx context.Context, driverID string, groupKey models.GroupKey) ([]models.GroupIncidentRate, error) {
	if !groupKey.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGroupKey, groupKey)
	}

	shipments, err := uc.filteredShipments(ctx, driverID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	incidents := make(map[string]map[models.ShipmentStatus]int)
	for _, s := range shipments {
		group := groupValue(s, groupKey)
		totals[group]++

		if s.Status.IsIncident() {
			if incidents[group] == nil {
				incidents[group] = make(map[models.ShipmentStatus]int)
			}
			incidents[group][s.Status]++
		}
	}

	var rates []models.GroupIncidentRate
	for group, byStatus := range incidents {
		for _, status := range models.IncidentStatuses {
			count := byStatus[status]
			if count == 0 {
				continue
			}
			rates = append(rates, models.GroupIncidentRate{
				GroupID: group,
				Status:  status,
				Count:   count,
				Total:   totals[group],
				Percent: round2(float64(count) / float64(totals[group]) * 100),
			})
		}
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].GroupID != rates[j].GroupID {
			return rates[i].GroupID < rates[j].GroupID
		}
		return rates[i].Status == models.StatusMissing && rates[j].Status != models.StatusMissing
	})

	return rates, nil
}

// MissingTrend counts Missing shipments per delivery date, ascending.
// Shipments without a delivery date are excluded.
func (uc *DashboardUC) MissingTrend(ctx context.Context, driverID string) ([]models.TrendPoint, error) {
	shipments, err := uc.filteredShipments(ctx, driverID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, s := range shipments {
		if s.Status == models.StatusMissing && s.DeliveryDate != "" {
			counts[s.DeliveryDate]++
		}
	}

	trend := make([]models.TrendPoint, 0, len(counts))
	for date, count := range counts {
		trend = append(trend, models.TrendPoint{Date: date, Count: count})
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})

	return trend, nil
}

// DestinationIncidents computes the share of shipments with the given status
// per destination. Destinations without coordinates are excluded; destinations
// without a single matching incident report 0%.
func (uc *DashboardUC) DestinationIncidents(ctx context.Context, driverID string, status models.ShipmentStatus) ([]models.DestinationIncident, error) {
	if !status.IsIncident() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIncidentType, status)
	}

	shipments, err := uc.filteredShipments(ctx, driverID)
	if err != nil {
		return nil, err
	}

	byDest := make(map[string]*models.DestinationIncident)
	for _, s := range shipments {
		if s.DestCoord == nil {
			continue
		}

		entry, ok := byDest[s.Destination]
		if !ok {
			entry = &models.DestinationIncident{
				Destination: s.Destination,
				Coord:       *s.DestCoord,
			}
			byDest[s.Destination] = entry
		}
		entry.Total++
		if s.Status == status {
			entry.Incidents++
		}
	}

	result := make([]models.DestinationIncident, 0, len(byDest))
	for _, entry := range byDest {
		entry.Percent = round2(float64(entry.Incidents) / float64(entry.Total) * 100)
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Destination < result[j].Destination
	})

	return result, nil
}
