package usecase

import (
	"context"
	"fmt"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

// metricNA is shown when the average transit time cannot be computed
const metricNA = "N/A"

const secondsPerDay = 86400

// Metrics computes the scalar KPI values over the filtered shipments.
// The average transit time covers Missing shipments only and reports N/A
// when there are none, or when any of them lacks a pickup or delivery
// timestamp.
func (uc *DashboardUC) Metrics(ctx context.Context, driverID string) (*models.DashboardMetrics, error) {
	shipments, err := uc.filteredShipments(ctx, driverID)
	if err != nil {
		return nil, err
	}

	metrics := &models.DashboardMetrics{AvgTransitTime: metricNA}

	var missing []models.Shipment
	for _, s := range shipments {
		switch s.Status {
		case models.StatusMissing:
			metrics.TotalMissing++
			missing = append(missing, s)
		case models.StatusDamaged:
			metrics.TotalDamaged++
		}
	}

	if len(missing) == 0 {
		return metrics, nil
	}

	var totalSeconds float64
	for _, s := range missing {
		if !s.PickupTime.Valid() || !s.DeliveryTime.Valid() {
			return metrics, nil
		}
		totalSeconds += s.DeliveryTime.Sub(s.PickupTime.Time).Seconds()
	}

	avgDays := totalSeconds / float64(len(missing)) / secondsPerDay
	metrics.AvgTransitTime = fmt.Sprintf("%.1f days", avgDays)

	return metrics, nil
}
