package usecase

import (
	"context"
	"testing"

	"github.com/fleetops/shipsight/internal/pkg/models"
	"github.com/fleetops/shipsight/services/dashboard/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimestamp(t *testing.T, value string) models.Timestamp {
	t.Helper()
	var ts models.Timestamp
	require.NoError(t, ts.UnmarshalCSV(value))
	return ts
}

func shipment(id, driver, vehicle, route, dest string, status models.ShipmentStatus) models.Shipment {
	return models.Shipment{
		ShipmentID:  id,
		DriverID:    driver,
		VehicleID:   vehicle,
		RouteID:     route,
		Destination: dest,
		Status:      status,
	}
}

func TestMetrics_CountsAndAvgTransit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m1 := shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	m1.PickupTime = mustTimestamp(t, "2024-03-01T08:00:00Z")
	m1.DeliveryTime = mustTimestamp(t, "2024-03-03T08:00:00Z") // 2 days

	m2 := shipment("S2", "D1", "V1", "R1", "Boston", models.StatusMissing)
	m2.PickupTime = mustTimestamp(t, "2024-03-01T08:00:00Z")
	m2.DeliveryTime = mustTimestamp(t, "2024-03-05T08:00:00Z") // 4 days

	fixture := []models.Shipment{
		m1,
		m2,
		shipment("S3", "D2", "V2", "R2", "Chicago", models.StatusDamaged),
		shipment("S4", "D2", "V2", "R2", "Chicago", models.StatusDelivered),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	metrics, err := uc.Metrics(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.TotalMissing)
	assert.Equal(t, 1, metrics.TotalDamaged)
	assert.Equal(t, "3.0 days", metrics.AvgTransitTime)
}

func TestMetrics_NAWhenNoMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := []models.Shipment{
		shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S2", "D1", "V1", "R1", "Boston", models.StatusDamaged),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	metrics, err := uc.Metrics(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.TotalMissing)
	assert.Equal(t, "N/A", metrics.AvgTransitTime)
}

func TestMetrics_NAWhenTimestampMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m1 := shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	m1.PickupTime = mustTimestamp(t, "2024-03-01T08:00:00Z")
	// delivery time left null

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return([]models.Shipment{m1}, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	metrics, err := uc.Metrics(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.TotalMissing)
	assert.Equal(t, "N/A", metrics.AvgTransitTime)
}

func TestMetrics_DriverFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m1 := shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	m1.PickupTime = mustTimestamp(t, "2024-03-01T08:00:00Z")
	m1.DeliveryTime = mustTimestamp(t, "2024-03-02T20:00:00Z") // 1.5 days

	fixture := []models.Shipment{
		m1,
		shipment("S2", "D2", "V2", "R2", "Boston", models.StatusMissing),
		shipment("S3", "D2", "V2", "R2", "Boston", models.StatusDamaged),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	metrics, err := uc.Metrics(context.Background(), "D1")
	require.NoError(t, err)

	// Only D1's shipments contribute
	assert.Equal(t, 1, metrics.TotalMissing)
	assert.Equal(t, 0, metrics.TotalDamaged)
	assert.Equal(t, "1.5 days", metrics.AvgTransitTime)
}
