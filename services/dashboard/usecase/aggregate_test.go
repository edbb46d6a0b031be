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

var chicago = models.Coordinate{Latitude: 41.8781, Longitude: -87.6298}
var boston = models.Coordinate{Latitude: 42.3601, Longitude: -71.0589}

func located(s models.Shipment, coord models.Coordinate) models.Shipment {
	c := coord
	s.DestCoord = &c
	return s
}

func TestStatusDistribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := []models.Shipment{
		shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S2", "D1", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S3", "D1", "V1", "R1", "Chicago", models.StatusMissing),
		shipment("S4", "D2", "V2", "R2", "Boston", models.StatusDamaged),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	distribution, err := uc.StatusDistribution(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, distribution, 3)
	assert.Equal(t, models.StatusDelivered, distribution[0].Status)
	assert.Equal(t, 2, distribution[0].Count)

	total := 0
	for _, sc := range distribution {
		total += sc.Count
	}
	assert.Equal(t, len(fixture), total)
}

func TestIncidentRates_ByVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := []models.Shipment{
		shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing),
		shipment("S2", "D1", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S3", "D1", "V1", "R1", "Chicago", models.StatusDamaged),
		shipment("S4", "D2", "V2", "R2", "Boston", models.StatusMissing),
		shipment("S5", "D2", "V2", "R2", "Boston", models.StatusDelivered),
		shipment("S6", "D2", "V2", "R2", "Boston", models.StatusDelivered),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	rates, err := uc.IncidentRates(context.Background(), "", models.GroupByVehicle)
	require.NoError(t, err)

	require.Len(t, rates, 3)

	// V1: Missing first, then Damaged
	assert.Equal(t, "V1", rates[0].GroupID)
	assert.Equal(t, models.StatusMissing, rates[0].Status)
	assert.InDelta(t, 33.33, rates[0].Percent, 0.001)

	assert.Equal(t, "V1", rates[1].GroupID)
	assert.Equal(t, models.StatusDamaged, rates[1].Status)
	assert.InDelta(t, 33.33, rates[1].Percent, 0.001)

	assert.Equal(t, "V2", rates[2].GroupID)
	assert.Equal(t, models.StatusMissing, rates[2].Status)
	assert.InDelta(t, 33.33, rates[2].Percent, 0.001)

	// Per-group incident counts sum to the filtered totals per status
	missingSum, damagedSum := 0, 0
	for _, r := range rates {
		assert.GreaterOrEqual(t, r.Percent, 0.0)
		assert.LessOrEqual(t, r.Percent, 100.0)
		switch r.Status {
		case models.StatusMissing:
			missingSum += r.Count
		case models.StatusDamaged:
			damagedSum += r.Count
		}
	}
	assert.Equal(t, 2, missingSum)
	assert.Equal(t, 1, damagedSum)
}

func TestIncidentRates_InvalidGroupKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	uc := NewDashboardUC(mockRepo, &models.Config{})

	_, err := uc.IncidentRates(context.Background(), "", models.GroupKey("destination"))
	assert.ErrorIs(t, err, ErrInvalidGroupKey)
}

func TestMissingTrend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s1 := shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	s1.DeliveryDate = "2024-03-05"
	s2 := shipment("S2", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	s2.DeliveryDate = "2024-03-03"
	s3 := shipment("S3", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	s3.DeliveryDate = "2024-03-05"
	// Missing without a delivery date stays off the trend
	s4 := shipment("S4", "D1", "V1", "R1", "Chicago", models.StatusMissing)
	// Non-missing statuses never count
	s5 := shipment("S5", "D1", "V1", "R1", "Chicago", models.StatusDamaged)
	s5.DeliveryDate = "2024-03-03"

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return([]models.Shipment{s1, s2, s3, s4, s5}, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	trend, err := uc.MissingTrend(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, trend, 2)
	assert.Equal(t, models.TrendPoint{Date: "2024-03-03", Count: 1}, trend[0])
	assert.Equal(t, models.TrendPoint{Date: "2024-03-05", Count: 2}, trend[1])
}

func TestDestinationIncidents_Percentages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 10 Chicago shipments, 3 of them Missing
	var fixture []models.Shipment
	for i := 0; i < 10; i++ {
		status := models.StatusDelivered
		if i < 3 {
			status = models.StatusMissing
		}
		fixture = append(fixture, located(shipment("", "D1", "V1", "R1", "Chicago", status), chicago))
	}
	// Boston has no Missing shipments at all
	fixture = append(fixture, located(shipment("", "D1", "V1", "R1", "Boston", models.StatusDamaged), boston))
	// Unmapped destination stays off the map
	fixture = append(fixture, shipment("", "D1", "V1", "R1", "Atlantis", models.StatusMissing))

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	incidents, err := uc.DestinationIncidents(context.Background(), "", models.StatusMissing)
	require.NoError(t, err)

	require.Len(t, incidents, 2)

	assert.Equal(t, "Boston", incidents[0].Destination)
	assert.Equal(t, 1, incidents[0].Total)
	assert.Equal(t, 0, incidents[0].Incidents)
	assert.Equal(t, 0.0, incidents[0].Percent)

	assert.Equal(t, "Chicago", incidents[1].Destination)
	assert.Equal(t, 10, incidents[1].Total)
	assert.Equal(t, 3, incidents[1].Incidents)
	assert.Equal(t, 30.0, incidents[1].Percent)
	assert.InDelta(t, chicago.Latitude, incidents[1].Coord.Latitude, 0.0001)
}

func TestDestinationIncidents_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	uc := NewDashboardUC(mockRepo, &models.Config{})

	_, err := uc.DestinationIncidents(context.Background(), "", models.StatusDelivered)
	assert.ErrorIs(t, err, ErrInvalidIncidentType)
}

func TestDestinationIncidents_DriverFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := []models.Shipment{
		located(shipment("S1", "D1", "V1", "R1", "Chicago", models.StatusMissing), chicago),
		located(shipment("S2", "D2", "V2", "R2", "Chicago", models.StatusMissing), chicago),
		located(shipment("S3", "D2", "V2", "R2", "Boston", models.StatusDelivered), boston),
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	incidents, err := uc.DestinationIncidents(context.Background(), "D1", models.StatusMissing)
	require.NoError(t, err)

	// Only D1's single Chicago shipment remains
	require.Len(t, incidents, 1)
	assert.Equal(t, "Chicago", incidents[0].Destination)
	assert.Equal(t, 1, incidents[0].Total)
	assert.Equal(t, 100.0, incidents[0].Percent)
}

func TestFilterOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fixture := []models.Shipment{
		shipment("S1", "D2", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S2", "D1", "V1", "R1", "Chicago", models.StatusDelivered),
		shipment("S3", "D1", "V1", "R1", "Chicago", models.StatusMissing),
	}
	drivers := []models.Driver{
		{DriverID: "D1", Name: "Alice Nguyen"},
		{DriverID: "D3", Name: "Unassigned Driver"},
	}

	mockRepo := mocks.NewMockDatasetRepo(ctrl)
	mockRepo.EXPECT().Shipments(gomock.Any()).Return(fixture, nil)
	mockRepo.EXPECT().Drivers(gomock.Any()).Return(drivers, nil)

	uc := NewDashboardUC(mockRepo, &models.Config{})

	options, err := uc.FilterOptions(context.Background())
	require.NoError(t, err)

	// Distinct driver IDs from shipments, sorted, labelled from reference data
	require.Len(t, options.Drivers, 2)
	assert.Equal(t, "D1", options.Drivers[0].DriverID)
	assert.Equal(t, "Alice Nguyen (D1)", options.Drivers[0].Label)
	assert.Equal(t, "D2", options.Drivers[1].DriverID)
	assert.Equal(t, "D2", options.Drivers[1].Label)

	assert.Equal(t, models.GroupKeys, options.GroupKeys)
	assert.Equal(t, models.IncidentStatuses, options.IncidentTypes)
}
