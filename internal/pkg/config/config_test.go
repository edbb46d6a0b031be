package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnvDefaults(t *testing.T) {
	configs := loadConfigFromEnv()

	assert.Equal(t, "shipsight-dashboard", configs.App.Name)
	assert.Equal(t, 8080, configs.Server.Port)
	assert.Equal(t, "data/shipments.csv", configs.Data.ShipmentsPath)
	assert.Equal(t, "data/drivers.csv", configs.Data.DriversPath)
	assert.Equal(t, "data/vehicles.csv", configs.Data.VehiclesPath)
	assert.Equal(t, "data/routes.csv", configs.Data.RoutesPath)
	assert.Equal(t, "info", configs.Logger.Level)
}

func TestLoadConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SHIPMENTS_PATH", "/tmp/shipments.csv")
	t.Setenv("LOG_LEVEL", "debug")

	configs := loadConfigFromEnv()

	assert.Equal(t, 9090, configs.Server.Port)
	assert.Equal(t, "/tmp/shipments.csv", configs.Data.ShipmentsPath)
	assert.Equal(t, "debug", configs.Logger.Level)
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("TEST_INT", 7))

	assert.Equal(t, 7, GetEnvAsInt("TEST_INT_UNSET", 7))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "banana")
	assert.True(t, GetEnvAsBool("TEST_BOOL", true))

	assert.False(t, GetEnvAsBool("TEST_BOOL_UNSET", false))
}
