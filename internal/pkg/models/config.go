package models

// Config holds all application configuration
type Config struct {
	App    AppConfig
	Server ServerConfig
	Data   DataConfig
	Logger LoggerConfig
}

// AppConfig holds application level configuration
type AppConfig struct {
	Name        string `json:"name"`
	Environment string `json:"environment"`
	Debug       bool   `json:"debug"`
	Version     string `json:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	ReadTimeout     int    `json:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout"`
}

// DataConfig holds the locations of the flat-file datasets loaded at startup
type DataConfig struct {
	ShipmentsPath string `json:"shipments_path"`
	DriversPath   string `json:"drivers_path"`
	VehiclesPath  string `json:"vehicles_path"`
	RoutesPath    string `json:"routes_path"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
}
