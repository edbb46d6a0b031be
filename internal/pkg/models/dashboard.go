package models

// GroupKey is the dimension incident percentages are aggregated by
type GroupKey string

const (
	GroupByDriver  GroupKey = "driver_id"
	GroupByVehicle GroupKey = "vehicle_id"
	GroupByRoute   GroupKey = "route_id"
)

// GroupKeys lists the supported grouping dimensions in display order
var GroupKeys = []GroupKey{GroupByDriver, GroupByVehicle, GroupByRoute}

// Valid reports whether the group key is one of the supported dimensions
func (k GroupKey) Valid() bool {
	return k == GroupByDriver || k == GroupByVehicle || k == GroupByRoute
}

// Label returns a human readable name for the group key ("driver_id" -> "Driver")
func (k GroupKey) Label() string {
	switch k {
	case GroupByDriver:
		return "Driver"
	case GroupByVehicle:
		return "Vehicle"
	case GroupByRoute:
		return "Route"
	}
	return string(k)
}

// DashboardMetrics holds the scalar KPI values shown at the top of the dashboard
type DashboardMetrics struct {
	TotalMissing   int    `json:"total_missing"`
	TotalDamaged   int    `json:"total_damaged"`
	AvgTransitTime string `json:"avg_transit_time"`
}

// StatusCount is one slice of the status distribution chart
type StatusCount struct {
	Status ShipmentStatus `json:"status"`
	Count  int            `json:"count"`
}

// GroupIncidentRate is the incident percentage of one status within one group
type GroupIncidentRate struct {
	GroupID string         `json:"group_id"`
	Status  ShipmentStatus `json:"status"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
	Percent float64        `json:"percent"`
}

// TrendPoint is the count of Missing shipments delivered on one date
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DestinationIncident is the incident percentage for one destination city,
// positioned by the static coordinate lookup
type DestinationIncident struct {
	Destination string     `json:"destination"`
	Total       int        `json:"total"`
	Incidents   int        `json:"incidents"`
	Percent     float64    `json:"percent"`
	Coord       Coordinate `json:"coord"`
}

// DriverOption is one entry of the driver filter dropdown
type DriverOption struct {
	DriverID string `json:"driver_id"`
	Label    string `json:"label"`
}

// FilterOptions describes the dashboard controls offered to the user
type FilterOptions struct {
	Drivers       []DriverOption   `json:"drivers"`
	GroupKeys     []GroupKey       `json:"group_keys"`
	IncidentTypes []ShipmentStatus `json:"incident_types"`
}
