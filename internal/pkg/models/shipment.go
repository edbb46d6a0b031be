package models

// ShipmentStatus represents the delivery outcome recorded for a shipment
type ShipmentStatus string

const (
	StatusDelivered ShipmentStatus = "Delivered"
	StatusInTransit ShipmentStatus = "In Transit"
	StatusMissing   ShipmentStatus = "Missing"
	StatusDamaged   ShipmentStatus = "Damaged"
)

// IncidentStatuses are the statuses counted as incidents on the dashboard
var IncidentStatuses = []ShipmentStatus{StatusMissing, StatusDamaged}

// IsIncident reports whether the status counts as an incident
func (s ShipmentStatus) IsIncident() bool {
	return s == StatusMissing || s == StatusDamaged
}

// Shipment is a single shipment record loaded from shipments.csv.
// DeliveryDate and the destination coordinates are derived after load and are
// never read from the file.
type Shipment struct {
	ShipmentID   string         `csv:"shipment_id" json:"shipment_id"`
	DriverID     string         `csv:"driver_id" json:"driver_id"`
	VehicleID    string         `csv:"vehicle_id" json:"vehicle_id"`
	RouteID      string         `csv:"route_id" json:"route_id"`
	Origin       string         `csv:"origin" json:"origin,omitempty"`
	Destination  string         `csv:"destination" json:"destination"`
	Status       ShipmentStatus `csv:"status" json:"status"`
	PickupTime   Timestamp      `csv:"pickup_time" json:"pickup_time"`
	DeliveryTime Timestamp      `csv:"delivery_time" json:"delivery_time"`

	DeliveryDate string      `csv:"-" json:"delivery_date,omitempty"`
	DestCoord    *Coordinate `csv:"-" json:"dest_coord,omitempty"`
}

// Driver is a reference record from drivers.csv
type Driver struct {
	DriverID string `csv:"driver_id" json:"driver_id"`
	Name     string `csv:"name" json:"name"`
	Phone    string `csv:"phone" json:"phone,omitempty"`
}

// Vehicle is a reference record from vehicles.csv
type Vehicle struct {
	VehicleID string `csv:"vehicle_id" json:"vehicle_id"`
	Plate     string `csv:"plate" json:"plate,omitempty"`
	Model     string `csv:"model" json:"model,omitempty"`
}

// Route is a reference record from routes.csv
type Route struct {
	RouteID     string `csv:"route_id" json:"route_id"`
	Origin      string `csv:"origin" json:"origin,omitempty"`
	Destination string `csv:"destination" json:"destination,omitempty"`
}

// Coordinate is a geographic point
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
