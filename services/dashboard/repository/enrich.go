package repository

import (
	"sort"

	"github.com/fleetops/shipsight/internal/pkg/geo"
	"github.com/fleetops/shipsight/internal/pkg/logger"
)

// enrichShipments derives delivery_date and the destination coordinates for
// every shipment, and records the distinct destinations absent from the
// coordinate lookup. Shipments with an unmapped destination keep nil
// coordinates and are excluded from the map downstream.
func (r *DatasetRepo) enrichShipments() {
	unmappedSet := make(map[string]struct{})

	for i := range r.shipments {
		s := &r.shipments[i]

		if s.DeliveryDate == "" {
			s.DeliveryDate = s.DeliveryTime.DateString()
		}

		if coord, ok := geo.CityCoordinate(s.Destination); ok {
			c := coord
			s.DestCoord = &c
		} else if s.Destination != "" {
			unmappedSet[s.Destination] = struct{}{}
		}
	}

	for dest := range unmappedSet {
		r.unmapped = append(r.unmapped, dest)
	}
	sort.Strings(r.unmapped)

	if len(r.unmapped) > 0 {
		logger.Warn("Destinations missing from coordinate lookup, excluded from map",
			logger.Strings("destinations", r.unmapped),
		)
	}
}
