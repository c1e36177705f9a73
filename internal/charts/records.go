// Package charts holds the dashboard aggregation core: the historical
// fleet/rental series and the point-in-time stock snapshot. The aggregators
// are pure functions over plain record slices so they can be tested without a
// database; Source is the seam the HTTP layer feeds them through.
package charts

import "time"

// RentalRecord is the slice of a rental the aggregators care about.
// A nil EndDate means the vehicle is still out.
type RentalRecord struct {
	VehicleID      uint
	VehicleClassID uint
	StartDate      time.Time
	EndDate        *time.Time
}

// VehicleRecord is the fleet-membership view of a vehicle.
type VehicleRecord struct {
	ID              uint
	VehicleClassID  uint
	VehicleStatusID uint
	RegisteredAt    time.Time
	RetiredAt       *time.Time
}

// ClassRecord mirrors models.VehicleClass; KeyName doubles as the series key
// in chart payloads and Color as the fill.
type ClassRecord struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	KeyName string `json:"key_name"`
	Color   string `json:"color"`
}

// StatusRecord carries the availability predicate for a vehicle status row.
type StatusRecord struct {
	ID        uint
	Available bool
}

// Source yields the raw record collections an aggregation run consumes.
type Source interface {
	Rentals(from, to time.Time) ([]RentalRecord, error)
	Vehicles() ([]VehicleRecord, error)
	Classes() ([]ClassRecord, error)
	Statuses() ([]StatusRecord, error)
}
