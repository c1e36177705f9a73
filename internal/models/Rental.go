package models

import (
	"time"

	"gorm.io/gorm"
)

// Rental spans [StartDate, EndDate]; EndDate stays nil while the vehicle is out.
// VehicleClassID is denormalized from the vehicle at booking time so the chart
// aggregation never needs a join.
type Rental struct {
	gorm.Model
	VehicleID      uint       `json:"vehicle_id" gorm:"index"`
	VehicleClassID uint       `json:"vehicle_class_id" gorm:"index"`
	CustomerID     uint       `json:"customer_id" gorm:"index"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Status         string     `json:"status"` // "open", "closed", "cancelled"

	Vehicle  Vehicle  `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}
