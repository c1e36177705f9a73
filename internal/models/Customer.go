// internal/models/Customer.go
package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" gorm:"index"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`

	Rentals []Rental `gorm:"foreignKey:CustomerID" json:"rentals,omitempty"`
}
