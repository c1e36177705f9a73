package charts

import (
	"time"

	"gorm.io/gorm"

	"fleet_rental/internal/models"
)

// GormSource feeds the aggregators from the application database.
type GormSource struct {
	DB *gorm.DB
}

// Rentals returns rentals whose span intersects [from, to]. Open-ended
// rentals (no end date yet) always qualify once started.
func (s GormSource) Rentals(from, to time.Time) ([]RentalRecord, error) {
	var rentals []models.Rental
	err := s.DB.
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", to, from).
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}

	records := make([]RentalRecord, 0, len(rentals))
	for _, r := range rentals {
		records = append(records, RentalRecord{
			VehicleID:      r.VehicleID,
			VehicleClassID: r.VehicleClassID,
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
		})
	}
	return records, nil
}

func (s GormSource) Vehicles() ([]VehicleRecord, error) {
	var vehicles []models.Vehicle
	if err := s.DB.Find(&vehicles).Error; err != nil {
		return nil, err
	}

	records := make([]VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		records = append(records, VehicleRecord{
			ID:              v.ID,
			VehicleClassID:  v.VehicleClassID,
			VehicleStatusID: v.VehicleStatusID,
			RegisteredAt:    v.RegisteredAt,
			RetiredAt:       v.RetiredAt,
		})
	}
	return records, nil
}

func (s GormSource) Classes() ([]ClassRecord, error) {
	var classes []models.VehicleClass
	if err := s.DB.Order("id ASC").Find(&classes).Error; err != nil {
		return nil, err
	}

	records := make([]ClassRecord, 0, len(classes))
	for _, c := range classes {
		records = append(records, ClassRecord{
			ID:      c.ID,
			Name:    c.Name,
			KeyName: c.KeyName,
			Color:   c.Color,
		})
	}
	return records, nil
}

func (s GormSource) Statuses() ([]StatusRecord, error) {
	var statuses []models.VehicleStatus
	if err := s.DB.Find(&statuses).Error; err != nil {
		return nil, err
	}

	records := make([]StatusRecord, 0, len(statuses))
	for _, st := range statuses {
		records = append(records, StatusRecord{ID: st.ID, Available: st.Available})
	}
	return records, nil
}
