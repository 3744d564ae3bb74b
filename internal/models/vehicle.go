package models

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusRented      VehicleStatus = "rented"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle is a fleet unit. The plate carries a store-level unique index;
// duplicate inserts surface as a duplicated-key error from the store.
// Service and inspection dates are calendar-date strings (YYYY-MM-DD),
// matching the wire format the frontend and CSV export consume.
type Vehicle struct {
	ID             int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Brand          string        `json:"brand" gorm:"size:64;not null"`
	Model          string        `json:"model" gorm:"size:64;not null"`
	Plate          string        `json:"plate" gorm:"uniqueIndex;size:32;not null"`
	Year           int           `json:"year" gorm:"not null"`
	Odometer       int           `json:"odometer" gorm:"not null;default:0"`
	LastService    string        `json:"last_service" gorm:"size:10"`
	NextService    string        `json:"next_service" gorm:"size:10"`
	Category       string        `json:"category" gorm:"size:32"`
	Transmission   string        `json:"transmission" gorm:"size:32"`
	Type           string        `json:"type" gorm:"size:32"`
	Seats          int           `json:"seats" gorm:"not null;default:1"`
	Image          string        `json:"image" gorm:"size:255"`
	DailyRate      float64       `json:"daily_rate" gorm:"not null;default:0"`
	LastInspection string        `json:"last_inspection" gorm:"size:10"`
	NextInspection string        `json:"next_inspection" gorm:"size:10"`
	Status         VehicleStatus `json:"status" gorm:"size:16;not null;default:available"`
}
