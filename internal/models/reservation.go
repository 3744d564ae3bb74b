package models

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusCompleted ReservationStatus = "Completed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// Reservation links a client to a vehicle over a date range. The end date is
// never earlier than the start date; validation guards that before any write.
// Client and vehicle identifiers are checked for positivity only — row
// existence is left to the store's declared foreign keys.
type Reservation struct {
	ID          int64             `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID    int64             `json:"client_id" gorm:"index;not null"`
	VehicleID   int64             `json:"vehicle_id" gorm:"index;not null"`
	StartDate   string            `json:"start_date" gorm:"size:10;not null"`
	EndDate     string            `json:"end_date" gorm:"size:10;not null"`
	Status      ReservationStatus `json:"status" gorm:"size:16;not null;default:Pending"`
	TotalAmount float64           `json:"total_amount" gorm:"not null;default:0"`
}

// Active reservations are the ones the dashboard counts.
func (s ReservationStatus) Active() bool {
	return s == ReservationStatusConfirmed || s == ReservationStatusPending
}
