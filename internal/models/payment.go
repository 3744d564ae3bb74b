package models

// Payment records money received for a reservation. Amount is strictly
// positive; the payment date is a calendar-date string (YYYY-MM-DD).
type Payment struct {
	ID              int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ReservationID   int64   `json:"reservation_id" gorm:"index;not null"`
	PaymentMethodID int64   `json:"payment_method_id" gorm:"index;not null"`
	Amount          float64 `json:"amount" gorm:"not null"`
	PaymentDate     string  `json:"payment_date" gorm:"size:10;not null"`
}
