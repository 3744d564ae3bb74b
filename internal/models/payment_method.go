package models

// PaymentMethod is a way of paying (cash, card, transfer...). Names are
// unique among methods, compared case-insensitively by the service layer.
type PaymentMethod struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;not null"`
}
