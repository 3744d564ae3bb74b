package models

import (
	"time"
)

// Client is a rental customer. Email is unique among clients; the service
// layer enforces it with a pre-write lookup rather than a store constraint.
type Client struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string    `json:"name" gorm:"size:120;not null"`
	Email        string    `json:"email" gorm:"size:120;index"`
	Phone        string    `json:"phone" gorm:"size:32"`
	TaxID        string    `json:"tax_id" gorm:"size:16"`
	RegisteredAt time.Time `json:"registered_at" gorm:"autoCreateTime"`
}
