package interfaces

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
)

type ReservationRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, reservation *models.Reservation) error
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	Update(ctx context.Context, reservation *models.Reservation) error
	Delete(ctx context.Context, id int64) error

	// Listing, most recent start date first
	List(ctx context.Context) ([]*models.Reservation, error)

	// Analytics
	CountByStatuses(ctx context.Context, statuses ...models.ReservationStatus) (int64, error)
	CountByMonth(ctx context.Context) ([]*MonthlyCount, error)
}

// MonthlyCount is one row of the reservations-per-month aggregate,
// keyed by "YYYY-MM".
type MonthlyCount struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}
