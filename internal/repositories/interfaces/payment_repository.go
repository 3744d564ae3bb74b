package interfaces

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
)

type PaymentRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, payment *models.Payment) error
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
	Delete(ctx context.Context, id int64) error

	// Listing, most recent payment date first
	List(ctx context.Context) ([]*models.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*models.Payment, error)

	// Analytics
	SumAmounts(ctx context.Context) (float64, error)
}
