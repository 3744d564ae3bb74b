package interfaces

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
)

type PaymentMethodRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, method *models.PaymentMethod) error
	GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error)
	Update(ctx context.Context, method *models.PaymentMethod) error
	Delete(ctx context.Context, id int64) error

	// Listing, ascending by identifier. The name-uniqueness guard scans this.
	List(ctx context.Context) ([]*models.PaymentMethod, error)
}
