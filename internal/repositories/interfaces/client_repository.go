package interfaces

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
)

type ClientRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, client *models.Client) error
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id int64) error

	// Listing, ascending by identifier
	List(ctx context.Context) ([]*models.Client, error)

	// Uniqueness guard support
	GetByEmail(ctx context.Context, email string) (*models.Client, error)

	// Analytics
	Count(ctx context.Context) (int64, error)
}
