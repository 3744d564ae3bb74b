package interfaces

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
)

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id int64) error

	// Listing, ascending by identifier
	List(ctx context.Context) ([]*models.Vehicle, error)

	// Vehicle identification
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)

	// Status operations
	UpdateStatus(ctx context.Context, id int64, status models.VehicleStatus) error

	// Maintenance
	ListDueForMaintenance(ctx context.Context, onOrBefore string) ([]*models.Vehicle, error)

	// Image reference
	UpdateImage(ctx context.Context, id int64, image string) error

	// Analytics
	CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
}
