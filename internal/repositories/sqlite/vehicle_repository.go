package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) interfaces.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	err := r.db.WithContext(ctx).Create(vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]interface{}{
			"brand":           vehicle.Brand,
			"model":           vehicle.Model,
			"plate":           vehicle.Plate,
			"year":            vehicle.Year,
			"odometer":        vehicle.Odometer,
			"last_service":    vehicle.LastService,
			"next_service":    vehicle.NextService,
			"category":        vehicle.Category,
			"transmission":    vehicle.Transmission,
			"type":            vehicle.Type,
			"seats":           vehicle.Seats,
			"image":           vehicle.Image,
			"daily_rate":      vehicle.DailyRate,
			"last_inspection": vehicle.LastInspection,
			"next_inspection": vehicle.NextInspection,
			"status":          vehicle.Status,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return interfaces.ErrDuplicate
		}
		return fmt.Errorf("failed to update vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle by plate: %w", err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int64, status models.VehicleStatus) error {
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

// ListDueForMaintenance returns vehicles whose next service or inspection
// date falls on or before the given date.
func (r *vehicleRepository) ListDueForMaintenance(ctx context.Context, onOrBefore string) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := r.db.WithContext(ctx).
		Where("next_service <= ? OR next_inspection <= ?", onOrBefore, onOrBefore).
		Order("next_service").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles due for maintenance: %w", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) UpdateImage(ctx context.Context, id int64, image string) error {
	result := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("id = ?", id).
		Update("image", image)
	if result.Error != nil {
		return fmt.Errorf("failed to update vehicle image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Vehicle{}).
		Where("status = ?", status).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles by status: %w", err)
	}
	return total, nil
}
