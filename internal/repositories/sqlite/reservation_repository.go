package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"

	"gorm.io/gorm"
)

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) interfaces.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &reservation, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *models.Reservation) error {
	result := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("id = ?", reservation.ID).
		Updates(map[string]interface{}{
			"client_id":    reservation.ClientID,
			"vehicle_id":   reservation.VehicleID,
			"start_date":   reservation.StartDate,
			"end_date":     reservation.EndDate,
			"status":       reservation.Status,
			"total_amount": reservation.TotalAmount,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return interfaces.ErrNotFound
	}
	return nil
}

func (r *reservationRepository) List(ctx context.Context) ([]*models.Reservation, error) {
	var reservations []*models.Reservation
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (r *reservationRepository) CountByStatuses(ctx context.Context, statuses ...models.ReservationStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Where("status IN ?", statuses).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations by status: %w", err)
	}
	return total, nil
}

func (r *reservationRepository) CountByMonth(ctx context.Context) ([]*interfaces.MonthlyCount, error) {
	var counts []*interfaces.MonthlyCount
	err := r.db.WithContext(ctx).Model(&models.Reservation{}).
		Select("strftime('%Y-%m', start_date) AS month, COUNT(*) AS total").
		Group("month").
		Order("month").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations by month: %w", err)
	}
	return counts, nil
}
