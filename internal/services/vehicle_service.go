package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

type VehicleService interface {
	Create(ctx context.Context, input *validators.VehicleInput) (*models.Vehicle, error)
	Update(ctx context.Context, id int64, input *validators.VehicleInput) (*models.Vehicle, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []*models.Vehicle
	GetByID(ctx context.Context, id int64) (*models.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)

	// MarkMaintenance flips the vehicle status to "maintenance". There is no
	// automatic transition back; the operator edits the vehicle to release it.
	MarkMaintenance(ctx context.Context, id int64) error

	// ListDueForMaintenance returns vehicles whose next service or inspection
	// falls on or before the given date (today when empty).
	ListDueForMaintenance(ctx context.Context, onOrBefore string) []*models.Vehicle

	UpdateImage(ctx context.Context, id int64, image string) error
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, log *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		logger:      log,
	}
}

func (s *vehicleService) Create(ctx context.Context, input *validators.VehicleInput) (*models.Vehicle, error) {
	input.Normalize()
	if input.Status == "" {
		input.Status = string(models.VehicleStatusAvailable)
	}
	if errs := validators.ValidateVehicleInput(input); len(errs) > 0 {
		s.logger.WithField("reason", errs.Error()).Warn("vehicle validation failed on create")
		return nil, errs
	}

	vehicle := s.buildVehicle(input)
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		// Plate uniqueness lives in the store; a duplicate surfaces here.
		if errors.Is(err, interfaces.ErrDuplicate) {
			s.logger.WithField("plate", input.Plate).Warn("vehicle plate already registered")
			return nil, &ConflictError{Message: "a vehicle with this plate already exists"}
		}
		s.logger.WithError(err).Error("failed to create vehicle")
		return nil, err
	}

	s.logger.WithField("vehicle_id", vehicle.ID).Info("vehicle created")
	return vehicle, nil
}

func (s *vehicleService) Update(ctx context.Context, id int64, input *validators.VehicleInput) (*models.Vehicle, error) {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return nil, errs
	}

	input.Normalize()
	if input.Status == "" {
		// An omitted status keeps the stored one; defaulting here would
		// silently release a rented or in-maintenance vehicle.
		current, err := s.vehicleRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				s.logger.WithField("vehicle_id", id).Warn("vehicle not found on update")
				return nil, ErrNotFound
			}
			s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to get vehicle")
			return nil, err
		}
		input.Status = string(current.Status)
	}
	if errs := validators.ValidateVehicleInput(input); len(errs) > 0 {
		s.logger.WithField("vehicle_id", id).WithField("reason", errs.Error()).Warn("vehicle validation failed on update")
		return nil, errs
	}

	vehicle := s.buildVehicle(input)
	vehicle.ID = id
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, interfaces.ErrDuplicate) {
			s.logger.WithField("plate", input.Plate).Warn("vehicle plate already registered")
			return nil, &ConflictError{Message: "a vehicle with this plate already exists"}
		}
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("vehicle_id", id).Warn("vehicle not found on update")
			return nil, err
		}
		s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to update vehicle")
		return nil, err
	}

	s.logger.WithField("vehicle_id", id).Info("vehicle updated")
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("vehicle_id", id).Warn("vehicle not found on delete")
			return err
		}
		s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to delete vehicle")
		return err
	}

	s.logger.WithField("vehicle_id", id).Info("vehicle deleted")
	return nil
}

func (s *vehicleService) List(ctx context.Context) []*models.Vehicle {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list vehicles")
		return []*models.Vehicle{}
	}
	return vehicles
}

func (s *vehicleService) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to get vehicle")
		}
		return nil, ErrNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return nil, ErrNotFound
	}
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).Error("failed to get vehicle by plate")
		}
		return nil, ErrNotFound
	}
	return vehicle, nil
}

func (s *vehicleService) MarkMaintenance(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, id, models.VehicleStatusMaintenance); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("vehicle_id", id).Warn("vehicle not found on maintenance mark")
			return err
		}
		s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to mark vehicle for maintenance")
		return err
	}

	s.logger.WithField("vehicle_id", id).Info("vehicle marked as in maintenance")
	return nil
}

func (s *vehicleService) ListDueForMaintenance(ctx context.Context, onOrBefore string) []*models.Vehicle {
	if onOrBefore == "" {
		onOrBefore = time.Now().Format(validators.DateFormat)
	}
	if !validators.ValidDate(onOrBefore) {
		s.logger.WithField("date", onOrBefore).Warn("invalid cutoff date for maintenance listing")
		return []*models.Vehicle{}
	}

	vehicles, err := s.vehicleRepo.ListDueForMaintenance(ctx, onOrBefore)
	if err != nil {
		s.logger.WithError(err).Error("failed to list vehicles due for maintenance")
		return []*models.Vehicle{}
	}
	return vehicles
}

func (s *vehicleService) UpdateImage(ctx context.Context, id int64, image string) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.vehicleRepo.UpdateImage(ctx, id, image); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		s.logger.WithError(err).WithField("vehicle_id", id).Error("failed to update vehicle image")
		return err
	}
	return nil
}

func (s *vehicleService) buildVehicle(input *validators.VehicleInput) *models.Vehicle {
	return &models.Vehicle{
		Brand:          input.Brand,
		Model:          input.Model,
		Plate:          input.Plate,
		Year:           input.Year,
		Odometer:       input.Odometer,
		LastService:    input.LastService,
		NextService:    input.NextService,
		Category:       input.Category,
		Transmission:   input.Transmission,
		Type:           input.Type,
		Seats:          input.Seats,
		Image:          input.Image,
		DailyRate:      input.DailyRate,
		LastInspection: input.LastInspection,
		NextInspection: input.NextInspection,
		Status:         models.VehicleStatus(input.Status),
	}
}
