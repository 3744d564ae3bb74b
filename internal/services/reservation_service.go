package services

import (
	"context"
	"errors"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

type ReservationService interface {
	Create(ctx context.Context, input *validators.ReservationInput) (*models.Reservation, error)
	Update(ctx context.Context, id int64, input *validators.ReservationInput) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []*models.Reservation
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
}

type reservationService struct {
	reservationRepo interfaces.ReservationRepository
	logger          *logger.Logger
}

func NewReservationService(reservationRepo interfaces.ReservationRepository, log *logger.Logger) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		logger:          log,
	}
}

func (s *reservationService) Create(ctx context.Context, input *validators.ReservationInput) (*models.Reservation, error) {
	input.Normalize()
	if errs := validators.ValidateReservationInput(input); len(errs) > 0 {
		s.logger.WithField("reason", errs.Error()).Warn("reservation validation failed on create")
		return nil, errs
	}

	// Client and vehicle ids are only checked for positivity; row existence
	// is left to the store's declared foreign keys.
	reservation := s.buildReservation(input)
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		s.logger.WithError(err).Error("failed to create reservation")
		return nil, err
	}

	s.logger.WithField("reservation_id", reservation.ID).
		WithField("client_id", reservation.ClientID).
		WithField("vehicle_id", reservation.VehicleID).
		Info("reservation created")
	return reservation, nil
}

func (s *reservationService) Update(ctx context.Context, id int64, input *validators.ReservationInput) (*models.Reservation, error) {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return nil, errs
	}

	input.Normalize()
	if errs := validators.ValidateReservationInput(input); len(errs) > 0 {
		s.logger.WithField("reservation_id", id).WithField("reason", errs.Error()).Warn("reservation validation failed on update")
		return nil, errs
	}

	reservation := s.buildReservation(input)
	reservation.ID = id
	if err := s.reservationRepo.Update(ctx, reservation); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("reservation_id", id).Warn("reservation not found on update")
			return nil, err
		}
		s.logger.WithError(err).WithField("reservation_id", id).Error("failed to update reservation")
		return nil, err
	}

	s.logger.WithField("reservation_id", id).Info("reservation updated")
	return reservation, nil
}

func (s *reservationService) Delete(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("reservation_id", id).Warn("reservation not found on delete")
			return err
		}
		s.logger.WithError(err).WithField("reservation_id", id).Error("failed to delete reservation")
		return err
	}

	s.logger.WithField("reservation_id", id).Info("reservation deleted")
	return nil
}

func (s *reservationService) List(ctx context.Context) []*models.Reservation {
	reservations, err := s.reservationRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list reservations")
		return []*models.Reservation{}
	}
	return reservations
}

func (s *reservationService) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).WithField("reservation_id", id).Error("failed to get reservation")
		}
		return nil, ErrNotFound
	}
	return reservation, nil
}

func (s *reservationService) buildReservation(input *validators.ReservationInput) *models.Reservation {
	return &models.Reservation{
		ClientID:    input.ClientID,
		VehicleID:   input.VehicleID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.ReservationStatus(input.Status),
		TotalAmount: input.TotalAmount,
	}
}
