package services

import (
	"context"
	"errors"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

type PaymentService interface {
	Create(ctx context.Context, input *validators.PaymentInput) (*models.Payment, error)
	Update(ctx context.Context, id int64, input *validators.PaymentInput) (*models.Payment, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []*models.Payment
	GetByID(ctx context.Context, id int64) (*models.Payment, error)
	ListByReservation(ctx context.Context, reservationID int64) []*models.Payment
}

type paymentService struct {
	paymentRepo interfaces.PaymentRepository
	logger      *logger.Logger
}

func NewPaymentService(paymentRepo interfaces.PaymentRepository, log *logger.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		logger:      log,
	}
}

func (s *paymentService) Create(ctx context.Context, input *validators.PaymentInput) (*models.Payment, error) {
	if errs := validators.ValidatePaymentInput(input); len(errs) > 0 {
		s.logger.WithField("reason", errs.Error()).Warn("payment validation failed on create")
		return nil, errs
	}

	payment := &models.Payment{
		ReservationID:   input.ReservationID,
		PaymentMethodID: input.PaymentMethodID,
		Amount:          input.Amount,
		PaymentDate:     input.PaymentDate,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		s.logger.WithError(err).Error("failed to create payment")
		return nil, err
	}

	s.logger.WithField("payment_id", payment.ID).
		WithField("reservation_id", payment.ReservationID).
		Info("payment created")
	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, id int64, input *validators.PaymentInput) (*models.Payment, error) {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return nil, errs
	}

	if errs := validators.ValidatePaymentInput(input); len(errs) > 0 {
		s.logger.WithField("payment_id", id).WithField("reason", errs.Error()).Warn("payment validation failed on update")
		return nil, errs
	}

	payment := &models.Payment{
		ID:              id,
		ReservationID:   input.ReservationID,
		PaymentMethodID: input.PaymentMethodID,
		Amount:          input.Amount,
		PaymentDate:     input.PaymentDate,
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("payment_id", id).Warn("payment not found on update")
			return nil, err
		}
		s.logger.WithError(err).WithField("payment_id", id).Error("failed to update payment")
		return nil, err
	}

	s.logger.WithField("payment_id", id).Info("payment updated")
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("payment_id", id).Warn("payment not found on delete")
			return err
		}
		s.logger.WithError(err).WithField("payment_id", id).Error("failed to delete payment")
		return err
	}

	s.logger.WithField("payment_id", id).Info("payment deleted")
	return nil
}

func (s *paymentService) List(ctx context.Context) []*models.Payment {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list payments")
		return []*models.Payment{}
	}
	return payments
}

func (s *paymentService) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).WithField("payment_id", id).Error("failed to get payment")
		}
		return nil, ErrNotFound
	}
	return payment, nil
}

func (s *paymentService) ListByReservation(ctx context.Context, reservationID int64) []*models.Payment {
	if reservationID <= 0 {
		return []*models.Payment{}
	}
	payments, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		s.logger.WithError(err).WithField("reservation_id", reservationID).Error("failed to list payments by reservation")
		return []*models.Payment{}
	}
	return payments
}
