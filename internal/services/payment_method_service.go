package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

type PaymentMethodService interface {
	Create(ctx context.Context, input *validators.PaymentMethodInput) (*models.PaymentMethod, error)
	Update(ctx context.Context, id int64, input *validators.PaymentMethodInput) (*models.PaymentMethod, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []*models.PaymentMethod
	GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error)
}

type paymentMethodService struct {
	methodRepo interfaces.PaymentMethodRepository
	logger     *logger.Logger
}

func NewPaymentMethodService(methodRepo interfaces.PaymentMethodRepository, log *logger.Logger) PaymentMethodService {
	return &paymentMethodService{
		methodRepo: methodRepo,
		logger:     log,
	}
}

func (s *paymentMethodService) Create(ctx context.Context, input *validators.PaymentMethodInput) (*models.PaymentMethod, error) {
	input.Normalize()
	if errs := validators.ValidatePaymentMethodInput(input); len(errs) > 0 {
		s.logger.WithField("reason", errs.Error()).Warn("payment method validation failed on create")
		return nil, errs
	}

	if err := s.checkNameUnique(ctx, input.Name, 0); err != nil {
		return nil, err
	}

	method := &models.PaymentMethod{Name: input.Name}
	if err := s.methodRepo.Create(ctx, method); err != nil {
		s.logger.WithError(err).Error("failed to create payment method")
		return nil, err
	}

	s.logger.WithField("payment_method_id", method.ID).Info("payment method created")
	return method, nil
}

func (s *paymentMethodService) Update(ctx context.Context, id int64, input *validators.PaymentMethodInput) (*models.PaymentMethod, error) {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return nil, errs
	}

	input.Normalize()
	if errs := validators.ValidatePaymentMethodInput(input); len(errs) > 0 {
		s.logger.WithField("payment_method_id", id).WithField("reason", errs.Error()).Warn("payment method validation failed on update")
		return nil, errs
	}

	if err := s.checkNameUnique(ctx, input.Name, id); err != nil {
		return nil, err
	}

	method := &models.PaymentMethod{ID: id, Name: input.Name}
	if err := s.methodRepo.Update(ctx, method); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("payment_method_id", id).Warn("payment method not found on update")
			return nil, err
		}
		s.logger.WithError(err).WithField("payment_method_id", id).Error("failed to update payment method")
		return nil, err
	}

	s.logger.WithField("payment_method_id", id).Info("payment method updated")
	return method, nil
}

func (s *paymentMethodService) Delete(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.methodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("payment_method_id", id).Warn("payment method not found on delete")
			return err
		}
		s.logger.WithError(err).WithField("payment_method_id", id).Error("failed to delete payment method")
		return err
	}

	s.logger.WithField("payment_method_id", id).Info("payment method deleted")
	return nil
}

func (s *paymentMethodService) List(ctx context.Context) []*models.PaymentMethod {
	methods, err := s.methodRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list payment methods")
		return []*models.PaymentMethod{}
	}
	return methods
}

func (s *paymentMethodService) GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	method, err := s.methodRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).WithField("payment_method_id", id).Error("failed to get payment method")
		}
		return nil, ErrNotFound
	}
	return method, nil
}

// checkNameUnique compares case-insensitively: "MBWay" and "mbway" are the
// same method. The table is small enough to scan.
func (s *paymentMethodService) checkNameUnique(ctx context.Context, name string, selfID int64) error {
	methods, err := s.methodRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to check payment method name uniqueness")
		return err
	}
	for _, m := range methods {
		if m.ID != selfID && strings.EqualFold(m.Name, name) {
			s.logger.WithField("name", name).Warn("payment method name already registered")
			return &ConflictError{Message: "a payment method with this name already exists"}
		}
	}
	return nil
}
