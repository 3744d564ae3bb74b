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

type ClientService interface {
	Create(ctx context.Context, input *validators.ClientInput) (*models.Client, error)
	Update(ctx context.Context, id int64, input *validators.ClientInput) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) []*models.Client
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	GetByEmail(ctx context.Context, email string) (*models.Client, error)
}

type clientService struct {
	clientRepo interfaces.ClientRepository
	logger     *logger.Logger
}

func NewClientService(clientRepo interfaces.ClientRepository, log *logger.Logger) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		logger:     log,
	}
}

func (s *clientService) Create(ctx context.Context, input *validators.ClientInput) (*models.Client, error) {
	input.Normalize()
	if errs := validators.ValidateClientInput(input); len(errs) > 0 {
		s.logger.WithField("reason", errs.Error()).Warn("client validation failed on create")
		return nil, errs
	}

	// Uniqueness guard: check-then-act, no locking. The single-user desktop
	// deployment is the only thing keeping this race-free.
	if err := s.checkEmailUnique(ctx, input.Email, 0); err != nil {
		return nil, err
	}

	client := &models.Client{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		TaxID: input.TaxID,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		s.logger.WithError(err).Error("failed to create client")
		return nil, err
	}

	s.logger.WithField("client_id", client.ID).Info("client created")
	return client, nil
}

func (s *clientService) Update(ctx context.Context, id int64, input *validators.ClientInput) (*models.Client, error) {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return nil, errs
	}

	input.Normalize()
	if errs := validators.ValidateClientInput(input); len(errs) > 0 {
		s.logger.WithField("client_id", id).WithField("reason", errs.Error()).Warn("client validation failed on update")
		return nil, errs
	}

	// A match on the client's own row is not a conflict.
	if err := s.checkEmailUnique(ctx, input.Email, id); err != nil {
		return nil, err
	}

	client := &models.Client{
		ID:    id,
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		TaxID: input.TaxID,
	}
	if err := s.clientRepo.Update(ctx, client); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("client_id", id).Warn("client not found on update")
			return nil, err
		}
		s.logger.WithError(err).WithField("client_id", id).Error("failed to update client")
		return nil, err
	}

	s.logger.WithField("client_id", id).Info("client updated")
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id int64) error {
	if errs := validators.ValidateIdentifier("id", id); errs != nil {
		return errs
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.WithField("client_id", id).Warn("client not found on delete")
			return err
		}
		s.logger.WithError(err).WithField("client_id", id).Error("failed to delete client")
		return err
	}

	s.logger.WithField("client_id", id).Info("client deleted")
	return nil
}

// List never fails: a store error is logged and an empty slice returned.
func (s *clientService) List(ctx context.Context) []*models.Client {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to list clients")
		return []*models.Client{}
	}
	return clients
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).WithField("client_id", id).Error("failed to get client")
		}
		return nil, ErrNotFound
	}
	return client, nil
}

func (s *clientService) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrNotFound
	}
	client, err := s.clientRepo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.WithError(err).Error("failed to get client by email")
		}
		return nil, ErrNotFound
	}
	return client, nil
}

// checkEmailUnique fails with a ConflictError when another client already
// holds the email. selfID excludes the record being updated.
func (s *clientService) checkEmailUnique(ctx context.Context, email string, selfID int64) error {
	existing, err := s.clientRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		s.logger.WithError(err).Error("failed to check client email uniqueness")
		return err
	}
	if existing.ID != selfID {
		s.logger.WithField("email", email).Warn("client email already registered")
		return &ConflictError{Message: "a client with this email already exists"}
	}
	return nil
}
