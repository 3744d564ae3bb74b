package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

func validClientInput() *validators.ClientInput {
	return &validators.ClientInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		Phone: "+351 912 345 678",
		TaxID: "123456789",
	}
}

func TestClientServiceCreate(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, logger.NewNop())

	client, err := svc.Create(context.Background(), validClientInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, "Maria Silva", client.Name)
	assert.Equal(t, 1, repo.createCalls)
}

func TestClientServiceCreateTrimsInput(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, logger.NewNop())

	input := validClientInput()
	input.Name = "  Maria Silva  "
	input.Email = " maria@example.com "

	client, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", client.Name)
	assert.Equal(t, "maria@example.com", client.Email)
}

func TestClientServiceCreateValidation(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, logger.NewNop())

	tests := []struct {
		name    string
		mutate  func(*validators.ClientInput)
		message string
	}{
		{
			name:    "short name",
			mutate:  func(in *validators.ClientInput) { in.Name = "Jo" },
			message: "use letters and spaces only, minimum 3 characters",
		},
		{
			name:    "name with digits",
			mutate:  func(in *validators.ClientInput) { in.Name = "Maria 2" },
			message: "use letters and spaces only, minimum 3 characters",
		},
		{
			name:    "bad email",
			mutate:  func(in *validators.ClientInput) { in.Email = "not-an-email" },
			message: "invalid email address",
		},
		{
			name:    "short tax id",
			mutate:  func(in *validators.ClientInput) { in.TaxID = "12345" },
			message: "tax id must be exactly 9 digits",
		},
		{
			name:    "bad phone",
			mutate:  func(in *validators.ClientInput) { in.Phone = "abc" },
			message: "invalid phone number: use digits and + - ( ), 6 to 20 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validClientInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)

			var verrs validators.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.message, verrs[0].Message)
		})
	}

	assert.Equal(t, 0, repo.createCalls, "invalid input must not reach the store")
}

func TestClientServiceCreateFirstFailureWins(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())

	// Name and email both invalid: the name message must come first.
	input := validClientInput()
	input.Name = "X"
	input.Email = "bad"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Name", verrs[0].Field)
}

func TestClientServiceDuplicateEmail(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	dup := validClientInput()
	dup.Name = "Outra Pessoa"
	dup.TaxID = "987654321"

	_, err = svc.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.Equal(t, 1, repo.createCalls, "conflicting create must leave the store untouched")
}

func TestClientServiceUpdateKeepsOwnEmail(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	// Same email on the same record is not a conflict.
	update := validClientInput()
	update.Name = "Maria Alves"

	updated, err := svc.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Maria Alves", updated.Name)
	assert.Equal(t, created.Email, updated.Email)
}

func TestClientServiceUpdateConflictsWithOtherEmail(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())
	ctx := context.Background()

	first, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	second := validClientInput()
	second.Email = "outra@example.com"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	steal := validClientInput()
	steal.Email = first.Email
	_, err = svc.Update(ctx, other.ID, steal)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestClientServiceDelete(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	assert.True(t, errors.Is(err, ErrNotFound), "second delete must miss")
}

func TestClientServiceDeleteRejectsBadID(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())

	err := svc.Delete(context.Background(), 0)
	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestClientServiceGetByID(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 42)
	assert.True(t, errors.Is(err, ErrNotFound))

	created, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)
}

func TestClientServiceGetByEmail(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validClientInput())
	require.NoError(t, err)

	got, err := svc.GetByEmail(ctx, "  maria@example.com ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByEmail(ctx, "missing@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.GetByEmail(ctx, "   ")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestClientServiceListDegrades(t *testing.T) {
	repo := newFakeClientRepo()
	repo.listErr = errors.New("disk on fire")
	svc := NewClientService(repo, logger.NewNop())

	clients := svc.List(context.Background())
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}
