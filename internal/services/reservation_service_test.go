package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

func validReservationInput() *validators.ReservationInput {
	return &validators.ReservationInput{
		ClientID:    1,
		VehicleID:   1,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-05",
		Status:      "Confirmed",
		TotalAmount: 1000,
	}
}

func TestReservationServiceCreate(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())

	reservation, err := svc.Create(context.Background(), validReservationInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), reservation.ID)
	assert.Equal(t, models.ReservationStatusConfirmed, reservation.Status)
}

func TestReservationServiceRejectsInvertedPeriod(t *testing.T) {
	repo := newFakeReservationRepo()
	svc := NewReservationService(repo, logger.NewNop())

	input := validReservationInput()
	input.StartDate = "2026-09-05"
	input.EndDate = "2026-09-01"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end date is earlier than start date", verrs[0].Message)
	assert.Equal(t, 0, repo.createCalls, "invalid period must not reach the store")
}

func TestReservationServiceSingleDayPeriodAllowed(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())

	input := validReservationInput()
	input.StartDate = "2026-09-01"
	input.EndDate = "2026-09-01"

	_, err := svc.Create(context.Background(), input)
	assert.NoError(t, err)
}

func TestReservationServiceRejectsBadInput(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())

	tests := []struct {
		name   string
		mutate func(*validators.ReservationInput)
	}{
		{"zero client id", func(in *validators.ReservationInput) { in.ClientID = 0 }},
		{"negative vehicle id", func(in *validators.ReservationInput) { in.VehicleID = -3 }},
		{"malformed start date", func(in *validators.ReservationInput) { in.StartDate = "01/09/2026" }},
		{"unknown status", func(in *validators.ReservationInput) { in.Status = "Booked" }},
		{"negative total", func(in *validators.ReservationInput) { in.TotalAmount = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validReservationInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)
			var verrs validators.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}

func TestReservationServiceUpdate(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validReservationInput())
	require.NoError(t, err)

	update := validReservationInput()
	update.Status = "Completed"
	updated, err := svc.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationStatusCompleted, updated.Status)

	_, err = svc.Update(ctx, 999, validReservationInput())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReservationServiceListOrder(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())
	ctx := context.Background()

	early := validReservationInput()
	early.StartDate = "2026-01-01"
	early.EndDate = "2026-01-03"
	_, err := svc.Create(ctx, early)
	require.NoError(t, err)

	late := validReservationInput()
	late.StartDate = "2026-12-01"
	late.EndDate = "2026-12-03"
	_, err = svc.Create(ctx, late)
	require.NoError(t, err)

	list := svc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "2026-12-01", list[0].StartDate, "newest start date first")
}

func TestReservationServiceDelete(t *testing.T) {
	svc := NewReservationService(newFakeReservationRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validReservationInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.True(t, errors.Is(svc.Delete(ctx, created.ID), ErrNotFound))
}
