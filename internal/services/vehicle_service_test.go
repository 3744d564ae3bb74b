package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

func validVehicleInput() *validators.VehicleInput {
	return &validators.VehicleInput{
		Brand:          "Tesla",
		Model:          "Model S",
		Plate:          "AA-01-BB",
		Year:           2022,
		Odometer:       12000,
		LastService:    "2026-01-10",
		NextService:    "2026-07-10",
		Category:       "Luxury",
		Transmission:   "Automatic",
		Type:           "Sedan",
		Seats:          5,
		Image:          "tesla.png",
		DailyRate:      250,
		LastInspection: "2026-02-01",
		NextInspection: "2027-02-01",
		Status:         "available",
	}
}

func TestVehicleServiceCreate(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())

	vehicle, err := svc.Create(context.Background(), validVehicleInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), vehicle.ID)
	assert.Equal(t, models.VehicleStatusAvailable, vehicle.Status)
}

func TestVehicleServiceCreateDefaultsStatus(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())

	input := validVehicleInput()
	input.Status = ""

	vehicle, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, vehicle.Status)
}

func TestVehicleServiceCreateRejectsBadInput(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())

	tests := []struct {
		name   string
		mutate func(*validators.VehicleInput)
	}{
		{"missing brand", func(in *validators.VehicleInput) { in.Brand = "" }},
		{"ancient year", func(in *validators.VehicleInput) { in.Year = 1850 }},
		{"zero seats", func(in *validators.VehicleInput) { in.Seats = 0 }},
		{"bad service date", func(in *validators.VehicleInput) { in.NextService = "10/07/2026" }},
		{"unknown status", func(in *validators.VehicleInput) { in.Status = "parked" }},
		{"negative rate", func(in *validators.VehicleInput) { in.DailyRate = -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validVehicleInput()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)
			var verrs validators.ValidationErrors
			require.ErrorAs(t, err, &verrs)
		})
	}
}

func TestVehicleServiceDuplicatePlate(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)

	dup := validVehicleInput()
	dup.Model = "Model X"
	_, err = svc.Create(ctx, dup)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestVehicleServiceUpdatePlateCollision(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	_, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)

	second := validVehicleInput()
	second.Plate = "CC-02-DD"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	steal := validVehicleInput()
	_, err = svc.Update(ctx, other.ID, steal)
	require.Error(t, err)
	assert.True(t, IsConflict(err))
}

func TestVehicleServiceUpdateKeepsStatusWhenOmitted(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)
	require.NoError(t, svc.MarkMaintenance(ctx, created.ID))

	edit := validVehicleInput()
	edit.Status = ""
	edit.Odometer = 15000

	updated, err := svc.Update(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusMaintenance, updated.Status, "an edit without a status must not release the vehicle")
	assert.Equal(t, 15000, updated.Odometer)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusMaintenance, got.Status)

	edit.Status = "available"
	updated, err = svc.Update(ctx, created.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusAvailable, updated.Status, "an explicit status still wins")
}

func TestVehicleServiceGetByPlate(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)

	got, err := svc.GetByPlate(ctx, "AA-01-BB")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	got, err = svc.GetByPlate(ctx, "  AA-01-BB  ")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetByPlate(ctx, "ZZ-99-ZZ")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = svc.GetByPlate(ctx, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVehicleServiceMarkMaintenance(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)

	require.NoError(t, svc.MarkMaintenance(ctx, created.ID))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleStatusMaintenance, got.Status)

	err = svc.MarkMaintenance(ctx, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestVehicleServiceListDueForMaintenance(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	overdue := validVehicleInput()
	overdue.NextService = "2026-03-01"
	_, err := svc.Create(ctx, overdue)
	require.NoError(t, err)

	fine := validVehicleInput()
	fine.Plate = "CC-02-DD"
	fine.NextService = "2099-01-01"
	fine.NextInspection = "2099-01-01"
	_, err = svc.Create(ctx, fine)
	require.NoError(t, err)

	due := svc.ListDueForMaintenance(ctx, "2026-06-01")
	require.Len(t, due, 1)
	assert.Equal(t, "AA-01-BB", due[0].Plate)
}

func TestVehicleServiceListDueForMaintenanceDefaultsToToday(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	overdue := validVehicleInput()
	overdue.NextService = "2000-01-01"
	_, err := svc.Create(ctx, overdue)
	require.NoError(t, err)

	due := svc.ListDueForMaintenance(ctx, "")
	require.Len(t, due, 1)

	// Sanity: the implicit cutoff is today's date.
	assert.True(t, "2000-01-01" <= time.Now().Format(validators.DateFormat))
}

func TestVehicleServiceListDueRejectsBadCutoff(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())

	due := svc.ListDueForMaintenance(context.Background(), "01-01-2026")
	assert.Empty(t, due)
}

func TestVehicleServiceUpdateImage(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), logger.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, validVehicleInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateImage(ctx, created.ID, "http://localhost/uploads/vehicles/1/abc.png"))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/uploads/vehicles/1/abc.png", got.Image)

	err = svc.UpdateImage(ctx, 999, "x.png")
	assert.True(t, errors.Is(err, ErrNotFound))
}
