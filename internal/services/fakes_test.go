package services

import (
	"context"
	"sort"
	"strings"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
)

// In-memory repositories mirroring the store contracts: ErrNotFound on
// misses and zero-row writes, ErrDuplicate on plate collisions, and the
// documented listing orders.

type fakeClientRepo struct {
	clients     map[int64]*models.Client
	nextID      int64
	createCalls int
	listErr     error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int64]*models.Client), nextID: 1}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *models.Client) error {
	r.createCalls++
	client.ID = r.nextID
	r.nextID++
	copied := *client
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *models.Client) error {
	if _, ok := r.clients[client.ID]; !ok {
		return interfaces.ErrNotFound
	}
	copied := *client
	copied.RegisteredAt = r.clients[client.ID].RegisteredAt
	r.clients[client.ID] = &copied
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.clients[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context) ([]*models.Client, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClientRepo) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeClientRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.clients)), nil
}

type fakeVehicleRepo struct {
	vehicles map[int64]*models.Vehicle
	nextID   int64
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[int64]*models.Vehicle), nextID: 1}
}

func (r *fakeVehicleRepo) plateTaken(plate string, selfID int64) bool {
	for _, v := range r.vehicles {
		if v.ID != selfID && v.Plate == plate {
			return true
		}
	}
	return false
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if r.plateTaken(vehicle.Plate, 0) {
		return interfaces.ErrDuplicate
	}
	vehicle.ID = r.nextID
	r.nextID++
	copied := *vehicle
	r.vehicles[vehicle.ID] = &copied
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	if _, ok := r.vehicles[vehicle.ID]; !ok {
		return interfaces.ErrNotFound
	}
	if r.plateTaken(vehicle.Plate, vehicle.ID) {
		return interfaces.ErrDuplicate
	}
	copied := *vehicle
	r.vehicles[vehicle.ID] = &copied
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.vehicles[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*models.Vehicle, error) {
	out := make([]*models.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		copied := *v
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeVehicleRepo) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.Plate == plate {
			copied := *v
			return &copied, nil
		}
	}
	return nil, interfaces.ErrNotFound
}

func (r *fakeVehicleRepo) UpdateStatus(ctx context.Context, id int64, status models.VehicleStatus) error {
	v, ok := r.vehicles[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	v.Status = status
	return nil
}

func (r *fakeVehicleRepo) ListDueForMaintenance(ctx context.Context, onOrBefore string) ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range r.vehicles {
		if (v.NextService != "" && v.NextService <= onOrBefore) ||
			(v.NextInspection != "" && v.NextInspection <= onOrBefore) {
			copied := *v
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeVehicleRepo) UpdateImage(ctx context.Context, id int64, image string) error {
	v, ok := r.vehicles[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	v.Image = image
	return nil
}

func (r *fakeVehicleRepo) CountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error) {
	var n int64
	for _, v := range r.vehicles {
		if v.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeReservationRepo struct {
	reservations map[int64]*models.Reservation
	nextID       int64
	createCalls  int
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[int64]*models.Reservation), nextID: 1}
}

func (r *fakeReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	r.createCalls++
	reservation.ID = r.nextID
	r.nextID++
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (r *fakeReservationRepo) Update(ctx context.Context, reservation *models.Reservation) error {
	if _, ok := r.reservations[reservation.ID]; !ok {
		return interfaces.ErrNotFound
	}
	copied := *reservation
	r.reservations[reservation.ID] = &copied
	return nil
}

func (r *fakeReservationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.reservations[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.reservations, id)
	return nil
}

func (r *fakeReservationRepo) List(ctx context.Context) ([]*models.Reservation, error) {
	out := make([]*models.Reservation, 0, len(r.reservations))
	for _, res := range r.reservations {
		copied := *res
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate > out[j].StartDate })
	return out, nil
}

func (r *fakeReservationRepo) CountByStatuses(ctx context.Context, statuses ...models.ReservationStatus) (int64, error) {
	var n int64
	for _, res := range r.reservations {
		for _, s := range statuses {
			if res.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeReservationRepo) CountByMonth(ctx context.Context) ([]*interfaces.MonthlyCount, error) {
	byMonth := make(map[string]int64)
	for _, res := range r.reservations {
		if len(res.StartDate) >= 7 {
			byMonth[res.StartDate[:7]]++
		}
	}
	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)
	out := make([]*interfaces.MonthlyCount, 0, len(months))
	for _, m := range months {
		out = append(out, &interfaces.MonthlyCount{Month: m, Total: byMonth[m]})
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments map[int64]*models.Payment
	nextID   int64
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[int64]*models.Payment), nextID: 1}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	payment.ID = r.nextID
	r.nextID++
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id int64) (*models.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return interfaces.ErrNotFound
	}
	copied := *payment
	r.payments[payment.ID] = &copied
	return nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.payments[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.payments, id)
	return nil
}

func (r *fakePaymentRepo) List(ctx context.Context) ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate > out[j].PaymentDate })
	return out, nil
}

func (r *fakePaymentRepo) ListByReservation(ctx context.Context, reservationID int64) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range r.payments {
		if p.ReservationID == reservationID {
			copied := *p
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate > out[j].PaymentDate })
	return out, nil
}

func (r *fakePaymentRepo) SumAmounts(ctx context.Context) (float64, error) {
	var sum float64
	for _, p := range r.payments {
		sum += p.Amount
	}
	return sum, nil
}

type fakeMethodRepo struct {
	methods map[int64]*models.PaymentMethod
	nextID  int64
}

func newFakeMethodRepo() *fakeMethodRepo {
	return &fakeMethodRepo{methods: make(map[int64]*models.PaymentMethod), nextID: 1}
}

func (r *fakeMethodRepo) Create(ctx context.Context, method *models.PaymentMethod) error {
	method.ID = r.nextID
	r.nextID++
	copied := *method
	r.methods[method.ID] = &copied
	return nil
}

func (r *fakeMethodRepo) GetByID(ctx context.Context, id int64) (*models.PaymentMethod, error) {
	m, ok := r.methods[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeMethodRepo) Update(ctx context.Context, method *models.PaymentMethod) error {
	if _, ok := r.methods[method.ID]; !ok {
		return interfaces.ErrNotFound
	}
	copied := *method
	r.methods[method.ID] = &copied
	return nil
}

func (r *fakeMethodRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.methods[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(r.methods, id)
	return nil
}

func (r *fakeMethodRepo) List(ctx context.Context) ([]*models.PaymentMethod, error) {
	out := make([]*models.PaymentMethod, 0, len(r.methods))
	for _, m := range r.methods {
		copied := *m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// hasMethodNamed reports whether any stored method matches name ignoring case.
func (r *fakeMethodRepo) hasMethodNamed(name string) bool {
	for _, m := range r.methods {
		if strings.EqualFold(m.Name, name) {
			return true
		}
	}
	return false
}
