package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ines300405/luxury-wheels/internal/validators"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

// ExportService streams the listing of each entity as CSV, one row per
// record in listing order, header row first.
type ExportService interface {
	ExportClients(ctx context.Context, w io.Writer) error
	ExportVehicles(ctx context.Context, w io.Writer) error
	ExportReservations(ctx context.Context, w io.Writer) error
	ExportPayments(ctx context.Context, w io.Writer) error
	ExportPaymentMethods(ctx context.Context, w io.Writer) error
}

type exportService struct {
	clientService        ClientService
	vehicleService       VehicleService
	reservationService   ReservationService
	paymentService       PaymentService
	paymentMethodService PaymentMethodService
	logger               *logger.Logger
}

func NewExportService(
	clientService ClientService,
	vehicleService VehicleService,
	reservationService ReservationService,
	paymentService PaymentService,
	paymentMethodService PaymentMethodService,
	log *logger.Logger,
) ExportService {
	return &exportService{
		clientService:        clientService,
		vehicleService:       vehicleService,
		reservationService:   reservationService,
		paymentService:       paymentService,
		paymentMethodService: paymentMethodService,
		logger:               log,
	}
}

func (s *exportService) ExportClients(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "email", "phone", "tax_id", "registered_at"}); err != nil {
		return fmt.Errorf("failed to write client export header: %w", err)
	}
	for _, c := range s.clientService.List(ctx) {
		row := []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			c.Email,
			c.Phone,
			c.TaxID,
			c.RegisteredAt.Format(validators.DateFormat),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write client export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) ExportVehicles(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{
		"id", "brand", "model", "plate", "year", "odometer",
		"last_service", "next_service", "category", "transmission",
		"type", "seats", "image", "daily_rate", "last_inspection",
		"next_inspection", "status",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write vehicle export header: %w", err)
	}
	for _, v := range s.vehicleService.List(ctx) {
		row := []string{
			strconv.FormatInt(v.ID, 10),
			v.Brand,
			v.Model,
			v.Plate,
			strconv.Itoa(v.Year),
			strconv.Itoa(v.Odometer),
			v.LastService,
			v.NextService,
			v.Category,
			v.Transmission,
			v.Type,
			strconv.Itoa(v.Seats),
			v.Image,
			strconv.FormatFloat(v.DailyRate, 'f', 2, 64),
			v.LastInspection,
			v.NextInspection,
			string(v.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write vehicle export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) ExportReservations(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "client_id", "vehicle_id", "start_date", "end_date", "status", "total_amount"}); err != nil {
		return fmt.Errorf("failed to write reservation export header: %w", err)
	}
	for _, r := range s.reservationService.List(ctx) {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.ClientID, 10),
			strconv.FormatInt(r.VehicleID, 10),
			r.StartDate,
			r.EndDate,
			string(r.Status),
			strconv.FormatFloat(r.TotalAmount, 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write reservation export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) ExportPayments(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "reservation_id", "payment_method_id", "amount", "payment_date"}); err != nil {
		return fmt.Errorf("failed to write payment export header: %w", err)
	}
	for _, p := range s.paymentService.List(ctx) {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			strconv.FormatInt(p.ReservationID, 10),
			strconv.FormatInt(p.PaymentMethodID, 10),
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			p.PaymentDate,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write payment export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *exportService) ExportPaymentMethods(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name"}); err != nil {
		return fmt.Errorf("failed to write payment method export header: %w", err)
	}
	for _, m := range s.paymentMethodService.List(ctx) {
		if err := cw.Write([]string{strconv.FormatInt(m.ID, 10), m.Name}); err != nil {
			return fmt.Errorf("failed to write payment method export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
