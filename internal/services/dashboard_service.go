package services

import (
	"context"

	"github.com/ines300405/luxury-wheels/internal/models"
	"github.com/ines300405/luxury-wheels/internal/repositories/interfaces"
	"github.com/ines300405/luxury-wheels/pkg/logger"
)

// DashboardSummary is the headline block of the overview screen.
type DashboardSummary struct {
	TotalClients       int64   `json:"total_clients"`
	AvailableVehicles  int64   `json:"available_vehicles"`
	ActiveReservations int64   `json:"active_reservations"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type DashboardService interface {
	Summary(ctx context.Context) *DashboardSummary
	ReservationsByMonth(ctx context.Context) []*interfaces.MonthlyCount
}

type dashboardService struct {
	clientRepo      interfaces.ClientRepository
	vehicleRepo     interfaces.VehicleRepository
	reservationRepo interfaces.ReservationRepository
	paymentRepo     interfaces.PaymentRepository
	logger          *logger.Logger
}

func NewDashboardService(
	clientRepo interfaces.ClientRepository,
	vehicleRepo interfaces.VehicleRepository,
	reservationRepo interfaces.ReservationRepository,
	paymentRepo interfaces.PaymentRepository,
	log *logger.Logger,
) DashboardService {
	return &dashboardService{
		clientRepo:      clientRepo,
		vehicleRepo:     vehicleRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		logger:          log,
	}
}

// Summary degrades per figure: a failed count logs and reports zero while
// the rest of the block still renders.
func (s *dashboardService) Summary(ctx context.Context) *DashboardSummary {
	summary := &DashboardSummary{}

	clients, err := s.clientRepo.Count(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to count clients for dashboard")
	} else {
		summary.TotalClients = clients
	}

	available, err := s.vehicleRepo.CountByStatus(ctx, models.VehicleStatusAvailable)
	if err != nil {
		s.logger.WithError(err).Error("failed to count available vehicles for dashboard")
	} else {
		summary.AvailableVehicles = available
	}

	active, err := s.reservationRepo.CountByStatuses(ctx, models.ReservationStatusConfirmed, models.ReservationStatusPending)
	if err != nil {
		s.logger.WithError(err).Error("failed to count active reservations for dashboard")
	} else {
		summary.ActiveReservations = active
	}

	revenue, err := s.paymentRepo.SumAmounts(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to sum payments for dashboard")
	} else {
		summary.TotalRevenue = revenue
	}

	return summary
}

func (s *dashboardService) ReservationsByMonth(ctx context.Context) []*interfaces.MonthlyCount {
	counts, err := s.reservationRepo.CountByMonth(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to count reservations by month")
		return []*interfaces.MonthlyCount{}
	}
	return counts
}
