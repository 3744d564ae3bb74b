package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
)

type ReservationHandler struct {
	reservationService services.ReservationService
	paymentService     services.PaymentService
}

func NewReservationHandler(reservationService services.ReservationService, paymentService services.PaymentService) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		paymentService:     paymentService,
	}
}

// CreateReservation books a vehicle for a client
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var input validators.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, "reservation", err)
		return
	}

	utils.CreatedResponse(c, "Reservation created successfully", reservation)
}

// UpdateReservation replaces all editable fields of a reservation
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}

	var input validators.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, "reservation", err)
		return
	}

	utils.SuccessResponse(c, "Reservation updated successfully", reservation)
}

// DeleteReservation cancels a reservation record outright
func (h *ReservationHandler) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, "reservation", err)
		return
	}

	utils.SuccessResponse(c, "Reservation deleted successfully", nil)
}

// ListReservations returns reservations newest start date first
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	reservations := h.reservationService.List(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Reservations retrieved successfully", reservations, &utils.Meta{Count: len(reservations)})
}

// GetReservation fetches a single reservation by id
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}

	reservation, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "reservation", err)
		return
	}

	utils.SuccessResponse(c, "Reservation retrieved successfully", reservation)
}

// ListReservationPayments returns the payments recorded against a reservation
func (h *ReservationHandler) ListReservationPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "reservation")
	if !ok {
		return
	}

	if _, err := h.reservationService.GetByID(c.Request.Context(), id); err != nil {
		writeServiceError(c, "reservation", err)
		return
	}

	payments := h.paymentService.ListByReservation(c.Request.Context(), id)
	utils.SuccessResponseWithMeta(c, "Payments retrieved successfully", payments, &utils.Meta{Count: len(payments)})
}
