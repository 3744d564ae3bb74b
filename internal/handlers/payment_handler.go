package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
)

type PaymentHandler struct {
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePayment records a payment against a reservation
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input validators.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	payment, err := h.paymentService.Create(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, "payment", err)
		return
	}

	utils.CreatedResponse(c, "Payment created successfully", payment)
}

// UpdatePayment replaces all editable fields of a payment
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "payment")
	if !ok {
		return
	}

	var input validators.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	payment, err := h.paymentService.Update(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, "payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment updated successfully", payment)
}

// DeletePayment removes a payment record
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "payment")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, "payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment deleted successfully", nil)
}

// ListPayments returns payments newest payment date first
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments := h.paymentService.List(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Payments retrieved successfully", payments, &utils.Meta{Count: len(payments)})
}

// GetPayment fetches a single payment by id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "payment", err)
		return
	}

	utils.SuccessResponse(c, "Payment retrieved successfully", payment)
}
