package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ines300405/luxury-wheels/internal/services"
	"github.com/ines300405/luxury-wheels/internal/utils"
	"github.com/ines300405/luxury-wheels/internal/validators"
)

type PaymentMethodHandler struct {
	methodService services.PaymentMethodService
}

func NewPaymentMethodHandler(methodService services.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		methodService: methodService,
	}
}

// CreatePaymentMethod registers a new payment method
func (h *PaymentMethodHandler) CreatePaymentMethod(c *gin.Context) {
	var input validators.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	method, err := h.methodService.Create(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, "payment method", err)
		return
	}

	utils.CreatedResponse(c, "Payment method created successfully", method)
}

// UpdatePaymentMethod renames a payment method
func (h *PaymentMethodHandler) UpdatePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}

	var input validators.PaymentMethodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	method, err := h.methodService.Update(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, "payment method", err)
		return
	}

	utils.SuccessResponse(c, "Payment method updated successfully", method)
}

// DeletePaymentMethod removes a payment method
func (h *PaymentMethodHandler) DeletePaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}

	if err := h.methodService.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, "payment method", err)
		return
	}

	utils.SuccessResponse(c, "Payment method deleted successfully", nil)
}

// ListPaymentMethods returns all payment methods ordered by id
func (h *PaymentMethodHandler) ListPaymentMethods(c *gin.Context) {
	methods := h.methodService.List(c.Request.Context())
	utils.SuccessResponseWithMeta(c, "Payment methods retrieved successfully", methods, &utils.Meta{Count: len(methods)})
}

// GetPaymentMethod fetches a single payment method by id
func (h *PaymentMethodHandler) GetPaymentMethod(c *gin.Context) {
	id, ok := parseIDParam(c, "payment method")
	if !ok {
		return
	}

	method, err := h.methodService.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, "payment method", err)
		return
	}

	utils.SuccessResponse(c, "Payment method retrieved successfully", method)
}
