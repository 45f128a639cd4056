package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apppayment "github.com/jetcongo/backend/internal/application/payment"
)

// PaymentHandler handles payment HTTP requests
type PaymentHandler struct {
	BaseHandler
	paymentService *apppayment.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *apppayment.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RegisterRoutes registers all payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("", h.Pay)
		payments.GET("/reservation/:id", h.GetByReservation)
	}
}

// Pay settles a reservation. Clients may only pay their own reservations;
// agents settle on behalf of any passenger.
func (h *PaymentHandler) Pay(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req apppayment.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	var payerID *uuid.UUID
	if !isAgent(c) {
		payerID = &userID
	}

	result, err := h.paymentService.Pay(c.Request.Context(), payerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByReservation returns the payment applied to a reservation
func (h *PaymentHandler) GetByReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	result, err := h.paymentService.GetByReservation(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
