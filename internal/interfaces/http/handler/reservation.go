package handler

import (
	"github.com/gin-gonic/gin"

	appbooking "github.com/jetcongo/backend/internal/application/booking"
	"github.com/jetcongo/backend/internal/interfaces/http/middleware"
)

// ReservationHandler handles reservation HTTP requests for both the
// end-user and back-office flows
type ReservationHandler struct {
	BaseHandler
	reservationService *appbooking.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *appbooking.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// RegisterRoutes registers all reservation routes
func (h *ReservationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reservations := rg.Group("/reservations")
	{
		reservations.POST("", h.Create)
		reservations.GET("", h.ListMine)
		reservations.GET("/:id", h.Get)
	}

	admin := rg.Group("/admin/reservations", middleware.RequireAgent())
	{
		admin.GET("", h.List)
		admin.GET("/:id", h.GetByID)
		admin.PATCH("/:id", h.Amend)
		admin.POST("/:id/confirm", h.Confirm)
		admin.POST("/:id/cancel", h.Cancel)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create books seats on a flight for the authenticated user
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appbooking.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reservationService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// ListMine returns the authenticated user's reservations
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.reservationService.ListByUser(c.Request.Context(), userID, bindListFilter(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Get returns one reservation with its flight summary. Clients only see
// their own; agents may fetch any.
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if isAgent(c) {
		result, err := h.reservationService.GetByID(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, result)
		return
	}

	result, err := h.reservationService.GetOwned(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns reservations with filters and pagination (back-office)
func (h *ReservationHandler) List(c *gin.Context) {
	filter := bindListFilter(c)
	if status := c.Query("status"); status != "" {
		filter.Filters = map[string]interface{}{"status": status}
	}

	items, total, err := h.reservationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// GetByID returns one reservation without an ownership check (back-office)
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	result, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Amend updates a reservation's seat count and/or status
func (h *ReservationHandler) Amend(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	var req appbooking.AmendReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.reservationService.Amend(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Confirm moves a pending reservation to CONFIRMED
func (h *ReservationHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	result, err := h.reservationService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Cancel cancels a reservation, freeing its seats. Cancelling an already
// cancelled reservation succeeds without effect.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	result, err := h.reservationService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a reservation record (back-office)
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reservation ID")
		return
	}

	if err := h.reservationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
