package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/jetcongo/backend/internal/application/fleet"
	"github.com/jetcongo/backend/internal/interfaces/http/middleware"
)

// AdminFlightHandler handles back-office flight scheduling
type AdminFlightHandler struct {
	BaseHandler
	flightService *appfleet.FlightService
}

// NewAdminFlightHandler creates a new back-office flight handler
func NewAdminFlightHandler(flightService *appfleet.FlightService) *AdminFlightHandler {
	return &AdminFlightHandler{flightService: flightService}
}

// RegisterRoutes registers all back-office flight routes
func (h *AdminFlightHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/flights", middleware.RequireAgent())
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id/status", h.ChangeStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create schedules a flight on an available aircraft
func (h *AdminFlightHandler) Create(c *gin.Context) {
	var req appfleet.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.flightService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns flights with occupancy figures, filters and pagination
func (h *AdminFlightHandler) List(c *gin.Context) {
	filter := bindListFilter(c)
	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if aircraftID := c.Query("aircraft_id"); aircraftID != "" {
		filters["aircraft_id"] = aircraftID
	}
	if origin := c.Query("origin"); origin != "" {
		filters["origin"] = origin
	}
	if destination := c.Query("destination"); destination != "" {
		filters["destination"] = destination
	}
	if len(filters) > 0 {
		filter.Filters = filters
	}

	result, err := h.flightService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, filter.Page, filter.PageSize)
}

// Get returns one flight with its occupancy figures
func (h *AdminFlightHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid flight ID")
		return
	}

	result, err := h.flightService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update modifies a flight's schedule and fare
func (h *AdminFlightHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid flight ID")
		return
	}

	var req appfleet.UpdateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.flightService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ChangeStatus activates, cancels or blocks a flight
func (h *AdminFlightHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid flight ID")
		return
	}

	var req appfleet.ChangeFlightStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.flightService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a flight that has no reservations
func (h *AdminFlightHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid flight ID")
		return
	}

	if err := h.flightService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
