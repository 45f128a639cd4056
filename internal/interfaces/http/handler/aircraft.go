package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/jetcongo/backend/internal/application/fleet"
	"github.com/jetcongo/backend/internal/interfaces/http/middleware"
)

// AircraftHandler handles back-office aircraft management
type AircraftHandler struct {
	BaseHandler
	aircraftService *appfleet.AircraftService
}

// NewAircraftHandler creates a new aircraft handler
func NewAircraftHandler(aircraftService *appfleet.AircraftService) *AircraftHandler {
	return &AircraftHandler{aircraftService: aircraftService}
}

// RegisterRoutes registers all aircraft routes
func (h *AircraftHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/aircraft", middleware.RequireAgent())
	{
		admin.POST("", h.Create)
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id/status", h.ChangeStatus)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create registers a new aircraft
func (h *AircraftHandler) Create(c *gin.Context) {
	var req appfleet.CreateAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.aircraftService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns aircraft with filters and pagination
func (h *AircraftHandler) List(c *gin.Context) {
	filter := bindListFilter(c)
	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status"] = status
	}
	if airline := c.Query("airline"); airline != "" {
		filters["airline"] = airline
	}
	if len(filters) > 0 {
		filter.Filters = filters
	}

	result, err := h.aircraftService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, filter.Page, filter.PageSize)
}

// Get returns one aircraft
func (h *AircraftHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid aircraft ID")
		return
	}

	result, err := h.aircraftService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update modifies an aircraft's model, capacity and airline
func (h *AircraftHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid aircraft ID")
		return
	}

	var req appfleet.UpdateAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.aircraftService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ChangeStatus grounds or reinstates an aircraft. Grounding cascades to
// the aircraft's active flights.
func (h *AircraftHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid aircraft ID")
		return
	}

	var req appfleet.ChangeAircraftStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.aircraftService.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an aircraft that has no flights
func (h *AircraftHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid aircraft ID")
		return
	}

	if err := h.aircraftService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
