package handler

import (
	"github.com/gin-gonic/gin"

	appfleet "github.com/jetcongo/backend/internal/application/fleet"
)

// FlightHandler handles public flight browsing
type FlightHandler struct {
	BaseHandler
	flightService *appfleet.FlightService
}

// NewFlightHandler creates a new public flight handler
func NewFlightHandler(flightService *appfleet.FlightService) *FlightHandler {
	return &FlightHandler{flightService: flightService}
}

// RegisterRoutes registers all public flight routes
func (h *FlightHandler) RegisterRoutes(rg *gin.RouterGroup) {
	flights := rg.Group("/flights")
	{
		flights.GET("/search", h.Search)
		flights.GET("/:id", h.Get)
	}
}

// Search serves the public flight search with pagination
func (h *FlightHandler) Search(c *gin.Context) {
	var req appfleet.SearchFlightsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid search parameters")
		return
	}

	result, err := h.flightService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Get returns a single active flight for the booking page
func (h *FlightHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid flight ID")
		return
	}

	result, err := h.flightService.GetActive(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
