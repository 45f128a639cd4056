package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	appreport "github.com/jetcongo/backend/internal/application/report"
	"github.com/jetcongo/backend/internal/interfaces/http/middleware"
)

// ReportHandler serves the back-office dashboard aggregates
type ReportHandler struct {
	BaseHandler
	reportService *appreport.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *appreport.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/reports", middleware.RequireAgent())
	{
		admin.GET("/overview", h.Overview)
		admin.GET("/weekly-bookings", h.WeeklyBookings)
		admin.GET("/recent-reservations", h.RecentReservations)
		admin.GET("/daily-flights", h.DailyFlights)
	}
}

// Overview returns the headline dashboard figures
func (h *ReportHandler) Overview(c *gin.Context) {
	result, err := h.reportService.Overview(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// WeeklyBookings returns per-weekday reservation counts for the last week
func (h *ReportHandler) WeeklyBookings(c *gin.Context) {
	result, err := h.reportService.WeeklyBookings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RecentReservations returns the latest reservations feed
func (h *ReportHandler) RecentReservations(c *gin.Context) {
	result, err := h.reportService.RecentReservations(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DailyFlights returns occupancy for one day's flights. The day defaults
// to today when no date parameter is given.
func (h *ReportHandler) DailyFlights(c *gin.Context) {
	day := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Date must be formatted YYYY-MM-DD")
			return
		}
		day = parsed
	}

	result, err := h.reportService.DailyFlights(c.Request.Context(), day)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
