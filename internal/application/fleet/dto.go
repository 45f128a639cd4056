package fleet

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/fleet"
)

// CreateAircraftRequest is the request to register an aircraft
type CreateAircraftRequest struct {
	Model    string `json:"model" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Airline  string `json:"airline" binding:"required"`
}

// UpdateAircraftRequest is the request to update an aircraft
type UpdateAircraftRequest struct {
	Model    string `json:"model" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Airline  string `json:"airline" binding:"required"`
}

// ChangeAircraftStatusRequest changes an aircraft operating status.
// Historical French spellings are accepted.
type ChangeAircraftStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AircraftResponse is the standard aircraft representation
type AircraftResponse struct {
	ID          uuid.UUID `json:"id"`
	Model       string    `json:"model"`
	Capacity    int       `json:"capacity"`
	Airline     string    `json:"airline"`
	Status      string    `json:"status"`
	FlightCount int64     `json:"flight_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToAircraftResponse converts an aircraft aggregate to its response
func ToAircraftResponse(a *fleet.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:        a.ID,
		Model:     a.Model,
		Capacity:  a.Capacity,
		Airline:   a.Airline,
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CreateFlightRequest is the request to schedule a flight.
// Fare travels as a string so no decimal precision is lost in transport.
type CreateFlightRequest struct {
	Origin      string     `json:"origin" binding:"required"`
	Destination string     `json:"destination" binding:"required"`
	DepartureAt time.Time  `json:"departure_at" binding:"required"`
	ArrivalAt   *time.Time `json:"arrival_at"`
	Fare        string     `json:"fare" binding:"required"`
	AircraftID  uuid.UUID  `json:"aircraft_id" binding:"required"`
}

// UpdateFlightRequest is the request to update a flight schedule
type UpdateFlightRequest struct {
	Origin      string     `json:"origin" binding:"required"`
	Destination string     `json:"destination" binding:"required"`
	DepartureAt time.Time  `json:"departure_at" binding:"required"`
	ArrivalAt   *time.Time `json:"arrival_at"`
	Fare        string     `json:"fare" binding:"required"`
}

// ChangeFlightStatusRequest changes a flight status.
// Historical French spellings are accepted.
type ChangeFlightStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SearchFlightsRequest is the public flight search query
type SearchFlightsRequest struct {
	Origin        string `form:"origin"`
	Destination   string `form:"destination"`
	DepartureDate string `form:"date"` // YYYY-MM-DD
	Sort          string `form:"sort"` // price_asc | price_desc
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// FlightResponse is the public flight representation
type FlightResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartureAt time.Time  `json:"departure_at"`
	ArrivalAt   *time.Time `json:"arrival_at,omitempty"`
	Fare        string     `json:"fare"`
	Status      string     `json:"status"`
	AircraftID  uuid.UUID  `json:"aircraft_id"`
}

// ToFlightResponse converts a flight aggregate to its response
func ToFlightResponse(f *fleet.Flight) FlightResponse {
	return FlightResponse{
		ID:          f.ID,
		Code:        FlightCode(f.ID),
		Origin:      f.Origin,
		Destination: f.Destination,
		DepartureAt: f.DepartureAt,
		ArrivalAt:   f.ArrivalAt,
		Fare:        f.Fare.StringFixed(2),
		Status:      f.Status.String(),
		AircraftID:  f.AircraftID,
	}
}

// FlightSearchResponse is a page of public search results
type FlightSearchResponse struct {
	Items   []FlightResponse `json:"items"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	HasMore bool             `json:"has_more"`
}

// AdminFlightResponse is the back-office flight representation carrying
// occupancy figures alongside the schedule
type AdminFlightResponse struct {
	FlightResponse
	SeatsBooked int     `json:"seats_booked"`
	Capacity    int     `json:"capacity"`
	LoadFactor  float64 `json:"load_factor"`
}

// FlightCode derives the stable display code shown on tickets and listings,
// e.g. "JC-347". The code is a function of the flight identity only.
func FlightCode(id uuid.UUID) string {
	n := int(id[0])<<8 | int(id[1])
	return fmt.Sprintf("JC-%03d", 100+n%900)
}
