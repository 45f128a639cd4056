package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
)

// CreateReservationRequest is the request to create a reservation
type CreateReservationRequest struct {
	FlightID uuid.UUID `json:"flight_id" binding:"required"`
	Seats    int       `json:"seats" binding:"required,gt=0"`
}

// AmendReservationRequest is the request to amend a reservation's seat count
// and/or status. Both fields are optional; omitted fields are untouched.
type AmendReservationRequest struct {
	Seats  *int    `json:"seats,omitempty" binding:"omitempty,gt=0"`
	Status *string `json:"status,omitempty"`
}

// ReservationResponse is the standard reservation representation
type ReservationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FlightID  uuid.UUID `json:"flight_id"`
	Seats     int       `json:"seats"`
	Total     string    `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminReservationEntry is the back-office list row, joined with the client
// name and flight route
type AdminReservationEntry struct {
	ReservationResponse
	ClientName string `json:"client_name"`
	Route      string `json:"route"`
}

// FlightSummary is the flight view embedded in reservation detail responses
type FlightSummary struct {
	ID          uuid.UUID  `json:"id"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	DepartureAt time.Time  `json:"departure_at"`
	ArrivalAt   *time.Time `json:"arrival_at,omitempty"`
	Fare        string     `json:"fare"`
	Status      string     `json:"status"`
}

// ReservationDetailResponse is a reservation joined with its flight,
// served to the payment page
type ReservationDetailResponse struct {
	ReservationResponse
	Flight FlightSummary `json:"flight"`
}

// ToReservationResponse converts a reservation aggregate to its response
func ToReservationResponse(r *booking.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		FlightID:  r.FlightID,
		Seats:     r.SeatCount,
		Total:     r.Total.StringFixed(2),
		Status:    r.Status.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToFlightSummary converts a flight aggregate to its embedded summary
func ToFlightSummary(f *fleet.Flight) FlightSummary {
	return FlightSummary{
		ID:          f.ID,
		Origin:      f.Origin,
		Destination: f.Destination,
		DepartureAt: f.DepartureAt,
		ArrivalAt:   f.ArrivalAt,
		Fare:        f.Fare.StringFixed(2),
		Status:      f.Status.String(),
	}
}

// ToReservationDetailResponse converts a reservation and its flight
func ToReservationDetailResponse(r *booking.Reservation, f *fleet.Flight) ReservationDetailResponse {
	return ReservationDetailResponse{
		ReservationResponse: ToReservationResponse(r),
		Flight:              ToFlightSummary(f),
	}
}
