package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeReservation = "Reservation"

// Event type constants
const (
	EventTypeReservationCreated   = "ReservationCreated"
	EventTypeReservationPaid      = "ReservationPaid"
	EventTypeReservationCancelled = "ReservationCancelled"
)

// ReservationCreatedEvent is raised when a new reservation is created
type ReservationCreatedEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID       `json:"reservation_id"`
	UserID        uuid.UUID       `json:"user_id"`
	FlightID      uuid.UUID       `json:"flight_id"`
	SeatCount     int             `json:"seat_count"`
	Total         decimal.Decimal `json:"total"`
}

// NewReservationCreatedEvent creates a new ReservationCreatedEvent
func NewReservationCreatedEvent(r *Reservation) *ReservationCreatedEvent {
	return &ReservationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationCreated, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		UserID:          r.UserID,
		FlightID:        r.FlightID,
		SeatCount:       r.SeatCount,
		Total:           r.Total,
	}
}

// EventType returns the event type name
func (e *ReservationCreatedEvent) EventType() string {
	return EventTypeReservationCreated
}

// ReservationPaidEvent is raised when a reservation settles
type ReservationPaidEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID       `json:"reservation_id"`
	UserID        uuid.UUID       `json:"user_id"`
	FlightID      uuid.UUID       `json:"flight_id"`
	Total         decimal.Decimal `json:"total"`
}

// NewReservationPaidEvent creates a new ReservationPaidEvent
func NewReservationPaidEvent(r *Reservation) *ReservationPaidEvent {
	return &ReservationPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationPaid, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		UserID:          r.UserID,
		FlightID:        r.FlightID,
		Total:           r.Total,
	}
}

// EventType returns the event type name
func (e *ReservationPaidEvent) EventType() string {
	return EventTypeReservationPaid
}

// ReservationCancelledEvent is raised when a reservation is cancelled,
// releasing its seats back to the flight's pool
type ReservationCancelledEvent struct {
	shared.BaseDomainEvent
	ReservationID uuid.UUID `json:"reservation_id"`
	FlightID      uuid.UUID `json:"flight_id"`
	SeatCount     int       `json:"seat_count"`
}

// NewReservationCancelledEvent creates a new ReservationCancelledEvent
func NewReservationCancelledEvent(r *Reservation) *ReservationCancelledEvent {
	return &ReservationCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeReservationCancelled, AggregateTypeReservation, r.ID),
		ReservationID:   r.ID,
		FlightID:        r.FlightID,
		SeatCount:       r.SeatCount,
	}
}

// EventType returns the event type name
func (e *ReservationCancelledEvent) EventType() string {
	return EventTypeReservationCancelled
}
