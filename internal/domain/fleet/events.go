package fleet

import (
	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeAircraft = "Aircraft"
	AggregateTypeFlight   = "Flight"
)

// Event type constants
const (
	EventTypeAircraftCreated  = "AircraftCreated"
	EventTypeAircraftGrounded = "AircraftGrounded"
	EventTypeFlightBlocked    = "FlightBlocked"
)

// AircraftCreatedEvent is raised when a new aircraft is registered
type AircraftCreatedEvent struct {
	shared.BaseDomainEvent
	AircraftID uuid.UUID `json:"aircraft_id"`
	Model      string    `json:"model"`
	Capacity   int       `json:"capacity"`
	Airline    string    `json:"airline"`
}

// NewAircraftCreatedEvent creates a new AircraftCreatedEvent
func NewAircraftCreatedEvent(aircraft *Aircraft) *AircraftCreatedEvent {
	return &AircraftCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAircraftCreated, AggregateTypeAircraft, aircraft.ID),
		AircraftID:      aircraft.ID,
		Model:           aircraft.Model,
		Capacity:        aircraft.Capacity,
		Airline:         aircraft.Airline,
	}
}

// EventType returns the event type name
func (e *AircraftCreatedEvent) EventType() string {
	return EventTypeAircraftCreated
}

// AircraftGroundedEvent is raised when an aircraft leaves AVAILABLE status.
// Active flights operated by this aircraft must be force-blocked.
type AircraftGroundedEvent struct {
	shared.BaseDomainEvent
	AircraftID uuid.UUID      `json:"aircraft_id"`
	OldStatus  AircraftStatus `json:"old_status"`
	NewStatus  AircraftStatus `json:"new_status"`
}

// NewAircraftGroundedEvent creates a new AircraftGroundedEvent
func NewAircraftGroundedEvent(aircraft *Aircraft, old AircraftStatus) *AircraftGroundedEvent {
	return &AircraftGroundedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAircraftGrounded, AggregateTypeAircraft, aircraft.ID),
		AircraftID:      aircraft.ID,
		OldStatus:       old,
		NewStatus:       aircraft.Status,
	}
}

// EventType returns the event type name
func (e *AircraftGroundedEvent) EventType() string {
	return EventTypeAircraftGrounded
}

// FlightBlockedEvent is raised when a flight is force-blocked by an
// aircraft status cascade
type FlightBlockedEvent struct {
	shared.BaseDomainEvent
	FlightID   uuid.UUID `json:"flight_id"`
	AircraftID uuid.UUID `json:"aircraft_id"`
}

// NewFlightBlockedEvent creates a new FlightBlockedEvent
func NewFlightBlockedEvent(flight *Flight) *FlightBlockedEvent {
	return &FlightBlockedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFlightBlocked, AggregateTypeFlight, flight.ID),
		FlightID:        flight.ID,
		AircraftID:      flight.AircraftID,
	}
}

// EventType returns the event type name
func (e *FlightBlockedEvent) EventType() string {
	return EventTypeFlightBlocked
}
