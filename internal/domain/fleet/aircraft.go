package fleet

import (
	"strings"
	"time"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// AircraftStatus represents the operating status of an aircraft
type AircraftStatus string

const (
	AircraftStatusAvailable   AircraftStatus = "AVAILABLE"
	AircraftStatusUnavailable AircraftStatus = "UNAVAILABLE"
	AircraftStatusBlocked     AircraftStatus = "BLOCKED"
)

// IsValid checks if the status is a valid AircraftStatus
func (s AircraftStatus) IsValid() bool {
	switch s {
	case AircraftStatusAvailable, AircraftStatusUnavailable, AircraftStatusBlocked:
		return true
	}
	return false
}

// String returns the string representation of AircraftStatus
func (s AircraftStatus) String() string {
	return string(s)
}

// IsOperational returns true if flights on this aircraft may keep selling
func (s AircraftStatus) IsOperational() bool {
	return s == AircraftStatusAvailable
}

// NormalizeAircraftStatus maps raw status spellings, including historical
// French ones, onto the closed AircraftStatus set. Returns false when the
// input matches nothing known.
func NormalizeAircraftStatus(raw string) (AircraftStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "available", "disponible":
		return AircraftStatusAvailable, true
	case "unavailable", "indisponible", "maintenance":
		return AircraftStatusUnavailable, true
	case "blocked", "bloque", "bloqué":
		return AircraftStatusBlocked, true
	}
	if s := AircraftStatus(strings.ToUpper(strings.TrimSpace(raw))); s.IsValid() {
		return s, true
	}
	return "", false
}

// Aircraft represents an aircraft aggregate root.
// Its capacity is the ceiling for aggregate reservation seat counts on any
// flight operated by it.
type Aircraft struct {
	shared.BaseAggregateRoot
	Model    string
	Capacity int
	Airline  string
	Status   AircraftStatus
}

// NewAircraft creates a new aircraft
func NewAircraft(model string, capacity int, airline string) (*Aircraft, error) {
	if model == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Aircraft model cannot be empty")
	}
	if capacity <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Aircraft capacity must be a positive integer")
	}
	if airline == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Airline cannot be empty")
	}

	aircraft := &Aircraft{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Model:             model,
		Capacity:          capacity,
		Airline:           airline,
		Status:            AircraftStatusAvailable,
	}

	aircraft.AddDomainEvent(NewAircraftCreatedEvent(aircraft))

	return aircraft, nil
}

// UpdateDetails updates the aircraft model, capacity and airline
func (a *Aircraft) UpdateDetails(model string, capacity int, airline string) error {
	if model == "" {
		return shared.NewDomainError("INVALID_INPUT", "Aircraft model cannot be empty")
	}
	if capacity <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Aircraft capacity must be a positive integer")
	}
	if airline == "" {
		return shared.NewDomainError("INVALID_INPUT", "Airline cannot be empty")
	}

	a.Model = model
	a.Capacity = capacity
	a.Airline = airline
	a.UpdatedAt = time.Now()

	return nil
}

// ChangeStatus transitions the aircraft to a new operating status.
// Leaving AVAILABLE raises an event consumed by the flight-blocking handler
// so active flights on this aircraft stop selling.
func (a *Aircraft) ChangeStatus(target AircraftStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown aircraft status")
	}
	if a.Status == target {
		return nil
	}

	old := a.Status
	a.Status = target
	a.UpdatedAt = time.Now()

	if old.IsOperational() && !target.IsOperational() {
		a.AddDomainEvent(NewAircraftGroundedEvent(a, old))
	}

	return nil
}

// IsAvailable returns true if the aircraft is in AVAILABLE status
func (a *Aircraft) IsAvailable() bool {
	return a.Status == AircraftStatusAvailable
}
