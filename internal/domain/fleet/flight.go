package fleet

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/domain/shared/valueobject"
)

// FlightStatus represents the status of a flight
type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "ACTIVE"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusBlocked   FlightStatus = "BLOCKED"
)

// IsValid checks if the status is a valid FlightStatus
func (s FlightStatus) IsValid() bool {
	switch s {
	case FlightStatusActive, FlightStatusCancelled, FlightStatusBlocked:
		return true
	}
	return false
}

// String returns the string representation of FlightStatus
func (s FlightStatus) String() string {
	return string(s)
}

// CancelledFlightSynonyms enumerates the historical spellings that mean
// "cancelled" in legacy flight records. Matching is case-insensitive.
var CancelledFlightSynonyms = []string{"annule", "annulé", "annulee", "annulée", "cancelled", "canceled"}

// NormalizeFlightStatus maps raw status spellings, including historical
// French ones, onto the closed FlightStatus set. Returns false when the
// input matches nothing known.
func NormalizeFlightStatus(raw string) (FlightStatus, bool) {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	switch lowered {
	case "active", "actif":
		return FlightStatusActive, true
	case "blocked", "bloque", "bloqué":
		return FlightStatusBlocked, true
	}
	for _, syn := range CancelledFlightSynonyms {
		if lowered == syn {
			return FlightStatusCancelled, true
		}
	}
	if s := FlightStatus(strings.ToUpper(strings.TrimSpace(raw))); s.IsValid() {
		return s, true
	}
	return "", false
}

// Flight represents a scheduled flight aggregate root.
// Every flight is operated by exactly one aircraft whose capacity bounds
// the seats that can be reserved on it.
type Flight struct {
	shared.BaseAggregateRoot
	Origin      string
	Destination string
	DepartureAt time.Time
	ArrivalAt   *time.Time
	Fare        decimal.Decimal
	Status      FlightStatus
	AircraftID  uuid.UUID
}

// NewFlight creates a new flight
func NewFlight(origin, destination string, departureAt time.Time, arrivalAt *time.Time, fare decimal.Decimal, aircraftID uuid.UUID) (*Flight, error) {
	if origin == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Origin cannot be empty")
	}
	if destination == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Destination cannot be empty")
	}
	if departureAt.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Departure time is required")
	}
	if arrivalAt != nil && arrivalAt.Before(departureAt) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Arrival cannot precede departure")
	}
	if fare.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Fare cannot be negative")
	}
	if aircraftID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Aircraft ID cannot be empty")
	}

	flight := &Flight{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Origin:            origin,
		Destination:       destination,
		DepartureAt:       departureAt,
		ArrivalAt:         arrivalAt,
		Fare:              fare,
		Status:            FlightStatusActive,
		AircraftID:        aircraftID,
	}

	return flight, nil
}

// UpdateSchedule updates the flight route, times and fare
func (f *Flight) UpdateSchedule(origin, destination string, departureAt time.Time, arrivalAt *time.Time, fare decimal.Decimal) error {
	if origin == "" {
		return shared.NewDomainError("INVALID_INPUT", "Origin cannot be empty")
	}
	if destination == "" {
		return shared.NewDomainError("INVALID_INPUT", "Destination cannot be empty")
	}
	if departureAt.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "Departure time is required")
	}
	if arrivalAt != nil && arrivalAt.Before(departureAt) {
		return shared.NewDomainError("INVALID_INPUT", "Arrival cannot precede departure")
	}
	if fare.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Fare cannot be negative")
	}

	f.Origin = origin
	f.Destination = destination
	f.DepartureAt = departureAt
	f.ArrivalAt = arrivalAt
	f.Fare = fare
	f.UpdatedAt = time.Now()

	return nil
}

// ChangeStatus sets the flight status from an administrative action
func (f *Flight) ChangeStatus(target FlightStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown flight status")
	}
	f.Status = target
	f.UpdatedAt = time.Now()
	return nil
}

// Block force-transitions an active flight to BLOCKED.
// Cancelled flights are left untouched.
func (f *Flight) Block() bool {
	if f.Status != FlightStatusActive {
		return false
	}
	f.Status = FlightStatusBlocked
	f.UpdatedAt = time.Now()
	return true
}

// Cancel sets the flight status to CANCELLED
func (f *Flight) Cancel() {
	f.Status = FlightStatusCancelled
	f.UpdatedAt = time.Now()
}

// IsActive returns true if the flight is open for booking
func (f *Flight) IsActive() bool {
	return f.Status == FlightStatusActive
}

// IsCancelled returns true if the flight is cancelled
func (f *Flight) IsCancelled() bool {
	return f.Status == FlightStatusCancelled
}

// Route returns the origin and destination as a display string
func (f *Flight) Route() string {
	return fmt.Sprintf("%s → %s", f.Origin, f.Destination)
}

// FareMoney returns the unit fare as a Money value object
func (f *Flight) FareMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(f.Fare)
}
