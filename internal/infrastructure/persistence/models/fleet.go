package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/fleet"
)

// AircraftModel is the persistence model for the Aircraft aggregate.
type AircraftModel struct {
	AggregateModel
	Model    string               `gorm:"type:varchar(100);not null"`
	Capacity int                  `gorm:"not null;check:capacity > 0"`
	Airline  string               `gorm:"type:varchar(100)"`
	Status   fleet.AircraftStatus `gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
}

// TableName returns the table name for GORM
func (AircraftModel) TableName() string {
	return "aircraft"
}

// ToDomain converts the persistence model to a domain Aircraft aggregate.
func (m *AircraftModel) ToDomain() *fleet.Aircraft {
	return &fleet.Aircraft{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Model:             m.Model,
		Capacity:          m.Capacity,
		Airline:           m.Airline,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Aircraft aggregate.
func (m *AircraftModel) FromDomain(a *fleet.Aircraft) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.Model = a.Model
	m.Capacity = a.Capacity
	m.Airline = a.Airline
	m.Status = a.Status
}

// AircraftModelFromDomain creates a new persistence model from a domain Aircraft.
func AircraftModelFromDomain(a *fleet.Aircraft) *AircraftModel {
	m := &AircraftModel{}
	m.FromDomain(a)
	return m
}

// FlightModel is the persistence model for the Flight aggregate.
type FlightModel struct {
	AggregateModel
	Origin      string             `gorm:"type:varchar(100);not null;index:idx_flights_route"`
	Destination string             `gorm:"type:varchar(100);not null;index:idx_flights_route"`
	DepartureAt time.Time          `gorm:"not null;index"`
	ArrivalAt   *time.Time         ``
	Fare        decimal.Decimal    `gorm:"type:decimal(18,4);not null;check:fare >= 0"`
	Status      fleet.FlightStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
	AircraftID  uuid.UUID          `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (FlightModel) TableName() string {
	return "flights"
}

// ToDomain converts the persistence model to a domain Flight aggregate.
func (m *FlightModel) ToDomain() *fleet.Flight {
	return &fleet.Flight{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Origin:            m.Origin,
		Destination:       m.Destination,
		DepartureAt:       m.DepartureAt,
		ArrivalAt:         m.ArrivalAt,
		Fare:              m.Fare,
		Status:            m.Status,
		AircraftID:        m.AircraftID,
	}
}

// FromDomain populates the persistence model from a domain Flight aggregate.
func (m *FlightModel) FromDomain(f *fleet.Flight) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.Origin = f.Origin
	m.Destination = f.Destination
	m.DepartureAt = f.DepartureAt
	m.ArrivalAt = f.ArrivalAt
	m.Fare = f.Fare
	m.Status = f.Status
	m.AircraftID = f.AircraftID
}

// FlightModelFromDomain creates a new persistence model from a domain Flight.
func FlightModelFromDomain(f *fleet.Flight) *FlightModel {
	m := &FlightModel{}
	m.FromDomain(f)
	return m
}
