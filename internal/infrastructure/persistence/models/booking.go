package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/booking"
)

// ReservationModel is the persistence model for the Reservation aggregate.
type ReservationModel struct {
	AggregateModel
	UserID    uuid.UUID                 `gorm:"type:uuid;not null;index"`
	FlightID  uuid.UUID                 `gorm:"type:uuid;not null;index"`
	SeatCount int                       `gorm:"not null;check:seat_count > 0"`
	Total     decimal.Decimal           `gorm:"type:decimal(18,4);not null"`
	Status    booking.ReservationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts the persistence model to a domain Reservation aggregate.
func (m *ReservationModel) ToDomain() *booking.Reservation {
	return &booking.Reservation{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		FlightID:          m.FlightID,
		SeatCount:         m.SeatCount,
		Total:             m.Total,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Reservation aggregate.
func (m *ReservationModel) FromDomain(r *booking.Reservation) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.UserID = r.UserID
	m.FlightID = r.FlightID
	m.SeatCount = r.SeatCount
	m.Total = r.Total
	m.Status = r.Status
}

// ReservationModelFromDomain creates a new persistence model from a domain Reservation.
func ReservationModelFromDomain(r *booking.Reservation) *ReservationModel {
	m := &ReservationModel{}
	m.FromDomain(r)
	return m
}
