package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/payment"
)

// PaymentModel is the persistence model for the Payment aggregate. The unique
// index on reservation_id is the storage-level backstop for the at-most-one
// payment rule.
type PaymentModel struct {
	AggregateModel
	Amount        decimal.Decimal `gorm:"type:decimal(18,4);not null;check:amount >= 0"`
	ReservationID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_payments_reservation"`
	MethodID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	PhoneNumber   string          `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment aggregate.
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Amount:            m.Amount,
		ReservationID:     m.ReservationID,
		MethodID:          m.MethodID,
		PhoneNumber:       m.PhoneNumber,
	}
}

// FromDomain populates the persistence model from a domain Payment aggregate.
func (m *PaymentModel) FromDomain(p *payment.Payment) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Amount = p.Amount
	m.ReservationID = p.ReservationID
	m.MethodID = p.MethodID
	m.PhoneNumber = p.PhoneNumber
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}

// PaymentMethodModel is the persistence model for the PaymentMethod entity.
type PaymentMethodModel struct {
	BaseModel
	Label string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}

// ToDomain converts the persistence model to a domain PaymentMethod entity.
func (m *PaymentMethodModel) ToDomain() *payment.PaymentMethod {
	return &payment.PaymentMethod{
		BaseEntity: m.BaseModel.ToDomain(),
		Label:      m.Label,
	}
}

// FromDomain populates the persistence model from a domain PaymentMethod entity.
func (m *PaymentMethodModel) FromDomain(pm *payment.PaymentMethod) {
	m.FromDomainBaseEntity(pm.BaseEntity)
	m.Label = pm.Label
}

// PaymentMethodModelFromDomain creates a new persistence model from a domain PaymentMethod.
func PaymentMethodModelFromDomain(pm *payment.PaymentMethod) *PaymentMethodModel {
	m := &PaymentMethodModel{}
	m.FromDomain(pm)
	return m
}
