package payment

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/domain/shared/valueobject"
)

// MobileMoneyMethodLabel is the fixed payment method used by the mobile
// settlement flow. The method record is created lazily on first use.
const MobileMoneyMethodLabel = "Mobile Money"

var phoneNumberPattern = regexp.MustCompile(`^\d{9}$`)

// ValidPhoneNumber reports whether the settlement phone number has the
// expected nine-digit form
func ValidPhoneNumber(phone string) bool {
	return phoneNumberPattern.MatchString(phone)
}

// Payment represents a settled payment aggregate root.
// At most one payment may reference a reservation; the application layer
// checks this inside the settlement transaction and a unique index on
// reservation_id backs the check at the storage layer.
type Payment struct {
	shared.BaseAggregateRoot
	Amount        decimal.Decimal
	ReservationID uuid.UUID
	MethodID      uuid.UUID
	PhoneNumber   string
}

// NewPayment creates a new payment for a reservation's current total
func NewPayment(reservationID, methodID uuid.UUID, amount decimal.Decimal, phoneNumber string) (*Payment, error) {
	if reservationID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Reservation ID cannot be empty")
	}
	if methodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment method ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment amount cannot be negative")
	}
	if !ValidPhoneNumber(phoneNumber) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Phone number must be 9 digits")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Amount:            amount,
		ReservationID:     reservationID,
		MethodID:          methodID,
		PhoneNumber:       phoneNumber,
	}, nil
}

// AmountMoney returns the settled amount as a Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Amount)
}

// PaymentMethod represents a named settlement channel
type PaymentMethod struct {
	shared.BaseEntity
	Label string
}

// NewPaymentMethod creates a new payment method
func NewPaymentMethod(label string) (*PaymentMethod, error) {
	if label == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Payment method label cannot be empty")
	}
	return &PaymentMethod{
		BaseEntity: shared.NewBaseEntity(),
		Label:      label,
	}, nil
}
