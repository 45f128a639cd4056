package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByReservation finds the payment referencing a reservation, if any
	FindByReservation(ctx context.Context, reservationID uuid.UUID) (*Payment, error)

	// ExistsForReservation reports whether a payment already references the
	// reservation. Must be evaluated inside the settlement transaction.
	ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error)

	// Save creates a payment. A storage-layer unique violation on
	// reservation_id surfaces as a duplicate-payment error.
	Save(ctx context.Context, payment *Payment) error

	// TotalRevenue sums all payment amounts
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

// PaymentMethodRepository defines the interface for payment method persistence
type PaymentMethodRepository interface {
	// FindByLabel finds a payment method by its label
	FindByLabel(ctx context.Context, label string) (*PaymentMethod, error)

	// Save creates or updates a payment method
	Save(ctx context.Context, method *PaymentMethod) error
}
