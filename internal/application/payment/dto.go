package payment

import (
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/payment"
)

// PayRequest is the request to settle a reservation
type PayRequest struct {
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	PhoneNumber   string    `json:"phone_number" binding:"required"`
}

// PaymentResponse is the standard payment representation
type PaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	ReservationID uuid.UUID `json:"reservation_id"`
	Amount        string    `json:"amount"`
	Method        string    `json:"method"`
	PhoneNumber   string    `json:"phone_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToPaymentResponse converts a payment aggregate to its response
func ToPaymentResponse(p *payment.Payment, methodLabel string) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        p.Amount.StringFixed(2),
		Method:        methodLabel,
		PhoneNumber:   p.PhoneNumber,
		CreatedAt:     p.CreatedAt,
	}
}
