package payment

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Receipt is the structured payload handed to the notification collaborator
// after a payment commits. Taxes are reported as total − subtotal; the fixed
// service fee used by the pricing calculator travels alongside so downstream
// consumers can detect drift between the two.
type Receipt struct {
	Reference   string    `json:"reference"`
	PaidAt      time.Time `json:"paid_at"`
	ClientName  string    `json:"client_name"`
	Route       string    `json:"route"`
	Seats       int       `json:"seats"`
	DepartureAt time.Time `json:"departure_at"`
	Subtotal    string    `json:"subtotal"`
	Taxes       string    `json:"taxes"`
	ServiceFee  string    `json:"service_fee"`
	Total       string    `json:"total"`
}

// ReceiptNotifier dispatches receipts best-effort. Implementations must be
// safe to call after the payment transaction has committed; failures are the
// caller's to log, never to propagate.
type ReceiptNotifier interface {
	PublishReceipt(ctx context.Context, receipt Receipt) error
}

// ReceiptReference builds the human-facing reference code from the route and
// the reservation identity, e.g. "GOM-KIN-3F9A2C".
func ReceiptReference(origin, destination, reservationID string) string {
	short := strings.ToUpper(strings.ReplaceAll(reservationID, "-", ""))
	if len(short) > 6 {
		short = short[:6]
	}
	return fmt.Sprintf("%s-%s-%s", cityCode(origin), cityCode(destination), short)
}

// cityCode reduces a city name to its three-letter display code
func cityCode(city string) string {
	var letters []rune
	for _, r := range strings.ToUpper(city) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
		if len(letters) == 3 {
			break
		}
	}
	if len(letters) == 0 {
		return "XXX"
	}
	return string(letters)
}
