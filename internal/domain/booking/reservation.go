package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jetcongo/backend/internal/domain/shared"
	"github.com/jetcongo/backend/internal/domain/shared/valueobject"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusPaid      ReservationStatus = "PAID"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// IsValid checks if the status is a valid ReservationStatus
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusPaid, ReservationStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of ReservationStatus
func (s ReservationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusPending:
		return target == ReservationStatusConfirmed || target == ReservationStatusPaid || target == ReservationStatusCancelled
	case ReservationStatusConfirmed:
		return target == ReservationStatusCancelled
	case ReservationStatusPaid, ReservationStatusCancelled:
		return false // Terminal states
	}
	return false
}

// IsTerminal returns true for states that end the reservation lifecycle
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusPaid || s == ReservationStatusCancelled
}

// statusFolder strips combining marks so accented spellings compare equal to
// their bare forms
var statusFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeReservationStatus maps raw status spellings, including historical
// French ones, onto the closed ReservationStatus set. Returns false when the
// input matches nothing known.
func NormalizeReservationStatus(raw string) (ReservationStatus, bool) {
	folded, _, err := transform.String(statusFolder, strings.TrimSpace(raw))
	if err != nil {
		folded = strings.TrimSpace(raw)
	}
	switch strings.ToUpper(folded) {
	case "PENDING", "EN_ATTENTE":
		return ReservationStatusPending, true
	case "CONFIRMED", "CONFIRMEE":
		return ReservationStatusConfirmed, true
	case "PAID", "PAYE", "PAYEE":
		return ReservationStatusPaid, true
	case "CANCELLED", "CANCELED", "ANNULEE", "ANNULE":
		return ReservationStatusCancelled, true
	}
	return "", false
}

// Reservation represents a seat reservation aggregate root.
// Across all non-cancelled reservations on a flight, seat counts must never
// sum past the operating aircraft's capacity; that check lives in the
// application layer inside the transaction that commits the mutation.
type Reservation struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID
	FlightID  uuid.UUID
	SeatCount int
	Total     decimal.Decimal
	Status    ReservationStatus
}

// NewReservation creates a new PENDING reservation with its total already
// computed by the pricing calculator
func NewReservation(userID, flightID uuid.UUID, seatCount int, fare decimal.Decimal) (*Reservation, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "User ID cannot be empty")
	}
	if flightID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Flight ID cannot be empty")
	}
	if seatCount <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seat count must be a positive integer")
	}
	if fare.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Fare cannot be negative")
	}

	reservation := &Reservation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		FlightID:          flightID,
		SeatCount:         seatCount,
		Total:             ComputeTotal(fare, seatCount),
		Status:            ReservationStatusPending,
	}

	reservation.AddDomainEvent(NewReservationCreatedEvent(reservation))

	return reservation, nil
}

// AmendSeats changes the seat count and recomputes the total in full.
// Only permitted while the reservation is non-terminal; the capacity check
// against the flight's remaining pool is the caller's responsibility.
func (r *Reservation) AmendSeats(seatCount int, fare decimal.Decimal) error {
	if r.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot amend seats of a %s reservation", r.Status))
	}
	if seatCount <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Seat count must be a positive integer")
	}
	if fare.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Fare cannot be negative")
	}

	r.SeatCount = seatCount
	r.Total = ComputeTotal(fare, seatCount)
	r.UpdatedAt = time.Now()

	return nil
}

// TransitionTo moves the reservation to the target status following the
// lifecycle rules. Moving out of CANCELLED is never legal.
func (r *Reservation) TransitionTo(target ReservationStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Unknown reservation status")
	}
	if r.Status == target {
		return nil
	}
	if !r.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot transition reservation from %s to %s", r.Status, target))
	}

	r.Status = target
	r.UpdatedAt = time.Now()

	return nil
}

// Confirm transitions the reservation from PENDING to CONFIRMED
func (r *Reservation) Confirm() error {
	return r.TransitionTo(ReservationStatusConfirmed)
}

// MarkPaid transitions the reservation to PAID after settlement. Settlement
// applies to PENDING and CONFIRMED reservations alike; CanTransitionTo
// governs status amendment, not payment.
func (r *Reservation) MarkPaid() error {
	switch r.Status {
	case ReservationStatusPending, ReservationStatusConfirmed:
	default:
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot pay a %s reservation", r.Status))
	}
	r.Status = ReservationStatusPaid
	r.UpdatedAt = time.Now()

	r.AddDomainEvent(NewReservationPaidEvent(r))

	return nil
}

// Cancel sets the status to CANCELLED, releasing the seats back to the pool.
// Cancelling an already-cancelled reservation is a no-op, not an error.
func (r *Reservation) Cancel() error {
	if r.Status == ReservationStatusCancelled {
		return nil
	}
	if !r.Status.CanTransitionTo(ReservationStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot cancel a %s reservation", r.Status))
	}

	r.Status = ReservationStatusCancelled
	r.UpdatedAt = time.Now()

	r.AddDomainEvent(NewReservationCancelledEvent(r))

	return nil
}

// IsCancelled returns true if the reservation is cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationStatusCancelled
}

// IsPaid returns true if the reservation is paid
func (r *Reservation) IsPaid() bool {
	return r.Status == ReservationStatusPaid
}

// CountsTowardCapacity returns true if the reservation's seats occupy
// capacity on its flight
func (r *Reservation) CountsTowardCapacity() bool {
	return r.Status != ReservationStatusCancelled
}

// TotalMoney returns the total payable amount as a Money value object
func (r *Reservation) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(r.Total)
}
