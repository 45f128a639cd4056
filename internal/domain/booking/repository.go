package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// CapacityLedger computes seats committed to a flight from its non-cancelled
// reservations. Both operations must run inside the same transaction as the
// mutation they gate, with the flight row already locked, or the capacity
// invariant can be violated by a race.
type CapacityLedger interface {
	// OccupiedSeats returns Σ seat_count over reservations on the flight
	// with status != CANCELLED, optionally excluding one reservation
	// (self-exclusion when amending that reservation's own seat count)
	OccupiedSeats(ctx context.Context, flightID uuid.UUID, excludeReservationID *uuid.UUID) (int, error)
}

// ReservationRepository defines the interface for reservation persistence
type ReservationRepository interface {
	CapacityLedger

	// FindByID finds a reservation by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// FindByIDForUpdate finds a reservation by ID with a row lock held for
	// the remainder of the surrounding transaction
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// FindByUser finds all reservations owned by a user
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Reservation, error)

	// FindAll finds all reservations with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Reservation, error)

	// FindRecent finds the most recently created reservations
	FindRecent(ctx context.Context, limit int) ([]Reservation, error)

	// CountByFlight counts reservations referencing a flight
	CountByFlight(ctx context.Context, flightID uuid.UUID) (int64, error)

	// CountByUser counts reservations owned by a user
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountByStatus counts reservations in a given status
	CountByStatus(ctx context.Context, status ReservationStatus) (int64, error)

	// TotalSeats sums seat counts across all reservations
	TotalSeats(ctx context.Context) (int64, error)

	// CountCreatedBetween counts reservations created in [from, to)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// Save creates or updates a reservation
	Save(ctx context.Context, reservation *Reservation) error

	// Delete deletes a reservation
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts reservations matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
