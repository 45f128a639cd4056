package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// FlightSort enumerates the supported public search sort orders
type FlightSort string

const (
	FlightSortPriceAsc  FlightSort = "price_asc"
	FlightSortPriceDesc FlightSort = "price_desc"
)

// SearchCriteria describes a public flight search
type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate *time.Time // calendar day, time portion ignored
	Sort          FlightSort
	Page          int
	Limit         int
}

// AircraftRepository defines the interface for aircraft persistence
type AircraftRepository interface {
	// FindByID finds an aircraft by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Aircraft, error)

	// FindAll finds all aircraft with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Aircraft, error)

	// Save creates or updates an aircraft
	Save(ctx context.Context, aircraft *Aircraft) error

	// Delete deletes an aircraft
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts aircraft matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// FlightRepository defines the interface for flight persistence
type FlightRepository interface {
	// FindByID finds a flight by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Flight, error)

	// FindActiveByID finds a flight by ID, restricted to ACTIVE status
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Flight, error)

	// FindByIDForUpdate finds a flight by ID with a row lock held for the
	// remainder of the surrounding transaction. Capacity checks on the
	// flight serialize behind this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Flight, error)

	// FindAll finds all flights with filtering
	FindAll(ctx context.Context, filter shared.Filter) ([]Flight, error)

	// Search runs the public flight search over ACTIVE flights.
	// hasMore reports whether a further page may exist.
	Search(ctx context.Context, criteria SearchCriteria) (flights []Flight, hasMore bool, err error)

	// FindActiveByAircraft finds the ACTIVE flights operated by an aircraft
	FindActiveByAircraft(ctx context.Context, aircraftID uuid.UUID) ([]Flight, error)

	// CountByAircraft counts flights referencing an aircraft
	CountByAircraft(ctx context.Context, aircraftID uuid.UUID) (int64, error)

	// CountCancelled counts flights whose status matches any historical
	// cancelled spelling, case-insensitively
	CountCancelled(ctx context.Context) (int64, error)

	// FindByDepartureDay finds flights departing within a calendar day
	FindByDepartureDay(ctx context.Context, day time.Time) ([]Flight, error)

	// Save creates or updates a flight
	Save(ctx context.Context, flight *Flight) error

	// Delete deletes a flight
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts flights matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
