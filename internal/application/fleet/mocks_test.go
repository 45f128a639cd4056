package fleet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// MockAircraftRepository mocks fleet.AircraftRepository
type MockAircraftRepository struct {
	mock.Mock
}

func (m *MockAircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Aircraft, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) Save(ctx context.Context, aircraft *fleet.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *MockAircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAircraftRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockFlightRepository mocks fleet.FlightRepository
type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*fleet.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAll(ctx context.Context, filter shared.Filter) ([]fleet.Flight, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) Search(ctx context.Context, criteria fleet.SearchCriteria) ([]fleet.Flight, bool, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]fleet.Flight), args.Bool(1), args.Error(2)
}

func (m *MockFlightRepository) FindActiveByAircraft(ctx context.Context, aircraftID uuid.UUID) ([]fleet.Flight, error) {
	args := m.Called(ctx, aircraftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) CountByAircraft(ctx context.Context, aircraftID uuid.UUID) (int64, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) CountCancelled(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) FindByDepartureDay(ctx context.Context, day time.Time) ([]fleet.Flight, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fleet.Flight), args.Error(1)
}

func (m *MockFlightRepository) Save(ctx context.Context, flight *fleet.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFlightRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockReservationRepository mocks booking.ReservationRepository
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) OccupiedSeats(ctx context.Context, flightID uuid.UUID, excludeReservationID *uuid.UUID) (int, error) {
	args := m.Called(ctx, flightID, excludeReservationID)
	return args.Int(0), args.Error(1)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]booking.Reservation, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]booking.Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindRecent(ctx context.Context, limit int) ([]booking.Reservation, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CountByFlight(ctx context.Context, flightID uuid.UUID) (int64, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CountByStatus(ctx context.Context, status booking.ReservationStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) TotalSeats(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *booking.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// recordingPublisher captures published domain events
type recordingPublisher struct {
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}
