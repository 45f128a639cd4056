package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/identity"
	"github.com/jetcongo/backend/internal/domain/payment"
	"github.com/jetcongo/backend/internal/domain/shared"
)

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

// MockPaymentRepository mocks payment.PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByReservation(ctx context.Context, reservationID uuid.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	args := m.Called(ctx, reservationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockUserRepository mocks identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type reportFixture struct {
	service      *ReportService
	flights      *MockFlightRepository
	aircraft     *MockAircraftRepository
	reservations *MockReservationRepository
	payments     *MockPaymentRepository
	users        *MockUserRepository
}

func newReportFixture() *reportFixture {
	f := &reportFixture{
		flights:      new(MockFlightRepository),
		aircraft:     new(MockAircraftRepository),
		reservations: new(MockReservationRepository),
		payments:     new(MockPaymentRepository),
		users:        new(MockUserRepository),
	}
	f.service = NewReportService(f.flights, f.aircraft, f.reservations, f.payments, f.users)
	return f
}

func TestReportService_Overview(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	f.flights.On("Count", ctx, mock.MatchedBy(func(filter shared.Filter) bool {
		return filter.Filters["status"] == string(fleet.FlightStatusActive)
	})).Return(int64(12), nil)
	f.flights.On("CountCancelled", ctx).Return(int64(3), nil)
	f.aircraft.On("Count", ctx, shared.Filter{}).Return(int64(4), nil)
	f.reservations.On("CountByStatus", ctx, booking.ReservationStatusPending).Return(int64(7), nil)
	f.reservations.On("CountByStatus", ctx, booking.ReservationStatusPaid).Return(int64(21), nil)
	f.reservations.On("TotalSeats", ctx).Return(int64(58), nil)
	f.payments.On("TotalRevenue", ctx).Return(decimal.RequireFromString("6562.50"), nil)

	resp, err := f.service.Overview(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(12), resp.ActiveFlights)
	assert.Equal(t, int64(3), resp.CancelledFlights)
	assert.Equal(t, int64(7), resp.PendingReservations)
	assert.Equal(t, int64(21), resp.PaidReservations)
	assert.Equal(t, int64(58), resp.SeatsSold)
	assert.Equal(t, "6562.50", resp.TotalRevenue)
}

func TestReportService_WeeklyBookings(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	// Pin "today" to a known Wednesday
	f.service.now = func() time.Time {
		return time.Date(2026, 9, 2, 15, 30, 0, 0, time.UTC)
	}

	counts := map[string]int64{
		"2026-08-27": 2, "2026-08-28": 5, "2026-08-29": 0,
		"2026-08-30": 1, "2026-08-31": 4, "2026-09-01": 3, "2026-09-02": 6,
	}
	for day, n := range counts {
		from, _ := time.Parse("2006-01-02", day)
		f.reservations.On("CountCreatedBetween", ctx, from, from.AddDate(0, 0, 1)).Return(n, nil)
	}

	buckets, err := f.service.WeeklyBookings(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2026-08-27", buckets[0].Date)
	assert.Equal(t, "Thu", buckets[0].Weekday)
	assert.Equal(t, int64(2), buckets[0].Bookings)

	assert.Equal(t, "2026-09-02", buckets[6].Date)
	assert.Equal(t, "Wed", buckets[6].Weekday)
	assert.Equal(t, int64(6), buckets[6].Bookings)
}

func TestReportService_RecentReservations(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	user, err := identity.NewUser("élodie nkulu", "elodie@example.com", "s3cret-pass", identity.RoleClient)
	require.NoError(t, err)

	departure := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	flight, err := fleet.NewFlight("Goma", "Kinshasa", departure, nil, decimal.RequireFromString("100.00"), uuid.New())
	require.NoError(t, err)

	reservation, err := booking.NewReservation(user.ID, flight.ID, 2, flight.Fare)
	require.NoError(t, err)

	orphan, err := booking.NewReservation(uuid.New(), uuid.New(), 1, flight.Fare)
	require.NoError(t, err)

	f.reservations.On("FindRecent", ctx, recentFeedSize).Return([]booking.Reservation{*reservation, *orphan}, nil)
	f.users.On("FindByID", ctx, user.ID).Return(user, nil)
	f.users.On("FindByID", ctx, orphan.UserID).Return(nil, shared.ErrNotFound)
	f.flights.On("FindByID", ctx, flight.ID).Return(flight, nil)
	f.flights.On("FindByID", ctx, orphan.FlightID).Return(nil, shared.ErrNotFound)

	entries, err := f.service.RecentReservations(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "élodie nkulu", entries[0].ClientName)
	assert.Equal(t, "ÉN", entries[0].Initials)
	assert.Equal(t, "Goma → Kinshasa", entries[0].Route)
	assert.Regexp(t, `^JC-\d{3}$`, entries[0].FlightCode)
	assert.Equal(t, "212.50", entries[0].Total)

	// Unresolvable references degrade to blanks, the row survives
	assert.Empty(t, entries[1].ClientName)
	assert.Empty(t, entries[1].FlightCode)
}

func TestReportService_DailyFlights(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture()

	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	departure := day.Add(8 * time.Hour)

	configured, err := fleet.NewAircraft("Boeing 737-800", 100, "Jet Congo")
	require.NoError(t, err)

	full, err := fleet.NewFlight("Goma", "Kinshasa", departure, nil, decimal.RequireFromString("150.00"), configured.ID)
	require.NoError(t, err)
	misconfigured, err := fleet.NewFlight("Kinshasa", "Kisangani", departure, nil, decimal.RequireFromString("90.00"), uuid.New())
	require.NoError(t, err)

	f.flights.On("FindByDepartureDay", ctx, day).Return([]fleet.Flight{*full, *misconfigured}, nil)
	f.reservations.On("OccupiedSeats", ctx, full.ID, (*uuid.UUID)(nil)).Return(75, nil)
	f.reservations.On("OccupiedSeats", ctx, misconfigured.ID, (*uuid.UUID)(nil)).Return(10, nil)
	f.aircraft.On("FindByID", ctx, configured.ID).Return(configured, nil)
	f.aircraft.On("FindByID", ctx, misconfigured.AircraftID).Return(nil, shared.ErrNotFound)

	resp, err := f.service.DailyFlights(ctx, day)
	require.NoError(t, err)
	require.Len(t, resp.Flights, 2)

	assert.Equal(t, 75.0, resp.Flights[0].LoadFactor)
	assert.Equal(t, "11250.00", resp.Flights[0].Revenue)

	// Unresolvable aircraft keeps the row but is excluded from the average
	assert.Equal(t, 0.0, resp.Flights[1].LoadFactor)
	assert.Equal(t, 75.0, resp.AvgLoadFactor)
}
