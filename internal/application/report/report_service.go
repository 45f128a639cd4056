package report

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appfleet "github.com/jetcongo/backend/internal/application/fleet"
	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/identity"
	"github.com/jetcongo/backend/internal/domain/payment"
	"github.com/jetcongo/backend/internal/domain/shared"
)

const recentFeedSize = 8

// ReportService aggregates the operational figures shown on the back-office
// dashboard. Everything is computed from the live tables; nothing is cached.
type ReportService struct {
	flightRepo      fleet.FlightRepository
	aircraftRepo    fleet.AircraftRepository
	reservationRepo booking.ReservationRepository
	paymentRepo     payment.PaymentRepository
	userRepo        identity.UserRepository
	now             func() time.Time
}

// NewReportService creates a new ReportService
func NewReportService(
	flightRepo fleet.FlightRepository,
	aircraftRepo fleet.AircraftRepository,
	reservationRepo booking.ReservationRepository,
	paymentRepo payment.PaymentRepository,
	userRepo identity.UserRepository,
) *ReportService {
	return &ReportService{
		flightRepo:      flightRepo,
		aircraftRepo:    aircraftRepo,
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		userRepo:        userRepo,
		now:             time.Now,
	}
}

// OverviewResponse is the dashboard headline block
type OverviewResponse struct {
	ActiveFlights       int64  `json:"active_flights"`
	CancelledFlights    int64  `json:"cancelled_flights"`
	AircraftCount       int64  `json:"aircraft_count"`
	PendingReservations int64  `json:"pending_reservations"`
	PaidReservations    int64  `json:"paid_reservations"`
	SeatsSold           int64  `json:"seats_sold"`
	TotalRevenue        string `json:"total_revenue"`
}

// Overview computes the dashboard headline figures
func (s *ReportService) Overview(ctx context.Context) (*OverviewResponse, error) {
	activeFlights, err := s.flightRepo.Count(ctx, shared.Filter{
		Filters: map[string]interface{}{"status": string(fleet.FlightStatusActive)},
	})
	if err != nil {
		return nil, err
	}
	cancelled, err := s.flightRepo.CountCancelled(ctx)
	if err != nil {
		return nil, err
	}
	aircraftCount, err := s.aircraftRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	pending, err := s.reservationRepo.CountByStatus(ctx, booking.ReservationStatusPending)
	if err != nil {
		return nil, err
	}
	paid, err := s.reservationRepo.CountByStatus(ctx, booking.ReservationStatusPaid)
	if err != nil {
		return nil, err
	}
	seats, err := s.reservationRepo.TotalSeats(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		ActiveFlights:       activeFlights,
		CancelledFlights:    cancelled,
		AircraftCount:       aircraftCount,
		PendingReservations: pending,
		PaidReservations:    paid,
		SeatsSold:           seats,
		TotalRevenue:        revenue.StringFixed(2),
	}, nil
}

// WeeklyBucket is one day of the trailing booking trend
type WeeklyBucket struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Weekday  string `json:"weekday"`
	Bookings int64  `json:"bookings"`
}

// WeeklyBookings counts reservations created on each of the trailing seven
// calendar days, oldest first, today last
func (s *ReportService) WeeklyBookings(ctx context.Context) ([]WeeklyBucket, error) {
	today := s.now()
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	buckets := make([]WeeklyBucket, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		from := start.AddDate(0, 0, -offset)
		to := from.AddDate(0, 0, 1)
		count, err := s.reservationRepo.CountCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, WeeklyBucket{
			Date:     from.Format("2006-01-02"),
			Weekday:  from.Weekday().String()[:3],
			Bookings: count,
		})
	}
	return buckets, nil
}

// RecentReservationEntry is one row of the dashboard activity feed
type RecentReservationEntry struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
	Initials      string    `json:"initials"`
	FlightCode    string    `json:"flight_code"`
	Route         string    `json:"route"`
	Seats         int       `json:"seats"`
	Total         string    `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecentReservations returns the latest reservations decorated with client
// and flight details. Rows whose client or flight cannot be resolved keep
// going with blanks rather than failing the feed.
func (s *ReportService) RecentReservations(ctx context.Context) ([]RecentReservationEntry, error) {
	reservations, err := s.reservationRepo.FindRecent(ctx, recentFeedSize)
	if err != nil {
		return nil, err
	}

	entries := make([]RecentReservationEntry, 0, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		entry := RecentReservationEntry{
			ReservationID: r.ID,
			Seats:         r.SeatCount,
			Total:         r.Total.StringFixed(2),
			Status:        r.Status.String(),
			CreatedAt:     r.CreatedAt,
		}
		if user, err := s.userRepo.FindByID(ctx, r.UserID); err == nil {
			entry.ClientName = user.FullName
			entry.Initials = user.Initials()
		}
		if flight, err := s.flightRepo.FindByID(ctx, r.FlightID); err == nil {
			entry.FlightCode = appfleet.FlightCode(flight.ID)
			entry.Route = flight.Route()
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DailyFlightRow is one flight of the daily occupancy report
type DailyFlightRow struct {
	FlightID    uuid.UUID `json:"flight_id"`
	Code        string    `json:"code"`
	Route       string    `json:"route"`
	DepartureAt time.Time `json:"departure_at"`
	Status      string    `json:"status"`
	SeatsBooked int       `json:"seats_booked"`
	Capacity    int       `json:"capacity"`
	LoadFactor  float64   `json:"load_factor"`
	Revenue     string    `json:"revenue"`
}

// DailyFlightsResponse is the occupancy report for one calendar day
type DailyFlightsResponse struct {
	Date          string           `json:"date"`
	Flights       []DailyFlightRow `json:"flights"`
	AvgLoadFactor float64          `json:"avg_load_factor"`
}

// DailyFlights reports occupancy for every flight departing on a calendar
// day. Flights on aircraft with unconfigured capacity appear in the list but
// are excluded from the average load factor.
func (s *ReportService) DailyFlights(ctx context.Context, day time.Time) (*DailyFlightsResponse, error) {
	flights, err := s.flightRepo.FindByDepartureDay(ctx, day)
	if err != nil {
		return nil, err
	}

	rows := make([]DailyFlightRow, 0, len(flights))
	loadFactorSum := 0.0
	loadFactorN := 0
	for i := range flights {
		flight := &flights[i]
		occupied, err := s.reservationRepo.OccupiedSeats(ctx, flight.ID, nil)
		if err != nil {
			return nil, err
		}

		row := DailyFlightRow{
			FlightID:    flight.ID,
			Code:        appfleet.FlightCode(flight.ID),
			Route:       flight.Route(),
			DepartureAt: flight.DepartureAt,
			Status:      flight.Status.String(),
			SeatsBooked: occupied,
			Revenue:     flight.Fare.Mul(decimal.NewFromInt(int64(occupied))).StringFixed(2),
		}
		if aircraft, err := s.aircraftRepo.FindByID(ctx, flight.AircraftID); err == nil && aircraft.Capacity > 0 {
			row.Capacity = aircraft.Capacity
			row.LoadFactor = roundOne(float64(occupied) / float64(aircraft.Capacity) * 100)
			loadFactorSum += row.LoadFactor
			loadFactorN++
		}
		rows = append(rows, row)
	}

	avg := 0.0
	if loadFactorN > 0 {
		avg = roundOne(loadFactorSum / float64(loadFactorN))
	}
	return &DailyFlightsResponse{
		Date:          day.Format("2006-01-02"),
		Flights:       rows,
		AvgLoadFactor: avg,
	}, nil
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}
