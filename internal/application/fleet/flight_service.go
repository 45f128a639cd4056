package fleet

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// FlightService handles flight scheduling and the public flight search
type FlightService struct {
	flightRepo      fleet.FlightRepository
	aircraftRepo    fleet.AircraftRepository
	reservationRepo booking.ReservationRepository
}

// NewFlightService creates a new FlightService
func NewFlightService(
	flightRepo fleet.FlightRepository,
	aircraftRepo fleet.AircraftRepository,
	reservationRepo booking.ReservationRepository,
) *FlightService {
	return &FlightService{
		flightRepo:      flightRepo,
		aircraftRepo:    aircraftRepo,
		reservationRepo: reservationRepo,
	}
}

// Create schedules a new flight on an existing aircraft
func (s *FlightService) Create(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error) {
	fare, err := decimal.NewFromString(req.Fare)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Fare must be a decimal number")
	}

	if _, err := s.aircraftRepo.FindByID(ctx, req.AircraftID); err != nil {
		return nil, err
	}

	flight, err := fleet.NewFlight(req.Origin, req.Destination, req.DepartureAt, req.ArrivalAt, fare, req.AircraftID)
	if err != nil {
		return nil, err
	}
	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	response := ToFlightResponse(flight)
	return &response, nil
}

// Update changes a flight's route, times and fare.
// Reservations keep the total they were priced at; only future bookings and
// amendments see the new fare.
func (s *FlightService) Update(ctx context.Context, id uuid.UUID, req UpdateFlightRequest) (*FlightResponse, error) {
	fare, err := decimal.NewFromString(req.Fare)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Fare must be a decimal number")
	}

	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := flight.UpdateSchedule(req.Origin, req.Destination, req.DepartureAt, req.ArrivalAt, fare); err != nil {
		return nil, err
	}
	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	response := ToFlightResponse(flight)
	return &response, nil
}

// ChangeStatus sets a flight's status from an administrative action. Raw
// status spellings are normalized first.
func (s *FlightService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeFlightStatusRequest) (*FlightResponse, error) {
	status, ok := fleet.NormalizeFlightStatus(req.Status)
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown flight status")
	}

	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := flight.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.flightRepo.Save(ctx, flight); err != nil {
		return nil, err
	}

	response := ToFlightResponse(flight)
	return &response, nil
}

// Delete removes a flight. Flights holding any reservation cannot be
// deleted.
func (s *FlightService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.flightRepo.FindByID(ctx, id); err != nil {
		return err
	}

	reservationCount, err := s.reservationRepo.CountByFlight(ctx, id)
	if err != nil {
		return err
	}
	if reservationCount > 0 {
		return shared.NewDomainError("CONFLICT", "Flight has existing reservations")
	}

	return s.flightRepo.Delete(ctx, id)
}

// Get retrieves a flight by ID regardless of status (back-office)
func (s *FlightService) Get(ctx context.Context, id uuid.UUID) (*AdminFlightResponse, error) {
	flight, err := s.flightRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response, err := s.toAdminResponse(ctx, flight)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetActive retrieves an ACTIVE flight by ID. Blocked and cancelled flights
// are not visible to the public detail page.
func (s *FlightService) GetActive(ctx context.Context, id uuid.UUID) (*FlightResponse, error) {
	flight, err := s.flightRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToFlightResponse(flight)
	return &response, nil
}

// Search runs the public flight search over ACTIVE flights
func (s *FlightService) Search(ctx context.Context, req SearchFlightsRequest) (*FlightSearchResponse, error) {
	criteria, err := s.buildCriteria(req)
	if err != nil {
		return nil, err
	}

	flights, hasMore, err := s.flightRepo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	items := make([]FlightResponse, len(flights))
	for i := range flights {
		items[i] = ToFlightResponse(&flights[i])
	}
	return &FlightSearchResponse{
		Items:   items,
		Page:    criteria.Page,
		Limit:   criteria.Limit,
		HasMore: hasMore,
	}, nil
}

// List retrieves flights with occupancy figures (back-office)
func (s *FlightService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[AdminFlightResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	flights, err := s.flightRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.flightRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]AdminFlightResponse, len(flights))
	for i := range flights {
		response, err := s.toAdminResponse(ctx, &flights[i])
		if err != nil {
			return nil, err
		}
		responses[i] = *response
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// buildCriteria validates and defaults the public search query
func (s *FlightService) buildCriteria(req SearchFlightsRequest) (fleet.SearchCriteria, error) {
	criteria := fleet.SearchCriteria{
		Origin:      req.Origin,
		Destination: req.Destination,
		Page:        req.Page,
		Limit:       req.Limit,
	}
	if criteria.Page <= 0 {
		criteria.Page = 1
	}
	if criteria.Limit <= 0 {
		criteria.Limit = defaultSearchLimit
	}
	if criteria.Limit > maxSearchLimit {
		criteria.Limit = maxSearchLimit
	}

	switch req.Sort {
	case "", string(fleet.FlightSortPriceAsc):
		criteria.Sort = fleet.FlightSortPriceAsc
	case string(fleet.FlightSortPriceDesc):
		criteria.Sort = fleet.FlightSortPriceDesc
	default:
		return fleet.SearchCriteria{}, shared.NewDomainError("INVALID_INPUT", "Sort must be price_asc or price_desc")
	}

	if req.DepartureDate != "" {
		day, err := time.Parse("2006-01-02", req.DepartureDate)
		if err != nil {
			return fleet.SearchCriteria{}, shared.NewDomainError("INVALID_INPUT", "Date must be formatted YYYY-MM-DD")
		}
		criteria.DepartureDate = &day
	}

	return criteria, nil
}

// toAdminResponse decorates a flight with seats booked and load factor.
// Aircraft with unconfigured capacity report a zero load factor rather than
// dividing by zero.
func (s *FlightService) toAdminResponse(ctx context.Context, flight *fleet.Flight) (*AdminFlightResponse, error) {
	occupied, err := s.reservationRepo.OccupiedSeats(ctx, flight.ID, nil)
	if err != nil {
		return nil, err
	}

	capacity := 0
	loadFactor := 0.0
	if aircraft, err := s.aircraftRepo.FindByID(ctx, flight.AircraftID); err == nil {
		capacity = aircraft.Capacity
		if capacity > 0 {
			loadFactor = math.Round(float64(occupied)/float64(capacity)*1000) / 10
		}
	}

	return &AdminFlightResponse{
		FlightResponse: ToFlightResponse(flight),
		SeatsBooked:    occupied,
		Capacity:       capacity,
		LoadFactor:     loadFactor,
	}, nil
}
