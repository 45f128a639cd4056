package fleet

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// AircraftService handles aircraft fleet administration.
// Taking an aircraft out of AVAILABLE raises a grounding event; the
// flight-blocking handler reacts by stopping sales on its active flights.
type AircraftService struct {
	aircraftRepo   fleet.AircraftRepository
	flightRepo     fleet.FlightRepository
	eventPublisher shared.EventPublisher
}

// NewAircraftService creates a new AircraftService
func NewAircraftService(aircraftRepo fleet.AircraftRepository, flightRepo fleet.FlightRepository) *AircraftService {
	return &AircraftService{
		aircraftRepo: aircraftRepo,
		flightRepo:   flightRepo,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *AircraftService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create registers a new aircraft
func (s *AircraftService) Create(ctx context.Context, req CreateAircraftRequest) (*AircraftResponse, error) {
	aircraft, err := fleet.NewAircraft(req.Model, req.Capacity, req.Airline)
	if err != nil {
		return nil, err
	}
	if err := s.aircraftRepo.Save(ctx, aircraft); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, aircraft)

	response := ToAircraftResponse(aircraft)
	return &response, nil
}

// Update changes an aircraft's model, capacity and airline
func (s *AircraftService) Update(ctx context.Context, id uuid.UUID, req UpdateAircraftRequest) (*AircraftResponse, error) {
	aircraft, err := s.aircraftRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aircraft.UpdateDetails(req.Model, req.Capacity, req.Airline); err != nil {
		return nil, err
	}
	if err := s.aircraftRepo.Save(ctx, aircraft); err != nil {
		return nil, err
	}

	response := ToAircraftResponse(aircraft)
	return &response, nil
}

// ChangeStatus transitions an aircraft's operating status. Raw status
// spellings are normalized before the transition is applied.
func (s *AircraftService) ChangeStatus(ctx context.Context, id uuid.UUID, req ChangeAircraftStatusRequest) (*AircraftResponse, error) {
	status, ok := fleet.NormalizeAircraftStatus(req.Status)
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown aircraft status")
	}

	aircraft, err := s.aircraftRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := aircraft.ChangeStatus(status); err != nil {
		return nil, err
	}
	if err := s.aircraftRepo.Save(ctx, aircraft); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, aircraft)

	response := ToAircraftResponse(aircraft)
	return &response, nil
}

// Delete removes an aircraft. Aircraft referenced by any flight cannot be
// deleted.
func (s *AircraftService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.aircraftRepo.FindByID(ctx, id); err != nil {
		return err
	}

	flightCount, err := s.flightRepo.CountByAircraft(ctx, id)
	if err != nil {
		return err
	}
	if flightCount > 0 {
		return shared.NewDomainError("CONFLICT", "Aircraft is referenced by existing flights")
	}

	return s.aircraftRepo.Delete(ctx, id)
}

// Get retrieves an aircraft by ID
func (s *AircraftService) Get(ctx context.Context, id uuid.UUID) (*AircraftResponse, error) {
	aircraft, err := s.aircraftRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAircraftResponse(aircraft)
	return &response, nil
}

// List retrieves aircraft with filtering and pagination
func (s *AircraftService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[AircraftResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	aircraft, err := s.aircraftRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.aircraftRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]AircraftResponse, len(aircraft))
	for i := range aircraft {
		responses[i] = ToAircraftResponse(&aircraft[i])
		count, err := s.flightRepo.CountByAircraft(ctx, aircraft[i].ID)
		if err != nil {
			return nil, err
		}
		responses[i].FlightCount = count
	}
	page := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &page, nil
}

// publishDomainEvents publishes all domain events from the aircraft
func (s *AircraftService) publishDomainEvents(ctx context.Context, a *fleet.Aircraft) {
	if s.eventPublisher == nil || a == nil {
		return
	}
	events := a.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	_ = s.eventPublisher.Publish(ctx, events...)
	a.ClearDomainEvents()
}
