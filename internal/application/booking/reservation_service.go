package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/jetcongo/backend/internal/domain/booking"
	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/identity"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// UserDirectory resolves user display data for back-office views
type UserDirectory interface {
	FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error)
}

// ReservationService handles reservation lifecycle operations.
// Both the end-user and back-office flows go through this service: one code
// path, one capacity enforcement point.
type ReservationService struct {
	txScope         TransactionScope
	reservationRepo booking.ReservationRepository
	flightRepo      fleet.FlightRepository
	users           UserDirectory
	eventPublisher  shared.EventPublisher
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	txScope TransactionScope,
	reservationRepo booking.ReservationRepository,
	flightRepo fleet.FlightRepository,
	users UserDirectory,
) *ReservationService {
	return &ReservationService{
		txScope:         txScope,
		reservationRepo: reservationRepo,
		flightRepo:      flightRepo,
		users:           users,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReservationService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create books seats on a flight for a user.
// The flight row is locked before the capacity ledger is consulted, so the
// check-then-act sequence serializes against concurrent mutations on the
// same flight.
func (s *ReservationService) Create(ctx context.Context, userID uuid.UUID, req CreateReservationRequest) (*ReservationResponse, error) {
	if req.Seats <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seat count must be a positive integer")
	}

	var reservation *booking.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		flight, err := repos.FlightRepo().FindByIDForUpdate(ctx, req.FlightID)
		if err != nil {
			return err
		}
		if !flight.IsActive() {
			return shared.NewDomainError("INVALID_STATE", "Flight is not open for booking")
		}

		aircraft, err := repos.AircraftRepo().FindByID(ctx, flight.AircraftID)
		if err != nil {
			return err
		}
		if aircraft.Capacity <= 0 {
			return shared.NewDomainError("INVALID_INPUT", "Aircraft capacity is not configured")
		}

		occupied, err := repos.ReservationRepo().OccupiedSeats(ctx, flight.ID, nil)
		if err != nil {
			return err
		}
		remaining := aircraft.Capacity - occupied
		if req.Seats > remaining {
			return shared.NewCapacityExceededError(req.Seats, remaining)
		}

		reservation, err = booking.NewReservation(userID, flight.ID, req.Seats, flight.Fare)
		if err != nil {
			return err
		}

		return repos.ReservationRepo().Save(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, reservation)

	response := ToReservationResponse(reservation)
	return &response, nil
}

// Amend changes a reservation's seat count and/or status.
// Seat changes recompute remaining capacity excluding the reservation's own
// prior seats, then recompute the total in full at the flight's current fare.
func (s *ReservationService) Amend(ctx context.Context, reservationID uuid.UUID, req AmendReservationRequest) (*ReservationResponse, error) {
	var targetStatus *booking.ReservationStatus
	if req.Status != nil {
		status, ok := booking.NormalizeReservationStatus(*req.Status)
		if !ok {
			return nil, shared.NewDomainError("INVALID_INPUT", "Unknown reservation status")
		}
		targetStatus = &status
	}

	var reservation *booking.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		current, err := repos.ReservationRepo().FindByID(ctx, reservationID)
		if err != nil {
			return err
		}

		// Lock ordering: flight first, reservation second, matching Create
		// so concurrent seat mutations on one flight cannot deadlock.
		flight, err := repos.FlightRepo().FindByIDForUpdate(ctx, current.FlightID)
		if err != nil {
			return err
		}
		reservation, err = repos.ReservationRepo().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}

		if req.Seats != nil {
			aircraft, err := repos.AircraftRepo().FindByID(ctx, flight.AircraftID)
			if err != nil {
				return err
			}
			if aircraft.Capacity <= 0 {
				return shared.NewDomainError("INVALID_INPUT", "Aircraft capacity is not configured")
			}

			occupied, err := repos.ReservationRepo().OccupiedSeats(ctx, flight.ID, &reservation.ID)
			if err != nil {
				return err
			}
			remaining := aircraft.Capacity - occupied
			if *req.Seats > remaining {
				return shared.NewCapacityExceededError(*req.Seats, remaining)
			}

			if err := reservation.AmendSeats(*req.Seats, flight.Fare); err != nil {
				return err
			}
		}

		if targetStatus != nil {
			if *targetStatus == booking.ReservationStatusCancelled {
				if err := reservation.Cancel(); err != nil {
					return err
				}
			} else if err := reservation.TransitionTo(*targetStatus); err != nil {
				return err
			}
		}

		return repos.ReservationRepo().Save(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, reservation)

	response := ToReservationResponse(reservation)
	return &response, nil
}

// Confirm transitions a reservation from PENDING to CONFIRMED
func (s *ReservationService) Confirm(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error) {
	var reservation *booking.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		reservation, err = repos.ReservationRepo().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := reservation.Confirm(); err != nil {
			return err
		}
		return repos.ReservationRepo().Save(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, reservation)

	response := ToReservationResponse(reservation)
	return &response, nil
}

// Cancel sets a reservation to CANCELLED, releasing its seats back to the
// flight's pool. Cancelling an already-cancelled reservation is a no-op.
// Administrative flow only; end users cannot cancel.
func (s *ReservationService) Cancel(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error) {
	var reservation *booking.Reservation
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		reservation, err = repos.ReservationRepo().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return err
		}
		if err := reservation.Cancel(); err != nil {
			return err
		}
		return repos.ReservationRepo().Save(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, reservation)

	response := ToReservationResponse(reservation)
	return &response, nil
}

// GetOwned retrieves a reservation with its flight, enforcing ownership.
// Serves the end-user payment page.
func (s *ReservationService) GetOwned(ctx context.Context, userID, reservationID uuid.UUID) (*ReservationDetailResponse, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.UserID != userID {
		return nil, shared.ErrForbidden
	}

	flight, err := s.flightRepo.FindByID(ctx, reservation.FlightID)
	if err != nil {
		return nil, err
	}

	response := ToReservationDetailResponse(reservation, flight)
	return &response, nil
}

// GetByID retrieves a reservation without an ownership check (back-office)
func (s *ReservationService) GetByID(ctx context.Context, reservationID uuid.UUID) (*ReservationResponse, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	response := ToReservationResponse(reservation)
	return &response, nil
}

// ListByUser retrieves the reservations owned by a user
func (s *ReservationService) ListByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ReservationResponse, error) {
	reservations, err := s.reservationRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = ToReservationResponse(&reservations[i])
	}
	return responses, nil
}

// List retrieves reservations with filtering and pagination, joined with
// client name and flight route (back-office). Rows whose user or flight has
// since been removed keep blank display fields rather than failing the list.
func (s *ReservationService) List(ctx context.Context, filter shared.Filter) ([]AdminReservationEntry, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	reservations, err := s.reservationRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.reservationRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	names := make(map[uuid.UUID]string)
	routes := make(map[uuid.UUID]string)
	entries := make([]AdminReservationEntry, len(reservations))
	for i := range reservations {
		r := &reservations[i]
		if _, ok := names[r.UserID]; !ok {
			names[r.UserID] = ""
			if s.users != nil {
				if user, err := s.users.FindByID(ctx, r.UserID); err == nil {
					names[r.UserID] = user.FullName
				}
			}
		}
		if _, ok := routes[r.FlightID]; !ok {
			routes[r.FlightID] = ""
			if flight, err := s.flightRepo.FindByID(ctx, r.FlightID); err == nil {
				routes[r.FlightID] = flight.Route()
			}
		}
		entries[i] = AdminReservationEntry{
			ReservationResponse: ToReservationResponse(r),
			ClientName:          names[r.UserID],
			Route:               routes[r.FlightID],
		}
	}
	return entries, total, nil
}

// Delete removes a reservation record (back-office)
func (s *ReservationService) Delete(ctx context.Context, reservationID uuid.UUID) error {
	if _, err := s.reservationRepo.FindByID(ctx, reservationID); err != nil {
		return err
	}
	return s.reservationRepo.Delete(ctx, reservationID)
}

// publishDomainEvents publishes all domain events from the reservation
func (s *ReservationService) publishDomainEvents(ctx context.Context, r *booking.Reservation) {
	if s.eventPublisher == nil || r == nil {
		return
	}
	events := r.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
	r.ClearDomainEvents()
}
