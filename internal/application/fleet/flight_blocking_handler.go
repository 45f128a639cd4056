package fleet

import (
	"context"

	"go.uber.org/zap"

	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
)

// FlightBlockingHandler reacts to aircraft grounding by force-blocking the
// ACTIVE flights the aircraft operates. Cancelled flights are left untouched.
type FlightBlockingHandler struct {
	flightRepo     fleet.FlightRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewFlightBlockingHandler creates a new FlightBlockingHandler
func NewFlightBlockingHandler(flightRepo fleet.FlightRepository, logger *zap.Logger) *FlightBlockingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FlightBlockingHandler{
		flightRepo: flightRepo,
		logger:     logger,
	}
}

// SetEventPublisher sets the publisher used to announce blocked flights
func (h *FlightBlockingHandler) SetEventPublisher(publisher shared.EventPublisher) {
	h.eventPublisher = publisher
}

// EventTypes returns the event types this handler subscribes to
func (h *FlightBlockingHandler) EventTypes() []string {
	return []string{fleet.EventTypeAircraftGrounded}
}

// Handle blocks every ACTIVE flight operated by the grounded aircraft.
// A failure on one flight is logged and the cascade continues with the rest.
func (h *FlightBlockingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	grounded, ok := event.(*fleet.AircraftGroundedEvent)
	if !ok {
		return nil
	}

	flights, err := h.flightRepo.FindActiveByAircraft(ctx, grounded.AircraftID)
	if err != nil {
		return err
	}

	blocked := 0
	for i := range flights {
		flight := &flights[i]
		if !flight.Block() {
			continue
		}
		if err := h.flightRepo.Save(ctx, flight); err != nil {
			h.logger.Error("Failed to block flight after aircraft grounding",
				zap.String("flight_id", flight.ID.String()),
				zap.String("aircraft_id", grounded.AircraftID.String()),
				zap.Error(err))
			continue
		}
		blocked++
		if h.eventPublisher != nil {
			_ = h.eventPublisher.Publish(ctx, fleet.NewFlightBlockedEvent(flight))
		}
	}

	h.logger.Info("Aircraft grounding cascade completed",
		zap.String("aircraft_id", grounded.AircraftID.String()),
		zap.String("new_status", grounded.NewStatus.String()),
		zap.Int("flights_blocked", blocked))

	return nil
}

var _ shared.EventHandler = (*FlightBlockingHandler)(nil)
