package fleet

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jetcongo/backend/internal/domain/fleet"
	"github.com/jetcongo/backend/internal/domain/shared"
)

func newGroundedTestAircraft(t *testing.T) *fleet.Aircraft {
	aircraft, err := fleet.NewAircraft("Boeing 737-800", 180, "Jet Congo")
	require.NoError(t, err)
	aircraft.ClearDomainEvents()
	return aircraft
}

func TestAircraftService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("registers an aircraft and publishes its creation", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		publisher := &recordingPublisher{}
		service := NewAircraftService(aircraftRepo, new(MockFlightRepository))
		service.SetEventPublisher(publisher)

		aircraftRepo.On("Save", ctx, mock.AnythingOfType("*fleet.Aircraft")).Return(nil)

		resp, err := service.Create(ctx, CreateAircraftRequest{Model: "ATR 72-600", Capacity: 70, Airline: "Jet Congo"})
		require.NoError(t, err)

		assert.Equal(t, "ATR 72-600", resp.Model)
		assert.Equal(t, 70, resp.Capacity)
		assert.Equal(t, "AVAILABLE", resp.Status)
		require.Len(t, publisher.events, 1)
		assert.Equal(t, fleet.EventTypeAircraftCreated, publisher.events[0].EventType())
	})

	t.Run("rejects a non-positive capacity", func(t *testing.T) {
		service := NewAircraftService(new(MockAircraftRepository), new(MockFlightRepository))

		_, err := service.Create(ctx, CreateAircraftRequest{Model: "ATR 72-600", Capacity: 0, Airline: "Jet Congo"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestAircraftService_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("grounding publishes the cascade event", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		publisher := &recordingPublisher{}
		service := NewAircraftService(aircraftRepo, new(MockFlightRepository))
		service.SetEventPublisher(publisher)

		aircraft := newGroundedTestAircraft(t)
		aircraftRepo.On("FindByID", ctx, aircraft.ID).Return(aircraft, nil)
		aircraftRepo.On("Save", ctx, aircraft).Return(nil)

		resp, err := service.ChangeStatus(ctx, aircraft.ID, ChangeAircraftStatusRequest{Status: "maintenance"})
		require.NoError(t, err)

		assert.Equal(t, "UNAVAILABLE", resp.Status)
		require.Len(t, publisher.events, 1)
		grounded, ok := publisher.events[0].(*fleet.AircraftGroundedEvent)
		require.True(t, ok)
		assert.Equal(t, fleet.AircraftStatusAvailable, grounded.OldStatus)
		assert.Equal(t, fleet.AircraftStatusUnavailable, grounded.NewStatus)
	})

	t.Run("same status is a no-op without events", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		publisher := &recordingPublisher{}
		service := NewAircraftService(aircraftRepo, new(MockFlightRepository))
		service.SetEventPublisher(publisher)

		aircraft := newGroundedTestAircraft(t)
		aircraftRepo.On("FindByID", ctx, aircraft.ID).Return(aircraft, nil)
		aircraftRepo.On("Save", ctx, aircraft).Return(nil)

		_, err := service.ChangeStatus(ctx, aircraft.ID, ChangeAircraftStatusRequest{Status: "disponible"})
		require.NoError(t, err)
		assert.Empty(t, publisher.events)
	})

	t.Run("rejects unknown spellings", func(t *testing.T) {
		service := NewAircraftService(new(MockAircraftRepository), new(MockFlightRepository))

		_, err := service.ChangeStatus(ctx, uuid.New(), ChangeAircraftStatusRequest{Status: "parked"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestAircraftService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("carries the flight count per aircraft", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		flightRepo := new(MockFlightRepository)
		service := NewAircraftService(aircraftRepo, flightRepo)

		first := newGroundedTestAircraft(t)
		second := newGroundedTestAircraft(t)
		aircraftRepo.On("FindAll", ctx, mock.AnythingOfType("shared.Filter")).Return([]fleet.Aircraft{*first, *second}, nil)
		aircraftRepo.On("Count", ctx, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)
		flightRepo.On("CountByAircraft", ctx, first.ID).Return(int64(4), nil)
		flightRepo.On("CountByAircraft", ctx, second.ID).Return(int64(0), nil)

		page, err := service.List(ctx, shared.Filter{Page: 1, PageSize: 20})
		require.NoError(t, err)

		require.Len(t, page.Items, 2)
		assert.Equal(t, int64(4), page.Items[0].FlightCount)
		assert.Equal(t, int64(0), page.Items[1].FlightCount)
		assert.Equal(t, int64(2), page.Total)
	})
}

func TestAircraftService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses deletion while flights reference the aircraft", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		flightRepo := new(MockFlightRepository)
		service := NewAircraftService(aircraftRepo, flightRepo)

		aircraft := newGroundedTestAircraft(t)
		aircraftRepo.On("FindByID", ctx, aircraft.ID).Return(aircraft, nil)
		flightRepo.On("CountByAircraft", ctx, aircraft.ID).Return(int64(3), nil)

		err := service.Delete(ctx, aircraft.ID)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		aircraftRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unreferenced aircraft", func(t *testing.T) {
		aircraftRepo := new(MockAircraftRepository)
		flightRepo := new(MockFlightRepository)
		service := NewAircraftService(aircraftRepo, flightRepo)

		aircraft := newGroundedTestAircraft(t)
		aircraftRepo.On("FindByID", ctx, aircraft.ID).Return(aircraft, nil)
		flightRepo.On("CountByAircraft", ctx, aircraft.ID).Return(int64(0), nil)
		aircraftRepo.On("Delete", ctx, aircraft.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, aircraft.ID))
	})
}
