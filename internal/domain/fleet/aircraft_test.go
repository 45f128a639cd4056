package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetcongo/backend/internal/domain/shared"
)

func createTestAircraft(t *testing.T) *Aircraft {
	aircraft, err := NewAircraft("Boeing 737-800", 189, "JetCongo")
	require.NoError(t, err)
	aircraft.ClearDomainEvents()
	return aircraft
}

func TestNewAircraft(t *testing.T) {
	t.Run("creates available aircraft", func(t *testing.T) {
		aircraft, err := NewAircraft("Airbus A320", 180, "JetCongo")
		require.NoError(t, err)
		assert.Equal(t, AircraftStatusAvailable, aircraft.Status)
		assert.Equal(t, 180, aircraft.Capacity)
		assert.Len(t, aircraft.GetDomainEvents(), 1)
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := NewAircraft("Airbus A320", 0, "JetCongo")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)

		_, err = NewAircraft("Airbus A320", -5, "JetCongo")
		assert.Error(t, err)
	})

	t.Run("rejects empty model or airline", func(t *testing.T) {
		_, err := NewAircraft("", 100, "JetCongo")
		assert.Error(t, err)
		_, err = NewAircraft("A320", 100, "")
		assert.Error(t, err)
	})
}

func TestAircraft_UpdateDetails(t *testing.T) {
	aircraft := createTestAircraft(t)

	require.NoError(t, aircraft.UpdateDetails("Boeing 737 MAX", 200, "JetCongo"))
	assert.Equal(t, 200, aircraft.Capacity)

	assert.Error(t, aircraft.UpdateDetails("Boeing 737 MAX", 0, "JetCongo"))
}

func TestAircraft_ChangeStatus(t *testing.T) {
	t.Run("leaving available raises grounded event", func(t *testing.T) {
		aircraft := createTestAircraft(t)
		require.NoError(t, aircraft.ChangeStatus(AircraftStatusUnavailable))

		events := aircraft.GetDomainEvents()
		require.Len(t, events, 1)
		grounded, ok := events[0].(*AircraftGroundedEvent)
		require.True(t, ok)
		assert.Equal(t, AircraftStatusAvailable, grounded.OldStatus)
		assert.Equal(t, AircraftStatusUnavailable, grounded.NewStatus)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		aircraft := createTestAircraft(t)
		require.NoError(t, aircraft.ChangeStatus(AircraftStatusAvailable))
		assert.Empty(t, aircraft.GetDomainEvents())
	})

	t.Run("between non-available statuses raises nothing", func(t *testing.T) {
		aircraft := createTestAircraft(t)
		require.NoError(t, aircraft.ChangeStatus(AircraftStatusUnavailable))
		aircraft.ClearDomainEvents()
		require.NoError(t, aircraft.ChangeStatus(AircraftStatusBlocked))
		assert.Empty(t, aircraft.GetDomainEvents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		aircraft := createTestAircraft(t)
		assert.Error(t, aircraft.ChangeStatus(AircraftStatus("bogus")))
	})
}

func TestNormalizeAircraftStatus(t *testing.T) {
	tests := []struct {
		raw    string
		status AircraftStatus
		ok     bool
	}{
		{"available", AircraftStatusAvailable, true},
		{"disponible", AircraftStatusAvailable, true},
		{"Disponible", AircraftStatusAvailable, true},
		{"indisponible", AircraftStatusUnavailable, true},
		{"maintenance", AircraftStatusUnavailable, true},
		{"bloque", AircraftStatusBlocked, true},
		{"bloqué", AircraftStatusBlocked, true},
		{"BLOCKED", AircraftStatusBlocked, true},
		{"flying", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, ok := NormalizeAircraftStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.status, status)
		})
	}
}
