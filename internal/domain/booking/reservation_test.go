package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetcongo/backend/internal/domain/shared"
)

// Test helpers
func createTestReservation(t *testing.T, seats int, fare string) *Reservation {
	r, err := NewReservation(uuid.New(), uuid.New(), seats, decimal.RequireFromString(fare))
	require.NoError(t, err)
	return r
}

// ============================================
// ReservationStatus Tests
// ============================================

func TestReservationStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  ReservationStatus
		isValid bool
	}{
		{ReservationStatusPending, true},
		{ReservationStatusConfirmed, true},
		{ReservationStatusPaid, true},
		{ReservationStatusCancelled, true},
		{ReservationStatus("INVALID"), false},
		{ReservationStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     ReservationStatus
		to       ReservationStatus
		canTrans bool
	}{
		// From PENDING
		{ReservationStatusPending, ReservationStatusConfirmed, true},
		{ReservationStatusPending, ReservationStatusPaid, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		// From CONFIRMED
		{ReservationStatusConfirmed, ReservationStatusCancelled, true},
		{ReservationStatusConfirmed, ReservationStatusPending, false},
		{ReservationStatusConfirmed, ReservationStatusPaid, false},
		// From PAID (terminal)
		{ReservationStatusPaid, ReservationStatusPending, false},
		{ReservationStatusPaid, ReservationStatusConfirmed, false},
		{ReservationStatusPaid, ReservationStatusCancelled, false},
		// From CANCELLED (terminal, never revivable)
		{ReservationStatusCancelled, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusConfirmed, false},
		{ReservationStatusCancelled, ReservationStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNormalizeReservationStatus(t *testing.T) {
	tests := []struct {
		raw    string
		status ReservationStatus
		ok     bool
	}{
		{"PENDING", ReservationStatusPending, true},
		{"EN_ATTENTE", ReservationStatusPending, true},
		{"en_attente", ReservationStatusPending, true},
		{"CONFIRMEE", ReservationStatusConfirmed, true},
		{"PAYE", ReservationStatusPaid, true},
		{"payé", ReservationStatusPaid, true},
		{"PAYÉE", ReservationStatusPaid, true},
		{"ANNULEE", ReservationStatusCancelled, true},
		{"annulée", ReservationStatusCancelled, true},
		{"canceled", ReservationStatusCancelled, true},
		{"  paid  ", ReservationStatusPaid, true},
		{"bogus", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			status, ok := NormalizeReservationStatus(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.status, status)
		})
	}
}

// ============================================
// Reservation Tests
// ============================================

func TestNewReservation(t *testing.T) {
	t.Run("creates pending reservation with computed total", func(t *testing.T) {
		r := createTestReservation(t, 3, "100.00")
		assert.Equal(t, ReservationStatusPending, r.Status)
		assert.Equal(t, 3, r.SeatCount)
		assert.Equal(t, "312.50", r.Total.StringFixed(2))
		assert.Len(t, r.GetDomainEvents(), 1)
	})

	t.Run("rejects non-positive seat count", func(t *testing.T) {
		_, err := NewReservation(uuid.New(), uuid.New(), 0, decimal.NewFromInt(100))
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("rejects negative fare", func(t *testing.T) {
		_, err := NewReservation(uuid.New(), uuid.New(), 1, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects empty user or flight", func(t *testing.T) {
		_, err := NewReservation(uuid.Nil, uuid.New(), 1, decimal.NewFromInt(10))
		assert.Error(t, err)
		_, err = NewReservation(uuid.New(), uuid.Nil, 1, decimal.NewFromInt(10))
		assert.Error(t, err)
	})
}

func TestReservation_AmendSeats(t *testing.T) {
	fare := decimal.RequireFromString("100.00")

	t.Run("recomputes total in full", func(t *testing.T) {
		r := createTestReservation(t, 2, "100.00")
		require.NoError(t, r.AmendSeats(5, fare))
		assert.Equal(t, 5, r.SeatCount)
		assert.Equal(t, "512.50", r.Total.StringFixed(2))
	})

	t.Run("repeated amendment with same seats does not drift", func(t *testing.T) {
		r := createTestReservation(t, 2, "100.00")
		for i := 0; i < 10; i++ {
			require.NoError(t, r.AmendSeats(4, fare))
		}
		assert.Equal(t, "412.50", r.Total.StringFixed(2))
	})

	t.Run("rejects amendment on paid reservation", func(t *testing.T) {
		r := createTestReservation(t, 2, "100.00")
		require.NoError(t, r.MarkPaid())
		err := r.AmendSeats(3, fare)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
	})

	t.Run("rejects amendment on cancelled reservation", func(t *testing.T) {
		r := createTestReservation(t, 2, "100.00")
		require.NoError(t, r.Cancel())
		assert.Error(t, r.AmendSeats(3, fare))
	})

	t.Run("rejects non-positive seats", func(t *testing.T) {
		r := createTestReservation(t, 2, "100.00")
		assert.Error(t, r.AmendSeats(0, fare))
		assert.Error(t, r.AmendSeats(-1, fare))
	})
}

func TestReservation_Confirm(t *testing.T) {
	r := createTestReservation(t, 1, "50.00")
	require.NoError(t, r.Confirm())
	assert.Equal(t, ReservationStatusConfirmed, r.Status)
}

func TestReservation_MarkPaid(t *testing.T) {
	t.Run("from pending", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.MarkPaid())
		assert.True(t, r.IsPaid())
	})

	t.Run("from confirmed", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.Confirm())
		require.NoError(t, r.MarkPaid())
		assert.True(t, r.IsPaid())
	})

	t.Run("fails on cancelled reservation", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.Cancel())
		assert.Error(t, r.MarkPaid())
	})

	t.Run("fails on already paid reservation", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.MarkPaid())
		assert.Error(t, r.MarkPaid())
	})
}

func TestReservation_Cancel(t *testing.T) {
	t.Run("releases seats from capacity", func(t *testing.T) {
		r := createTestReservation(t, 4, "50.00")
		assert.True(t, r.CountsTowardCapacity())
		require.NoError(t, r.Cancel())
		assert.False(t, r.CountsTowardCapacity())
	})

	t.Run("is idempotent", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.Cancel())
		require.NoError(t, r.Cancel())
		assert.True(t, r.IsCancelled())
	})

	t.Run("from confirmed", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.Confirm())
		require.NoError(t, r.Cancel())
		assert.True(t, r.IsCancelled())
	})

	t.Run("fails on paid reservation", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.MarkPaid())
		assert.Error(t, r.Cancel())
	})
}

func TestReservation_TransitionTo(t *testing.T) {
	t.Run("same status is a no-op", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.TransitionTo(ReservationStatusPending))
		assert.Equal(t, ReservationStatusPending, r.Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		assert.Error(t, r.TransitionTo(ReservationStatus("bogus")))
	})

	t.Run("rejects leaving cancelled", func(t *testing.T) {
		r := createTestReservation(t, 1, "50.00")
		require.NoError(t, r.Cancel())
		assert.Error(t, r.TransitionTo(ReservationStatusPending))
	})
}
