package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
)

func TestIsRoomAvailable(t *testing.T) {
	store := newFakeStore()
	store.assignments[1] = db.RoomAssignment{
		ID: 1, RoomID: 7, AccommodationRequestID: 1,
		CheckInDate:  date(t, "2025-01-01"),
		CheckOutDate: date(t, "2025-01-05"),
	}
	checker := NewAvailabilityChecker(store)

	t.Run("touching checkout day is free", func(t *testing.T) {
		available, err := checker.IsRoomAvailable(1, 7, stay(t, "2025-01-05", "2025-01-10"), nil)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("sharing a night conflicts", func(t *testing.T) {
		available, err := checker.IsRoomAvailable(1, 7, stay(t, "2025-01-04", "2025-01-06"), nil)
		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("other rooms do not count", func(t *testing.T) {
		available, err := checker.IsRoomAvailable(1, 8, stay(t, "2025-01-04", "2025-01-06"), nil)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("excluded assignment does not conflict with itself", func(t *testing.T) {
		exclude := 1
		available, err := checker.IsRoomAvailable(1, 7, stay(t, "2025-01-02", "2025-01-06"), &exclude)
		require.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("storage failure propagates unmodified", func(t *testing.T) {
		broken := newFakeStore()
		broken.failWith = apperrors.Storage(assert.AnError)
		_, err := NewAvailabilityChecker(broken).IsRoomAvailable(1, 7, stay(t, "2025-01-01", "2025-01-02"), nil)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindStorage))
	})
}
