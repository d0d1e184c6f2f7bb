package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type fakeTimelineRepo struct {
	rooms     []db.Room
	records   []entities.AssignmentRecord
	roomCalls int
}

func (f *fakeTimelineRepo) ListRoomsByProperty(operatorID int, code string, minCapacity *int) ([]db.Room, error) {
	f.roomCalls++
	var out []db.Room
	for _, room := range f.rooms {
		if room.AccommodationCode != code {
			continue
		}
		if minCapacity != nil && (room.Capacity == nil || *room.Capacity < *minCapacity) {
			continue
		}
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeTimelineRepo) ListAssignmentsForRooms(operatorID int, roomIDs []int, start, end time.Time) ([]entities.AssignmentRecord, error) {
	ids := make(map[int]bool, len(roomIDs))
	for _, id := range roomIDs {
		ids[id] = true
	}
	var out []entities.AssignmentRecord
	for _, rec := range f.records {
		if ids[rec.RoomID] && (!rec.CheckInDate.After(end) || !rec.CheckOutDate.Before(start)) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func intPtr(v int) *int { return &v }

func newTimelineFixture(t *testing.T) *fakeTimelineRepo {
	t.Helper()
	return &fakeTimelineRepo{
		rooms: []db.Room{
			{ID: 1, AccommodationCode: "HOTEL-A", RoomName: "101", Capacity: intPtr(2)},
			{ID: 2, AccommodationCode: "HOTEL-A", RoomName: "102", Capacity: intPtr(4)},
			{ID: 3, AccommodationCode: "HOTEL-A", RoomName: "suite", Capacity: nil},
		},
		records: []entities.AssignmentRecord{
			{
				ID: 10, RoomID: 1, AccommodationRequestID: 5,
				CheckInDate:  date(t, "2025-06-02"),
				CheckOutDate: date(t, "2025-06-04"),
				Room:         entities.RoomSummary{AccommodationCode: "HOTEL-A", RoomName: "101"},
				Request:      entities.RequestSummary{ID: 5, EstablishmentCode: "HOTEL-A"},
			},
		},
	}
}

func TestBuildTimeline(t *testing.T) {
	t.Run("grid covers checkout day inclusively", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		timeline, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 7, nil, "")
		require.NoError(t, err)

		assert.Equal(t, "2025-06-01", timeline.StartDate)
		assert.Equal(t, "2025-06-07", timeline.EndDate)
		assert.Len(t, timeline.AssignmentsByDate, 7)

		// Occupied nights are the 2nd and 3rd; the grid also shows the 4th,
		// the checkout day, on the room's row.
		assert.Empty(t, timeline.AssignmentsByDate["2025-06-01"][1])
		assert.Len(t, timeline.AssignmentsByDate["2025-06-02"][1], 1)
		assert.Len(t, timeline.AssignmentsByDate["2025-06-03"][1], 1)
		assert.Len(t, timeline.AssignmentsByDate["2025-06-04"][1], 1)
		assert.Empty(t, timeline.AssignmentsByDate["2025-06-05"][1])
	})

	t.Run("room ordering and capacity filter", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		timeline, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 3, intPtr(3), "")
		require.NoError(t, err)
		require.Len(t, timeline.Rooms, 1)
		assert.Equal(t, "102", timeline.Rooms[0].RoomName)
	})

	t.Run("occupied filter keeps only rooms with assignments", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		timeline, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 7, nil, AvailabilityOccupied)
		require.NoError(t, err)
		require.Len(t, timeline.Rooms, 1)
		assert.Equal(t, 1, timeline.Rooms[0].ID)
	})

	t.Run("free filter keeps only rooms without assignments", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		timeline, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 7, nil, AvailabilityFree)
		require.NoError(t, err)
		require.Len(t, timeline.Rooms, 2)
		for _, room := range timeline.Rooms {
			assert.Empty(t, room.Assignments)
		}
	})

	t.Run("unknown property yields seeded empty grid", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		timeline, err := svc.BuildTimeline(1, "NOWHERE", date(t, "2025-06-01"), 3, nil, "")
		require.NoError(t, err)
		assert.Empty(t, timeline.Rooms)
		assert.Len(t, timeline.AssignmentsByDate, 3)
		for _, byRoom := range timeline.AssignmentsByDate {
			assert.Empty(t, byRoom)
		}
	})

	t.Run("building twice yields identical output", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		first, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 7, nil, "")
		require.NoError(t, err)
		second, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 7, nil, "")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("non-positive window rejected", func(t *testing.T) {
		repo := newTimelineFixture(t)
		svc := NewTimelineService(repo)
		_, err := svc.BuildTimeline(1, "HOTEL-A", date(t, "2025-06-01"), 0, nil, "")
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRange))
	})
}
