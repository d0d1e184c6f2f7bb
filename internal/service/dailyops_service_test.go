package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/entities"
)

type fakeDailyOpsRepo struct {
	items  []*entities.DayReservation
	emails map[int]string
	rooms  map[int][]entities.AssignedRoom
}

func (f *fakeDailyOpsRepo) ListRequestsFull(operatorID int) ([]*entities.DayReservation, error) {
	return f.items, nil
}

func (f *fakeDailyOpsRepo) ListLinkEmails(operatorID int, requestIDs []int) (map[int]string, error) {
	return f.emails, nil
}

func (f *fakeDailyOpsRepo) ListAssignedRooms(operatorID int, requestIDs []int) (map[int][]entities.AssignedRoom, error) {
	return f.rooms, nil
}

func dayItem(id int, checkIn, checkOut string) *entities.DayReservation {
	return &entities.DayReservation{
		ID:       id,
		CheckIn:  checkIn + "T00:00:00Z",
		CheckOut: checkOut + "T00:00:00Z",
	}
}

func containsID(items []*entities.DayReservation, id int) bool {
	for _, item := range items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func TestClassifyDay(t *testing.T) {
	repo := &fakeDailyOpsRepo{
		items: []*entities.DayReservation{
			dayItem(1, "2025-06-10", "2025-06-15"),
			dayItem(2, "2025-06-05", "2025-06-10"),
			dayItem(3, "2025-06-08", "2025-06-12"),
			dayItem(4, "2025-07-01", "2025-07-03"),
		},
		emails: map[int]string{1: "guest@example.com"},
		rooms:  map[int][]entities.AssignedRoom{1: {{RoomName: "101"}}},
	}
	svc := NewDailyOpsService(repo)

	snapshot, err := svc.ClassifyDay(1, "2025-06-10")
	require.NoError(t, err)

	assert.True(t, containsID(snapshot.Arrivals, 1))
	assert.False(t, containsID(snapshot.Stayovers, 1), "an arrival is never a stayover")
	assert.True(t, containsID(snapshot.Departures, 2))
	assert.True(t, containsID(snapshot.Stayovers, 3))
	assert.True(t, containsID(snapshot.Staying, 1))
	assert.True(t, containsID(snapshot.Staying, 2))
	assert.True(t, containsID(snapshot.Staying, 3))
	assert.False(t, containsID(snapshot.Staying, 4))

	assert.Equal(t, entities.DailyOperationsCounts{Arrivals: 1, Departures: 1, Stayovers: 1, Staying: 3}, snapshot.Counts)

	// Enrichment runs over staying and reaches the subset sets by pointer.
	require.NotNil(t, snapshot.Arrivals[0].LinkEmail)
	assert.Equal(t, "guest@example.com", *snapshot.Arrivals[0].LinkEmail)
	assert.Equal(t, []entities.AssignedRoom{{RoomName: "101"}}, snapshot.Arrivals[0].AssignedRooms)
}

func TestClassifyDayFullStay(t *testing.T) {
	repo := &fakeDailyOpsRepo{
		items:  []*entities.DayReservation{dayItem(1, "2025-06-10", "2025-06-15")},
		emails: map[int]string{},
		rooms:  map[int][]entities.AssignedRoom{},
	}
	svc := NewDailyOpsService(repo)

	checks := []struct {
		date                                  string
		arrival, departure, stayover, staying bool
	}{
		{"2025-06-09", false, false, false, false},
		{"2025-06-10", true, false, false, true},
		{"2025-06-12", false, false, true, true},
		{"2025-06-15", false, true, false, true},
		{"2025-06-16", false, false, false, false},
	}
	for _, check := range checks {
		snapshot, err := svc.ClassifyDay(1, check.date)
		require.NoError(t, err)
		assert.Equal(t, check.arrival, containsID(snapshot.Arrivals, 1), "arrivals on %s", check.date)
		assert.Equal(t, check.departure, containsID(snapshot.Departures, 1), "departures on %s", check.date)
		assert.Equal(t, check.stayover, containsID(snapshot.Stayovers, 1), "stayovers on %s", check.date)
		assert.Equal(t, check.staying, containsID(snapshot.Staying, 1), "staying on %s", check.date)
	}
}

func TestClassifyDayRejectsBadDate(t *testing.T) {
	svc := NewDailyOpsService(&fakeDailyOpsRepo{})
	_, err := svc.ClassifyDay(1, "10-06-2025")
	assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidRange))

	_, err = svc.ClassifyDay(1, "")
	assert.Error(t, err)
}
