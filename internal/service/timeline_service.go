package service

import (
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

// Availability filter values for the timeline.
const (
	AvailabilityOccupied = "occupied"
	AvailabilityFree     = "free"
)

// TimelineRepository is the read side the grid is built from. Rooms come back
// ordered by capacity ascending with unknown capacities last; assignments are
// prefiltered with a loose inclusive window test, the exact day coverage is
// decided here.
type TimelineRepository interface {
	ListRoomsByProperty(operatorID int, accommodationCode string, minCapacity *int) ([]db.Room, error)
	ListAssignmentsForRooms(operatorID int, roomIDs []int, start, end time.Time) ([]entities.AssignmentRecord, error)
}

// TimelineService builds the day-by-room occupancy grid. Reads only, so
// building the same window twice without intervening writes is idempotent.
type TimelineService struct {
	Repo TimelineRepository
}

func NewTimelineService(repo TimelineRepository) *TimelineService {
	return &TimelineService{Repo: repo}
}

// BuildTimeline covers the inclusive window of days calendar days starting at
// startDate. availability is "", AvailabilityOccupied or AvailabilityFree.
func (s *TimelineService) BuildTimeline(operatorID int, accommodationCode string, startDate time.Time, days int, minCapacity *int, availability string) (*entities.Timeline, error) {
	if days < 1 {
		return nil, apperrors.InvalidRange("days must be at least 1")
	}
	start := DateOnly(startDate)
	end := start.AddDate(0, 0, days-1)

	timeline := &entities.Timeline{
		StartDate:         start.Format(DateLayout),
		EndDate:           end.Format(DateLayout),
		Days:              days,
		Rooms:             []*entities.TimelineRoom{},
		AssignmentsByDate: make(map[string]map[int][]*entities.AssignmentDetail, days),
	}
	for i := 0; i < days; i++ {
		timeline.AssignmentsByDate[start.AddDate(0, 0, i).Format(DateLayout)] = map[int][]*entities.AssignmentDetail{}
	}

	rooms, err := s.Repo.ListRoomsByProperty(operatorID, accommodationCode, minCapacity)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return timeline, nil
	}

	roomIDs := make([]int, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}
	records, err := s.Repo.ListAssignmentsForRooms(operatorID, roomIDs, start, end)
	if err != nil {
		return nil, err
	}
	byRoom := make(map[int][]*entities.AssignmentRecord)
	for i := range records {
		byRoom[records[i].RoomID] = append(byRoom[records[i].RoomID], &records[i])
	}

	for _, room := range rooms {
		roomRecords := byRoom[room.ID]
		if availability == AvailabilityOccupied && len(roomRecords) == 0 {
			continue
		}
		if availability == AvailabilityFree && len(roomRecords) > 0 {
			continue
		}

		row := &entities.TimelineRoom{
			ID:          room.ID,
			RoomName:    room.RoomName,
			RoomType:    room.RoomType,
			Capacity:    room.Capacity,
			Assignments: []*entities.AssignmentDetail{},
		}
		for _, rec := range roomRecords {
			detail := assignmentDetail(rec)
			row.Assignments = append(row.Assignments, detail)

			// The grid shows the checkout day on the room's row (the
			// departure still happens there), so day coverage is inclusive
			// at both ends, unlike the conflict rule.
			for i := 0; i < days; i++ {
				day := start.AddDate(0, 0, i)
				if day.Before(rec.CheckInDate) || day.After(rec.CheckOutDate) {
					continue
				}
				key := day.Format(DateLayout)
				timeline.AssignmentsByDate[key][room.ID] = append(timeline.AssignmentsByDate[key][room.ID], detail)
			}
		}
		timeline.Rooms = append(timeline.Rooms, row)
	}

	return timeline, nil
}
