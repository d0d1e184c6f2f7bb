package service

import (
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/entities"
)

// DailyOpsRepository loads the classifier input and the enrichment joins.
type DailyOpsRepository interface {
	// ListRequestsFull returns every accommodation request of the operator
	// joined with its guests and vehicles, regardless of property.
	ListRequestsFull(operatorID int) ([]*entities.DayReservation, error)
	// ListLinkEmails maps request id -> access-link contact email.
	ListLinkEmails(operatorID int, requestIDs []int) (map[int]string, error)
	// ListAssignedRooms maps request id -> assigned room summaries.
	ListAssignedRooms(operatorID int, requestIDs []int) (map[int][]entities.AssignedRoom, error)
}

// DailyOpsService partitions reservations for one date into arrivals,
// departures, stayovers and the umbrella staying set.
type DailyOpsService struct {
	Repo DailyOpsRepository
}

func NewDailyOpsService(repo DailyOpsRepository) *DailyOpsService {
	return &DailyOpsService{Repo: repo}
}

// datePart extracts the calendar-date portion of a stored timestamp; stay
// comparisons never look at the time of day.
func datePart(s string) string {
	if len(s) < len(DateLayout) {
		return ""
	}
	return s[:len(DateLayout)]
}

// ClassifyDay builds the snapshot for date (YYYY-MM-DD). The four sets share
// items by pointer, so enriching the staying set also covers its subsets.
func (s *DailyOpsService) ClassifyDay(operatorID int, date string) (*entities.DailyOperations, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, apperrors.InvalidRange("invalid date format, use YYYY-MM-DD")
	}

	all, err := s.Repo.ListRequestsFull(operatorID)
	if err != nil {
		return nil, err
	}

	out := &entities.DailyOperations{
		Date:       date,
		Arrivals:   []*entities.DayReservation{},
		Departures: []*entities.DayReservation{},
		Stayovers:  []*entities.DayReservation{},
		Staying:    []*entities.DayReservation{},
	}
	for _, item := range all {
		in := datePart(item.CheckIn)
		checkOut := datePart(item.CheckOut)
		if in == date {
			out.Arrivals = append(out.Arrivals, item)
		}
		if checkOut == date {
			out.Departures = append(out.Departures, item)
		}
		if in < date && checkOut > date {
			out.Stayovers = append(out.Stayovers, item)
		}
		if in <= date && checkOut >= date {
			out.Staying = append(out.Staying, item)
		}
	}

	if len(out.Staying) > 0 {
		ids := make([]int, len(out.Staying))
		for i, item := range out.Staying {
			ids[i] = item.ID
		}
		emails, err := s.Repo.ListLinkEmails(operatorID, ids)
		if err != nil {
			return nil, err
		}
		roomsByRequest, err := s.Repo.ListAssignedRooms(operatorID, ids)
		if err != nil {
			return nil, err
		}
		for _, item := range out.Staying {
			if email, ok := emails[item.ID]; ok {
				e := email
				item.LinkEmail = &e
			}
			item.AssignedRooms = roomsByRequest[item.ID]
			if item.AssignedRooms == nil {
				item.AssignedRooms = []entities.AssignedRoom{}
			}
		}
	}

	out.Counts = entities.DailyOperationsCounts{
		Arrivals:   len(out.Arrivals),
		Departures: len(out.Departures),
		Stayovers:  len(out.Stayovers),
		Staying:    len(out.Staying),
	}
	return out, nil
}
