package service

import (
	"hospedaje/internal/db"
)

// AssignmentLister is the repository slice the availability check needs.
type AssignmentLister interface {
	// ListAssignmentsByRoom returns every assignment of the room, minus
	// excludeID when non-nil.
	ListAssignmentsByRoom(operatorID, roomID int, excludeID *int) ([]db.RoomAssignment, error)
}

// AvailabilityChecker decides whether a room can take a candidate stay range.
// It is read-only; the caller persists (and therefore races, see
// AssignmentService) separately.
type AvailabilityChecker struct {
	Repo AssignmentLister
}

func NewAvailabilityChecker(repo AssignmentLister) *AvailabilityChecker {
	return &AvailabilityChecker{Repo: repo}
}

// IsRoomAvailable reports whether candidate overlaps no existing assignment of
// the room. excludeID skips the assignment being edited so it does not
// conflict with itself. Repository failures propagate as-is.
func (c *AvailabilityChecker) IsRoomAvailable(operatorID, roomID int, candidate StayRange, excludeID *int) (bool, error) {
	existing, err := c.Repo.ListAssignmentsByRoom(operatorID, roomID, excludeID)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if candidate.Overlaps(NewStayRange(a.CheckInDate, a.CheckOutDate)) {
			return false, nil
		}
	}
	return true, nil
}
