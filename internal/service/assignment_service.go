package service

import (
	"fmt"
	"time"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

// AssignmentStore is everything the assignment manager needs from storage.
// Lookups return (nil, nil) when the row does not exist.
type AssignmentStore interface {
	AssignmentLister
	GetRoom(operatorID, id int) (*db.Room, error)
	GetRequest(operatorID, id int) (*db.AccommodationRequest, error)
	GetAssignment(operatorID, id int) (*db.RoomAssignment, error)
	InsertAssignment(operatorID int, a *db.RoomAssignment) (*entities.AssignmentRecord, error)
	UpdateAssignmentDates(operatorID, id int, checkIn, checkOut time.Time) (*entities.AssignmentRecord, error)
	DeleteAssignment(operatorID, id int) error
	ListAssignments(operatorID int, filter entities.AssignmentFilter) ([]entities.AssignmentRecord, error)
}

// AssignmentService validates and persists room assignments. The availability
// check and the insert are two separate statements with no transaction around
// them, so two concurrent creates can both pass the check; the exclusion
// constraint on room_assignments is the backstop for that race.
type AssignmentService struct {
	Repo    AssignmentStore
	Checker *AvailabilityChecker
}

func NewAssignmentService(repo AssignmentStore) *AssignmentService {
	return &AssignmentService{Repo: repo, Checker: NewAvailabilityChecker(repo)}
}

// Create validates ordering, ownership, containment in the parent request's
// stay and room availability, then inserts. Equal check-in and check-out dates
// are accepted (a zero-night hold never conflicts with anything).
func (s *AssignmentService) Create(operatorID, roomID, requestID int, checkIn, checkOut time.Time) (*entities.AssignmentDetail, error) {
	candidate := NewStayRange(checkIn, checkOut)
	if candidate.Inverted() {
		return nil, apperrors.InvalidRange("check_out_date must be greater than or equal to check_in_date")
	}

	room, err := s.Repo.GetRoom(operatorID, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound("room")
	}
	request, err := s.Repo.GetRequest(operatorID, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperrors.NotFound("accommodation request")
	}
	if room.AccommodationCode != request.EstablishmentCode {
		return nil, apperrors.PropertyMismatch(room.AccommodationCode, request.EstablishmentCode)
	}

	// The request's checkout day is the last valid assignment day, so the
	// stay bound is inclusive at both ends. This is looser than the overlap
	// rule between assignments, which frees the checkout day.
	stay := NewStayRange(request.CheckIn, request.CheckOut)
	if candidate.CheckIn.Before(stay.CheckIn) || candidate.CheckOut.After(stay.CheckOut) {
		return nil, apperrors.OutOfReservationRange(fmt.Sprintf(
			"assignment %s to %s is outside the reservation stay %s to %s",
			candidate.CheckIn.Format(DateLayout), candidate.CheckOut.Format(DateLayout),
			stay.CheckIn.Format(DateLayout), stay.CheckOut.Format(DateLayout)))
	}

	available, err := s.Checker.IsRoomAvailable(operatorID, roomID, candidate, nil)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.RoomConflict("room is already assigned for this date range")
	}

	rec, err := s.Repo.InsertAssignment(operatorID, &db.RoomAssignment{
		RoomID:                 roomID,
		AccommodationRequestID: requestID,
		CheckInDate:            candidate.CheckIn,
		CheckOutDate:           candidate.CheckOut,
	})
	if err != nil {
		return nil, err
	}
	return assignmentDetail(rec), nil
}

// Update edits the date range only; moving an assignment to another room or
// request is not supported. The range is checked against the room's other
// assignments but not re-checked against the parent request's stay.
func (s *AssignmentService) Update(operatorID, id int, checkIn, checkOut time.Time) (*entities.AssignmentDetail, error) {
	candidate := NewStayRange(checkIn, checkOut)
	if candidate.Inverted() {
		return nil, apperrors.InvalidRange("check_out_date must be greater than or equal to check_in_date")
	}

	existing, err := s.Repo.GetAssignment(operatorID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("room assignment")
	}

	exclude := id
	available, err := s.Checker.IsRoomAvailable(operatorID, existing.RoomID, candidate, &exclude)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperrors.RoomConflict("room is already assigned for this date range")
	}

	rec, err := s.Repo.UpdateAssignmentDates(operatorID, id, candidate.CheckIn, candidate.CheckOut)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperrors.NotFound("room assignment")
	}
	return assignmentDetail(rec), nil
}

func (s *AssignmentService) Delete(operatorID, id int) error {
	existing, err := s.Repo.GetAssignment(operatorID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NotFound("room assignment")
	}
	return s.Repo.DeleteAssignment(operatorID, id)
}

func (s *AssignmentService) List(operatorID int, filter entities.AssignmentFilter) ([]*entities.AssignmentDetail, error) {
	records, err := s.Repo.ListAssignments(operatorID, filter)
	if err != nil {
		return nil, err
	}
	details := make([]*entities.AssignmentDetail, 0, len(records))
	for i := range records {
		details = append(details, assignmentDetail(&records[i]))
	}
	return details, nil
}

func assignmentDetail(rec *entities.AssignmentRecord) *entities.AssignmentDetail {
	room := rec.Room
	request := rec.Request
	return &entities.AssignmentDetail{
		ID:                     rec.ID,
		RoomID:                 rec.RoomID,
		AccommodationRequestID: rec.AccommodationRequestID,
		CheckInDate:            rec.CheckInDate.Format(DateLayout),
		CheckOutDate:           rec.CheckOutDate.Format(DateLayout),
		Room:                   &room,
		AccommodationRequest:   &request,
	}
}
