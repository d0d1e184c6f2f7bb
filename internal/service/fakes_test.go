package service

import (
	"time"

	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

// fakeStore is an in-memory AssignmentStore. A non-nil failWith is returned
// from every call, standing in for a storage outage.
type fakeStore struct {
	rooms       map[int]db.Room
	requests    map[int]db.AccommodationRequest
	assignments map[int]db.RoomAssignment
	nextID      int
	failWith    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rooms:       make(map[int]db.Room),
		requests:    make(map[int]db.AccommodationRequest),
		assignments: make(map[int]db.RoomAssignment),
	}
}

func (f *fakeStore) addRoom(id int, code, name string) {
	f.rooms[id] = db.Room{ID: id, AccommodationCode: code, RoomName: name}
}

func (f *fakeStore) addRequest(id int, code string, checkIn, checkOut time.Time) {
	f.requests[id] = db.AccommodationRequest{
		ID: id, EstablishmentCode: code, CheckIn: checkIn, CheckOut: checkOut,
		NumGuests: 2, NumRooms: 1, Status: db.StatusToCheckIn,
	}
}

func (f *fakeStore) GetRoom(operatorID, id int) (*db.Room, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if room, ok := f.rooms[id]; ok {
		return &room, nil
	}
	return nil, nil
}

func (f *fakeStore) GetRequest(operatorID, id int) (*db.AccommodationRequest, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if rq, ok := f.requests[id]; ok {
		return &rq, nil
	}
	return nil, nil
}

func (f *fakeStore) GetAssignment(operatorID, id int) (*db.RoomAssignment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if a, ok := f.assignments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeStore) ListAssignmentsByRoom(operatorID, roomID int, excludeID *int) ([]db.RoomAssignment, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []db.RoomAssignment
	for _, a := range f.assignments {
		if a.RoomID != roomID {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeStore) InsertAssignment(operatorID int, a *db.RoomAssignment) (*entities.AssignmentRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	a.ID = f.nextID
	f.assignments[a.ID] = *a
	return f.record(a.ID), nil
}

func (f *fakeStore) UpdateAssignmentDates(operatorID, id int, checkIn, checkOut time.Time) (*entities.AssignmentRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	a, ok := f.assignments[id]
	if !ok {
		return nil, nil
	}
	a.CheckInDate = checkIn
	a.CheckOutDate = checkOut
	f.assignments[id] = a
	return f.record(id), nil
}

func (f *fakeStore) DeleteAssignment(operatorID, id int) error {
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.assignments, id)
	return nil
}

func (f *fakeStore) ListAssignments(operatorID int, filter entities.AssignmentFilter) ([]entities.AssignmentRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []entities.AssignmentRecord
	for id, a := range f.assignments {
		if filter.AccommodationRequestID != 0 && a.AccommodationRequestID != filter.AccommodationRequestID {
			continue
		}
		out = append(out, *f.record(id))
	}
	return out, nil
}

func (f *fakeStore) record(id int) *entities.AssignmentRecord {
	a := f.assignments[id]
	room := f.rooms[a.RoomID]
	rq := f.requests[a.AccommodationRequestID]
	return &entities.AssignmentRecord{
		ID:                     a.ID,
		RoomID:                 a.RoomID,
		AccommodationRequestID: a.AccommodationRequestID,
		CheckInDate:            a.CheckInDate,
		CheckOutDate:           a.CheckOutDate,
		Room: entities.RoomSummary{
			AccommodationCode: room.AccommodationCode,
			RoomName:          room.RoomName,
			RoomType:          room.RoomType,
		},
		Request: entities.RequestSummary{
			ID:                rq.ID,
			CheckIn:           rq.CheckIn.Format(time.RFC3339),
			CheckOut:          rq.CheckOut.Format(time.RFC3339),
			NumGuests:         rq.NumGuests,
			NumRooms:          rq.NumRooms,
			EstablishmentCode: rq.EstablishmentCode,
			Status:            rq.Status,
		},
	}
}
