package entities

import "time"

// RoomSummary is the room slice joined onto an assignment.
type RoomSummary struct {
	AccommodationCode string  `json:"accommodation_code"`
	RoomName          string  `json:"room_name"`
	RoomType          *string `json:"room_type"`
}

// RequestSummary is the accommodation request slice joined onto an assignment.
type RequestSummary struct {
	ID                int     `json:"id"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	NumGuests         int     `json:"num_guests"`
	NumRooms          int     `json:"num_rooms"`
	ContractReference *string `json:"contract_reference"`
	EstablishmentCode string  `json:"establishment_code"`
	Status            string  `json:"status,omitempty"`
}

// AssignmentFilter narrows the assignment listing. Zero values mean "no
// filter". StartDate/EndDate use the half-open rule at the storage layer, so
// an assignment ending exactly on StartDate is not returned.
type AssignmentFilter struct {
	AccommodationCode      string
	AccommodationRequestID int
	StartDate              *time.Time
	EndDate                *time.Time
}

// AssignmentRecord is the joined row the repositories hand to the services:
// the assignment with its room and request summaries, dates still as times.
type AssignmentRecord struct {
	ID                     int
	RoomID                 int
	AccommodationRequestID int
	CheckInDate            time.Time
	CheckOutDate           time.Time
	Room                   RoomSummary
	Request                RequestSummary
}

type AssignmentDetail struct {
	ID                     int             `json:"id"`
	RoomID                 int             `json:"room_id"`
	AccommodationRequestID int             `json:"accommodation_request_id"`
	CheckInDate            string          `json:"check_in_date"`
	CheckOutDate           string          `json:"check_out_date"`
	Room                   *RoomSummary    `json:"room,omitempty"`
	AccommodationRequest   *RequestSummary `json:"accommodation_request,omitempty"`
}
