package db

import "time"

// Request lifecycle statuses as stored. "ok", "format_error" and "send_error"
// come back from the statutory reporting integration and are only displayed.
const (
	StatusToCheckIn  = "to check in"
	StatusCheckedOut = "checked out"
)

type Operator struct {
	ID           int
	Email        string
	PasswordHash string
}

type Room struct {
	ID                int
	AccommodationCode string
	RoomName          string
	RoomType          *string
	Capacity          *int
	Floor             *string
	Price             *float64
}

type AccommodationRequest struct {
	ID                int
	EstablishmentCode string
	ContractReference *string
	CheckIn           time.Time
	CheckOut          time.Time
	NumGuests         int
	NumRooms          int
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type RoomAssignment struct {
	ID                     int
	RoomID                 int
	AccommodationRequestID int
	CheckInDate            time.Time
	CheckOutDate           time.Time
}

type Guest struct {
	ID                     int
	AccommodationRequestID int
	FirstName              string
	LastName               *string
	DocumentType           *string
	DocumentNumber         *string
	BirthDate              *time.Time
	Nationality            *string
}

type Vehicle struct {
	ID                     int
	AccommodationRequestID int
	Plate                  string
	Model                  *string
}

type AccessLink struct {
	ID                     int
	URL                    string
	Email                  *string
	ExpDate                *time.Time
	OneUse                 bool
	Used                   bool
	EmailsSent             int
	AccommodationCode      *string
	AccommodationRequestID *int
}
