package entities

import "time"

// Patch structs carry only the fields present in the update payload; nil means
// "leave as is". Repositories apply them field by field against the loaded row.

type RoomPatch struct {
	RoomName *string
	RoomType *string
	Capacity *int
	Floor    *string
	Price    *float64
}

type RequestPatch struct {
	ContractReference *string
	CheckIn           *time.Time
	CheckOut          *time.Time
	NumGuests         *int
	NumRooms          *int
	Status            *string
}

type GuestPatch struct {
	FirstName      *string
	LastName       *string
	DocumentType   *string
	DocumentNumber *string
	BirthDate      *time.Time
	Nationality    *string
}

type VehiclePatch struct {
	Plate *string
	Model *string
}

type LinkPatch struct {
	URL        *string
	Email      *string
	ExpDate    *time.Time
	OneUse     *bool
	Used       *bool
	EmailsSent *int
}
