package entities

// AssignedRoom is the room summary attached to a staying reservation.
type AssignedRoom struct {
	RoomName string  `json:"room_name"`
	RoomType *string `json:"room_type"`
}

// DayReservation is an accommodation request joined with its registries and,
// for reservations present on the requested day, enriched with the access-link
// email and assigned rooms. The classifier shares items by pointer across
// sets, so one enrichment pass covers all of them.
type DayReservation struct {
	ID                int            `json:"id"`
	EstablishmentCode string         `json:"establishment_code"`
	ContractReference *string        `json:"contract_reference"`
	CheckIn           string         `json:"check_in"`
	CheckOut          string         `json:"check_out"`
	NumGuests         int            `json:"num_guests"`
	NumRooms          int            `json:"num_rooms"`
	Status            string         `json:"status"`
	Guests            []GuestInfo    `json:"guests"`
	Vehicles          []VehicleInfo  `json:"vehicles"`
	LinkEmail         *string        `json:"link_email,omitempty"`
	AssignedRooms     []AssignedRoom `json:"assigned_rooms"`
}

type DailyOperationsCounts struct {
	Arrivals   int `json:"arrivals"`
	Departures int `json:"departures"`
	Stayovers  int `json:"stayovers"`
	Staying    int `json:"staying"`
}

type DailyOperations struct {
	Date       string                `json:"date"`
	Arrivals   []*DayReservation     `json:"arrivals"`
	Departures []*DayReservation     `json:"departures"`
	Stayovers  []*DayReservation     `json:"stayovers"`
	Staying    []*DayReservation     `json:"staying"`
	Counts     DailyOperationsCounts `json:"counts"`
}
