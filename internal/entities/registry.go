package entities

// JSON shapes for the registry pass-through endpoints (rooms, requests,
// guests, vehicles, access links).

type RoomInfo struct {
	ID                int      `json:"id"`
	AccommodationCode string   `json:"accommodation_code"`
	RoomName          string   `json:"room_name"`
	RoomType          *string  `json:"room_type"`
	Capacity          *int     `json:"capacity"`
	Floor             *string  `json:"floor"`
	Price             *float64 `json:"price"`
}

type RequestInfo struct {
	ID                int     `json:"id"`
	EstablishmentCode string  `json:"establishment_code"`
	ContractReference *string `json:"contract_reference"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	NumGuests         int     `json:"num_guests"`
	NumRooms          int     `json:"num_rooms"`
	Status            string  `json:"status"`
}

type GuestInfo struct {
	ID                     int     `json:"id"`
	AccommodationRequestID int     `json:"accommodation_request_id"`
	FirstName              string  `json:"first_name"`
	LastName               *string `json:"last_name"`
	DocumentType           *string `json:"document_type"`
	DocumentNumber         *string `json:"document_number"`
	BirthDate              *string `json:"birth_date"`
	Nationality            *string `json:"nationality"`
}

type VehicleInfo struct {
	ID                     int     `json:"id"`
	AccommodationRequestID int     `json:"accommodation_request_id"`
	Plate                  string  `json:"plate"`
	Model                  *string `json:"model"`
}

type LinkInfo struct {
	ID                     int     `json:"id"`
	URL                    string  `json:"url"`
	Email                  *string `json:"email"`
	ExpDate                *string `json:"exp_date"`
	OneUse                 bool    `json:"one_use"`
	Used                   bool    `json:"used"`
	EmailsSent             int     `json:"emails_sent"`
	AccommodationCode      *string `json:"accommodation_code"`
	AccommodationRequestID *int    `json:"accommodation_request_id"`
	ContractReference      *string `json:"contract_reference,omitempty"`
}
