package api

// Request payloads. Update payloads carry pointer fields: only the keys
// present in the JSON are applied.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateRoomRequest struct {
	AccommodationCode string   `json:"accommodation_code"`
	RoomName          string   `json:"room_name"`
	RoomType          *string  `json:"room_type"`
	Capacity          *int     `json:"capacity"`
	Floor             *string  `json:"floor"`
	Price             *float64 `json:"price"`
}

type UpdateRoomRequest struct {
	ID       int      `json:"id"`
	RoomName *string  `json:"room_name"`
	RoomType *string  `json:"room_type"`
	Capacity *int     `json:"capacity"`
	Floor    *string  `json:"floor"`
	Price    *float64 `json:"price"`
}

type CreateAccommodationRequest struct {
	EstablishmentCode string  `json:"establishment_code"`
	ContractReference *string `json:"contract_reference"`
	CheckIn           string  `json:"check_in"`
	CheckOut          string  `json:"check_out"`
	NumGuests         int     `json:"num_guests"`
	NumRooms          int     `json:"num_rooms"`
	Status            string  `json:"status"`
}

type UpdateAccommodationRequest struct {
	ID                int     `json:"id"`
	ContractReference *string `json:"contract_reference"`
	CheckIn           *string `json:"check_in"`
	CheckOut          *string `json:"check_out"`
	NumGuests         *int    `json:"num_guests"`
	NumRooms          *int    `json:"num_rooms"`
	Status            *string `json:"status"`
}

type CreateGuestRequest struct {
	AccommodationRequestID int     `json:"accommodation_request_id"`
	FirstName              string  `json:"first_name"`
	LastName               *string `json:"last_name"`
	DocumentType           *string `json:"document_type"`
	DocumentNumber         *string `json:"document_number"`
	BirthDate              *string `json:"birth_date"`
	Nationality            *string `json:"nationality"`
}

type UpdateGuestRequest struct {
	ID             int     `json:"id"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	DocumentType   *string `json:"document_type"`
	DocumentNumber *string `json:"document_number"`
	BirthDate      *string `json:"birth_date"`
	Nationality    *string `json:"nationality"`
}

type CreateVehicleRequest struct {
	AccommodationRequestID int     `json:"accommodation_request_id"`
	Plate                  string  `json:"plate"`
	Model                  *string `json:"model"`
}

type UpdateVehicleRequest struct {
	ID    int     `json:"id"`
	Plate *string `json:"plate"`
	Model *string `json:"model"`
}

type CreateLinkRequest struct {
	URL                    string  `json:"url"`
	Email                  *string `json:"email"`
	ExpDate                *string `json:"exp_date"`
	OneUse                 bool    `json:"one_use"`
	Used                   bool    `json:"used"`
	AccommodationCode      *string `json:"accommodation_code"`
	AccommodationRequestID *int    `json:"accommodation_request_id"`
}

type UpdateLinkRequest struct {
	ID         int     `json:"id"`
	URL        *string `json:"url"`
	Email      *string `json:"email"`
	ExpDate    *string `json:"exp_date"`
	OneUse     *bool   `json:"one_use"`
	Used       *bool   `json:"used"`
	EmailsSent *int    `json:"emails_sent"`
}

type CreateAssignmentRequest struct {
	RoomID                 int    `json:"room_id"`
	AccommodationRequestID int    `json:"accommodation_request_id"`
	CheckInDate            string `json:"check_in_date"`
	CheckOutDate           string `json:"check_out_date"`
}

type UpdateAssignmentRequest struct {
	ID           int    `json:"id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}
