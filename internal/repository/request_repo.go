package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type RequestRepository struct {
	DB *sql.DB
}

func NewRequestRepository(database *sql.DB) *RequestRepository {
	return &RequestRepository{DB: database}
}

const requestColumns = `id, establishment_code, contract_reference, check_in, check_out, num_guests, num_rooms, status, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*db.AccommodationRequest, error) {
	var rq db.AccommodationRequest
	err := row.Scan(&rq.ID, &rq.EstablishmentCode, &rq.ContractReference, &rq.CheckIn, &rq.CheckOut,
		&rq.NumGuests, &rq.NumRooms, &rq.Status, &rq.CreatedAt, &rq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rq, nil
}

func (r *RequestRepository) GetRequest(operatorID, id int) (*db.AccommodationRequest, error) {
	row := r.DB.QueryRow(`SELECT `+requestColumns+` FROM accommodation_requests WHERE id = $1 AND operator_id = $2`, id, operatorID)
	rq, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return rq, nil
}

// ListRequests returns recent requests, optionally narrowed to one or more
// establishment codes, newest stays first.
func (r *RequestRepository) ListRequests(operatorID int, codes []string) ([]db.AccommodationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM accommodation_requests WHERE operator_id = $1`
	args := []any{operatorID}
	if len(codes) > 0 {
		query += ` AND establishment_code = ANY($2)`
		args = append(args, pq.Array(codes))
	}
	query += ` ORDER BY check_in DESC LIMIT 1000`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var requests []db.AccommodationRequest
	for rows.Next() {
		rq, err := scanRequest(rows)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		requests = append(requests, *rq)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return requests, nil
}

func (r *RequestRepository) CreateRequest(operatorID int, rq *db.AccommodationRequest) error {
	err := r.DB.QueryRow(`
		INSERT INTO accommodation_requests
		(operator_id, establishment_code, contract_reference, check_in, check_out, num_guests, num_rooms, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		operatorID, rq.EstablishmentCode, rq.ContractReference, rq.CheckIn, rq.CheckOut,
		rq.NumGuests, rq.NumRooms, rq.Status,
	).Scan(&rq.ID, &rq.CreatedAt, &rq.UpdatedAt)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *RequestRepository) UpdateRequest(operatorID, id int, patch entities.RequestPatch) (*db.AccommodationRequest, error) {
	rq, err := r.GetRequest(operatorID, id)
	if err != nil || rq == nil {
		return nil, err
	}
	if patch.ContractReference != nil {
		rq.ContractReference = patch.ContractReference
	}
	if patch.CheckIn != nil {
		rq.CheckIn = *patch.CheckIn
	}
	if patch.CheckOut != nil {
		rq.CheckOut = *patch.CheckOut
	}
	if patch.NumGuests != nil {
		rq.NumGuests = *patch.NumGuests
	}
	if patch.NumRooms != nil {
		rq.NumRooms = *patch.NumRooms
	}
	if patch.Status != nil {
		rq.Status = *patch.Status
	}
	err = r.DB.QueryRow(`
		UPDATE accommodation_requests
		SET contract_reference = $1, check_in = $2, check_out = $3, num_guests = $4, num_rooms = $5, status = $6, updated_at = NOW()
		WHERE id = $7 AND operator_id = $8
		RETURNING updated_at`,
		rq.ContractReference, rq.CheckIn, rq.CheckOut, rq.NumGuests, rq.NumRooms, rq.Status, id, operatorID,
	).Scan(&rq.UpdatedAt)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return rq, nil
}

func (r *RequestRepository) DeleteRequest(operatorID, id int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM accommodation_requests WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}

// ListRequestsFull loads every request of the operator with its guests and
// vehicles, the daily operations input. Three queries grouped in memory
// instead of one aggregate join; request counts are capped by the registry.
func (r *RequestRepository) ListRequestsFull(operatorID int) ([]*entities.DayReservation, error) {
	requests, err := r.ListRequests(operatorID, nil)
	if err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return []*entities.DayReservation{}, nil
	}

	items := make([]*entities.DayReservation, 0, len(requests))
	byID := make(map[int]*entities.DayReservation, len(requests))
	ids := make([]int, 0, len(requests))
	for _, rq := range requests {
		item := &entities.DayReservation{
			ID:                rq.ID,
			EstablishmentCode: rq.EstablishmentCode,
			ContractReference: rq.ContractReference,
			CheckIn:           rq.CheckIn.Format(time.RFC3339),
			CheckOut:          rq.CheckOut.Format(time.RFC3339),
			NumGuests:         rq.NumGuests,
			NumRooms:          rq.NumRooms,
			Status:            rq.Status,
			Guests:            []entities.GuestInfo{},
			Vehicles:          []entities.VehicleInfo{},
			AssignedRooms:     []entities.AssignedRoom{},
		}
		items = append(items, item)
		byID[rq.ID] = item
		ids = append(ids, rq.ID)
	}

	guestRows, err := r.DB.Query(`
		SELECT id, accommodation_request_id, first_name, last_name, document_type, document_number, birth_date, nationality
		FROM guests WHERE operator_id = $1 AND accommodation_request_id = ANY($2)`,
		operatorID, pq.Array(ids))
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer guestRows.Close()
	for guestRows.Next() {
		var g entities.GuestInfo
		var birth *time.Time
		if err := guestRows.Scan(&g.ID, &g.AccommodationRequestID, &g.FirstName, &g.LastName,
			&g.DocumentType, &g.DocumentNumber, &birth, &g.Nationality); err != nil {
			return nil, apperrors.Storage(err)
		}
		if birth != nil {
			formatted := birth.Format("2006-01-02")
			g.BirthDate = &formatted
		}
		if item, ok := byID[g.AccommodationRequestID]; ok {
			item.Guests = append(item.Guests, g)
		}
	}
	if err := guestRows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}

	vehicleRows, err := r.DB.Query(`
		SELECT id, accommodation_request_id, plate, model
		FROM vehicles WHERE operator_id = $1 AND accommodation_request_id = ANY($2)`,
		operatorID, pq.Array(ids))
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer vehicleRows.Close()
	for vehicleRows.Next() {
		var v entities.VehicleInfo
		if err := vehicleRows.Scan(&v.ID, &v.AccommodationRequestID, &v.Plate, &v.Model); err != nil {
			return nil, apperrors.Storage(err)
		}
		if item, ok := byID[v.AccommodationRequestID]; ok {
			item.Vehicles = append(item.Vehicles, v)
		}
	}
	if err := vehicleRows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}

	return items, nil
}
