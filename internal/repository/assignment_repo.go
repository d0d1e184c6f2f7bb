package repository

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/lib/pq"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type AssignmentRepository struct {
	DB    *sql.DB
	Rooms *RoomRepository
	Reqs  *RequestRepository
}

func NewAssignmentRepository(database *sql.DB, rooms *RoomRepository, reqs *RequestRepository) *AssignmentRepository {
	return &AssignmentRepository{DB: database, Rooms: rooms, Reqs: reqs}
}

// GetRoom and GetRequest let the repository satisfy service.AssignmentStore
// without the service having to hold three repositories.
func (r *AssignmentRepository) GetRoom(operatorID, id int) (*db.Room, error) {
	return r.Rooms.GetRoom(operatorID, id)
}

func (r *AssignmentRepository) GetRequest(operatorID, id int) (*db.AccommodationRequest, error) {
	return r.Reqs.GetRequest(operatorID, id)
}

func (r *AssignmentRepository) GetAssignment(operatorID, id int) (*db.RoomAssignment, error) {
	var a db.RoomAssignment
	err := r.DB.QueryRow(`
		SELECT id, room_id, accommodation_request_id, check_in_date, check_out_date
		FROM room_assignments WHERE id = $1 AND operator_id = $2`, id, operatorID,
	).Scan(&a.ID, &a.RoomID, &a.AccommodationRequestID, &a.CheckInDate, &a.CheckOutDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return &a, nil
}

func (r *AssignmentRepository) ListAssignmentsByRoom(operatorID, roomID int, excludeID *int) ([]db.RoomAssignment, error) {
	query := `
		SELECT id, room_id, accommodation_request_id, check_in_date, check_out_date
		FROM room_assignments WHERE operator_id = $1 AND room_id = $2`
	args := []any{operatorID, roomID}
	if excludeID != nil {
		query += ` AND id <> $3`
		args = append(args, *excludeID)
	}
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var assignments []db.RoomAssignment
	for rows.Next() {
		var a db.RoomAssignment
		if err := rows.Scan(&a.ID, &a.RoomID, &a.AccommodationRequestID, &a.CheckInDate, &a.CheckOutDate); err != nil {
			return nil, apperrors.Storage(err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return assignments, nil
}

const assignmentJoin = `
	SELECT a.id, a.room_id, a.accommodation_request_id, a.check_in_date, a.check_out_date,
	       rm.accommodation_code, rm.room_name, rm.room_type,
	       rq.id, rq.check_in, rq.check_out, rq.num_guests, rq.num_rooms,
	       rq.contract_reference, rq.establishment_code, rq.status
	FROM room_assignments a
	JOIN rooms rm ON rm.id = a.room_id
	JOIN accommodation_requests rq ON rq.id = a.accommodation_request_id`

func scanAssignmentRecord(row interface{ Scan(...any) error }) (*entities.AssignmentRecord, error) {
	var rec entities.AssignmentRecord
	var reqIn, reqOut time.Time
	err := row.Scan(
		&rec.ID, &rec.RoomID, &rec.AccommodationRequestID, &rec.CheckInDate, &rec.CheckOutDate,
		&rec.Room.AccommodationCode, &rec.Room.RoomName, &rec.Room.RoomType,
		&rec.Request.ID, &reqIn, &reqOut, &rec.Request.NumGuests, &rec.Request.NumRooms,
		&rec.Request.ContractReference, &rec.Request.EstablishmentCode, &rec.Request.Status,
	)
	if err != nil {
		return nil, err
	}
	rec.Request.CheckIn = reqIn.Format(time.RFC3339)
	rec.Request.CheckOut = reqOut.Format(time.RFC3339)
	return &rec, nil
}

func (r *AssignmentRepository) getRecord(operatorID, id int) (*entities.AssignmentRecord, error) {
	row := r.DB.QueryRow(assignmentJoin+` WHERE a.id = $1 AND a.operator_id = $2`, id, operatorID)
	rec, err := scanAssignmentRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return rec, nil
}

func (r *AssignmentRepository) InsertAssignment(operatorID int, a *db.RoomAssignment) (*entities.AssignmentRecord, error) {
	err := r.DB.QueryRow(`
		INSERT INTO room_assignments (operator_id, room_id, accommodation_request_id, check_in_date, check_out_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		operatorID, a.RoomID, a.AccommodationRequestID, a.CheckInDate, a.CheckOutDate,
	).Scan(&a.ID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return r.getRecord(operatorID, a.ID)
}

func (r *AssignmentRepository) UpdateAssignmentDates(operatorID, id int, checkIn, checkOut time.Time) (*entities.AssignmentRecord, error) {
	res, err := r.DB.Exec(`
		UPDATE room_assignments SET check_in_date = $1, check_out_date = $2
		WHERE id = $3 AND operator_id = $4`,
		checkIn, checkOut, id, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, nil
	}
	return r.getRecord(operatorID, id)
}

func (r *AssignmentRepository) DeleteAssignment(operatorID, id int) error {
	_, err := r.DB.Exec(`DELETE FROM room_assignments WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// ListAssignments is the registry listing. Date filters are strict on the
// checkout side: an assignment whose checkout day equals the filter start is
// already free that day and stays out of the result.
func (r *AssignmentRepository) ListAssignments(operatorID int, filter entities.AssignmentFilter) ([]entities.AssignmentRecord, error) {
	query := assignmentJoin + ` WHERE a.operator_id = $1`
	args := []any{operatorID}
	if filter.AccommodationCode != "" {
		args = append(args, filter.AccommodationCode)
		query += ` AND rm.accommodation_code = $2`
	}
	if filter.AccommodationRequestID != 0 {
		args = append(args, filter.AccommodationRequestID)
		query += ` AND a.accommodation_request_id = $` + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += ` AND a.check_out_date > $` + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += ` AND a.check_in_date < $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY a.check_in_date ASC`
	return r.queryRecords(query, args...)
}

// ListAssignmentsForRooms is the timeline prefilter: a loose inclusive window
// test at the storage layer, day coverage is refined by the caller.
func (r *AssignmentRepository) ListAssignmentsForRooms(operatorID int, roomIDs []int, start, end time.Time) ([]entities.AssignmentRecord, error) {
	query := assignmentJoin + `
		WHERE a.operator_id = $1 AND a.room_id = ANY($2)
		AND (a.check_in_date <= $3 OR a.check_out_date >= $4)
		ORDER BY a.check_in_date ASC`
	return r.queryRecords(query, operatorID, pq.Array(roomIDs), end, start)
}

func (r *AssignmentRepository) queryRecords(query string, args ...any) ([]entities.AssignmentRecord, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var records []entities.AssignmentRecord
	for rows.Next() {
		rec, err := scanAssignmentRecord(rows)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return records, nil
}

// ListAssignedRooms maps request id -> room summaries for the daily
// operations enrichment.
func (r *AssignmentRepository) ListAssignedRooms(operatorID int, requestIDs []int) (map[int][]entities.AssignedRoom, error) {
	rows, err := r.DB.Query(`
		SELECT a.accommodation_request_id, rm.room_name, rm.room_type
		FROM room_assignments a
		JOIN rooms rm ON rm.id = a.room_id
		WHERE a.operator_id = $1 AND a.accommodation_request_id = ANY($2)`,
		operatorID, pq.Array(requestIDs))
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	result := make(map[int][]entities.AssignedRoom)
	for rows.Next() {
		var requestID int
		var room entities.AssignedRoom
		if err := rows.Scan(&requestID, &room.RoomName, &room.RoomType); err != nil {
			return nil, apperrors.Storage(err)
		}
		result[requestID] = append(result[requestID], room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return result, nil
}
