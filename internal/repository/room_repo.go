package repository

import (
	"database/sql"
	"errors"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type RoomRepository struct {
	DB *sql.DB
}

func NewRoomRepository(database *sql.DB) *RoomRepository {
	return &RoomRepository{DB: database}
}

const roomColumns = `id, accommodation_code, room_name, room_type, capacity, floor, price`

func scanRoom(row interface{ Scan(...any) error }) (*db.Room, error) {
	var r db.Room
	err := row.Scan(&r.ID, &r.AccommodationCode, &r.RoomName, &r.RoomType, &r.Capacity, &r.Floor, &r.Price)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *RoomRepository) GetRoom(operatorID, id int) (*db.Room, error) {
	row := r.DB.QueryRow(`SELECT `+roomColumns+` FROM rooms WHERE id = $1 AND operator_id = $2`, id, operatorID)
	room, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return room, nil
}

// ListByProperty lists rooms ordered by name, the registry view. Empty code
// lists every room of the operator.
func (r *RoomRepository) ListByProperty(operatorID int, accommodationCode string) ([]db.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE operator_id = $1`
	args := []any{operatorID}
	if accommodationCode != "" {
		query += ` AND accommodation_code = $2`
		args = append(args, accommodationCode)
	}
	query += ` ORDER BY room_name ASC`
	return r.queryRooms(query, args...)
}

// ListRoomsByProperty is the timeline ordering: capacity ascending, rooms
// without a capacity last.
func (r *RoomRepository) ListRoomsByProperty(operatorID int, accommodationCode string, minCapacity *int) ([]db.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE operator_id = $1 AND accommodation_code = $2`
	args := []any{operatorID, accommodationCode}
	if minCapacity != nil {
		query += ` AND capacity >= $3`
		args = append(args, *minCapacity)
	}
	query += ` ORDER BY capacity ASC NULLS LAST, room_name ASC`
	return r.queryRooms(query, args...)
}

func (r *RoomRepository) queryRooms(query string, args ...any) ([]db.Room, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var rooms []db.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		rooms = append(rooms, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return rooms, nil
}

func (r *RoomRepository) CreateRoom(operatorID int, room *db.Room) error {
	err := r.DB.QueryRow(`
		INSERT INTO rooms (operator_id, accommodation_code, room_name, room_type, capacity, floor, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		operatorID, room.AccommodationCode, room.RoomName, room.RoomType, room.Capacity, room.Floor, room.Price,
	).Scan(&room.ID)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

// UpdateRoom applies the patch field by field against the loaded row, then
// writes the descriptive fields back. Returns (nil, nil) when absent.
func (r *RoomRepository) UpdateRoom(operatorID, id int, patch entities.RoomPatch) (*db.Room, error) {
	room, err := r.GetRoom(operatorID, id)
	if err != nil || room == nil {
		return nil, err
	}
	if patch.RoomName != nil {
		room.RoomName = *patch.RoomName
	}
	if patch.RoomType != nil {
		room.RoomType = patch.RoomType
	}
	if patch.Capacity != nil {
		room.Capacity = patch.Capacity
	}
	if patch.Floor != nil {
		room.Floor = patch.Floor
	}
	if patch.Price != nil {
		room.Price = patch.Price
	}
	_, err = r.DB.Exec(`
		UPDATE rooms SET room_name = $1, room_type = $2, capacity = $3, floor = $4, price = $5
		WHERE id = $6 AND operator_id = $7`,
		room.RoomName, room.RoomType, room.Capacity, room.Floor, room.Price, id, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return room, nil
}

func (r *RoomRepository) DeleteRoom(operatorID, id int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM rooms WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}
