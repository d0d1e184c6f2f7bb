package repository

import (
	"database/sql"
	"errors"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type GuestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(database *sql.DB) *GuestRepository {
	return &GuestRepository{DB: database}
}

const guestColumns = `id, accommodation_request_id, first_name, last_name, document_type, document_number, birth_date, nationality`

func scanGuest(row interface{ Scan(...any) error }) (*db.Guest, error) {
	var g db.Guest
	err := row.Scan(&g.ID, &g.AccommodationRequestID, &g.FirstName, &g.LastName,
		&g.DocumentType, &g.DocumentNumber, &g.BirthDate, &g.Nationality)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GuestRepository) GetGuest(operatorID, id int) (*db.Guest, error) {
	row := r.DB.QueryRow(`SELECT `+guestColumns+` FROM guests WHERE id = $1 AND operator_id = $2`, id, operatorID)
	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return g, nil
}

// ListGuests lists the operator's guests, optionally for one request.
func (r *GuestRepository) ListGuests(operatorID int, requestID int) ([]db.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE operator_id = $1`
	args := []any{operatorID}
	if requestID != 0 {
		query += ` AND accommodation_request_id = $2`
		args = append(args, requestID)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var guests []db.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, apperrors.Storage(err)
		}
		guests = append(guests, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return guests, nil
}

func (r *GuestRepository) CreateGuest(operatorID int, g *db.Guest) error {
	err := r.DB.QueryRow(`
		INSERT INTO guests (operator_id, accommodation_request_id, first_name, last_name, document_type, document_number, birth_date, nationality)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		operatorID, g.AccommodationRequestID, g.FirstName, g.LastName, g.DocumentType, g.DocumentNumber, g.BirthDate, g.Nationality,
	).Scan(&g.ID)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *GuestRepository) UpdateGuest(operatorID, id int, patch entities.GuestPatch) (*db.Guest, error) {
	g, err := r.GetGuest(operatorID, id)
	if err != nil || g == nil {
		return nil, err
	}
	if patch.FirstName != nil {
		g.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		g.LastName = patch.LastName
	}
	if patch.DocumentType != nil {
		g.DocumentType = patch.DocumentType
	}
	if patch.DocumentNumber != nil {
		g.DocumentNumber = patch.DocumentNumber
	}
	if patch.BirthDate != nil {
		g.BirthDate = patch.BirthDate
	}
	if patch.Nationality != nil {
		g.Nationality = patch.Nationality
	}
	_, err = r.DB.Exec(`
		UPDATE guests SET first_name = $1, last_name = $2, document_type = $3, document_number = $4, birth_date = $5, nationality = $6
		WHERE id = $7 AND operator_id = $8`,
		g.FirstName, g.LastName, g.DocumentType, g.DocumentNumber, g.BirthDate, g.Nationality, id, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return g, nil
}

func (r *GuestRepository) DeleteGuest(operatorID, id int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM guests WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}
