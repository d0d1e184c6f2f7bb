package repository

import (
	"database/sql"
	"errors"

	"hospedaje/internal/apperrors"
	"hospedaje/internal/db"
	"hospedaje/internal/entities"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

func (r *VehicleRepository) GetVehicle(operatorID, id int) (*db.Vehicle, error) {
	var v db.Vehicle
	err := r.DB.QueryRow(`
		SELECT id, accommodation_request_id, plate, model
		FROM vehicles WHERE id = $1 AND operator_id = $2`, id, operatorID,
	).Scan(&v.ID, &v.AccommodationRequestID, &v.Plate, &v.Model)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return &v, nil
}

func (r *VehicleRepository) ListVehicles(operatorID int, requestID int) ([]db.Vehicle, error) {
	query := `SELECT id, accommodation_request_id, plate, model FROM vehicles WHERE operator_id = $1`
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

	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		if err := rows.Scan(&v.ID, &v.AccommodationRequestID, &v.Plate, &v.Model); err != nil {
			return nil, apperrors.Storage(err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) CreateVehicle(operatorID int, v *db.Vehicle) error {
	err := r.DB.QueryRow(`
		INSERT INTO vehicles (operator_id, accommodation_request_id, plate, model)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		operatorID, v.AccommodationRequestID, v.Plate, v.Model,
	).Scan(&v.ID)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *VehicleRepository) UpdateVehicle(operatorID, id int, patch entities.VehiclePatch) (*db.Vehicle, error) {
	v, err := r.GetVehicle(operatorID, id)
	if err != nil || v == nil {
		return nil, err
	}
	if patch.Plate != nil {
		v.Plate = *patch.Plate
	}
	if patch.Model != nil {
		v.Model = patch.Model
	}
	_, err = r.DB.Exec(`UPDATE vehicles SET plate = $1, model = $2 WHERE id = $3 AND operator_id = $4`,
		v.Plate, v.Model, id, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return v, nil
}

func (r *VehicleRepository) DeleteVehicle(operatorID, id int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM vehicles WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}
