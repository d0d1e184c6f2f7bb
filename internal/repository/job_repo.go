package repository

import (
	"database/sql"

	"hospedaje/internal/apperrors"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// ExpireLinks marks access links whose expiry date passed as used, so they
// stop admitting guest self-registrations.
func (r *JobRepository) ExpireLinks() (int64, error) {
	res, err := r.DB.Exec(`UPDATE links SET used = TRUE WHERE used = FALSE AND exp_date IS NOT NULL AND exp_date < NOW()`)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}

// CloseFinishedStays flips requests still marked "to check in" whose stay
// ended to "checked out".
func (r *JobRepository) CloseFinishedStays() (int64, error) {
	res, err := r.DB.Exec(`
		UPDATE accommodation_requests
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND check_out < NOW()`,
		"checked out", "to check in")
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}
