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

type LinkRepository struct {
	DB *sql.DB
}

func NewLinkRepository(database *sql.DB) *LinkRepository {
	return &LinkRepository{DB: database}
}

const linkColumns = `id, url, email, exp_date, one_use, used, emails_sent, accommodation_code, accommodation_request_id`

func scanLink(row interface{ Scan(...any) error }) (*db.AccessLink, error) {
	var l db.AccessLink
	err := row.Scan(&l.ID, &l.URL, &l.Email, &l.ExpDate, &l.OneUse, &l.Used,
		&l.EmailsSent, &l.AccommodationCode, &l.AccommodationRequestID)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LinkRepository) GetLink(operatorID, id int) (*db.AccessLink, error) {
	row := r.DB.QueryRow(`SELECT `+linkColumns+` FROM links WHERE id = $1 AND operator_id = $2`, id, operatorID)
	l, err := scanLink(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Storage(err)
	}
	return l, nil
}

// ListLinks joins each link with its request's contract reference for the
// registry view.
func (r *LinkRepository) ListLinks(operatorID int) ([]entities.LinkInfo, error) {
	rows, err := r.DB.Query(`
		SELECT l.id, l.url, l.email, l.exp_date, l.one_use, l.used, l.emails_sent,
		       l.accommodation_code, l.accommodation_request_id, rq.contract_reference
		FROM links l
		LEFT JOIN accommodation_requests rq ON rq.id = l.accommodation_request_id
		WHERE l.operator_id = $1
		ORDER BY l.id DESC`, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	var links []entities.LinkInfo
	for rows.Next() {
		var info entities.LinkInfo
		var exp *time.Time
		if err := rows.Scan(&info.ID, &info.URL, &info.Email, &exp, &info.OneUse, &info.Used,
			&info.EmailsSent, &info.AccommodationCode, &info.AccommodationRequestID, &info.ContractReference); err != nil {
			return nil, apperrors.Storage(err)
		}
		if exp != nil {
			formatted := exp.Format(time.RFC3339)
			info.ExpDate = &formatted
		}
		links = append(links, info)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return links, nil
}

func (r *LinkRepository) CreateLink(operatorID int, l *db.AccessLink) error {
	err := r.DB.QueryRow(`
		INSERT INTO links (operator_id, url, email, exp_date, one_use, used, emails_sent, accommodation_code, accommodation_request_id)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		RETURNING id`,
		operatorID, l.URL, l.Email, l.ExpDate, l.OneUse, l.Used, l.AccommodationCode, l.AccommodationRequestID,
	).Scan(&l.ID)
	if err != nil {
		return apperrors.Storage(err)
	}
	return nil
}

func (r *LinkRepository) UpdateLink(operatorID, id int, patch entities.LinkPatch) (*db.AccessLink, error) {
	l, err := r.GetLink(operatorID, id)
	if err != nil || l == nil {
		return nil, err
	}
	if patch.URL != nil {
		l.URL = *patch.URL
	}
	if patch.Email != nil {
		l.Email = patch.Email
	}
	if patch.ExpDate != nil {
		l.ExpDate = patch.ExpDate
	}
	if patch.OneUse != nil {
		l.OneUse = *patch.OneUse
	}
	if patch.Used != nil {
		l.Used = *patch.Used
	}
	if patch.EmailsSent != nil {
		l.EmailsSent = *patch.EmailsSent
	}
	_, err = r.DB.Exec(`
		UPDATE links SET url = $1, email = $2, exp_date = $3, one_use = $4, used = $5, emails_sent = $6
		WHERE id = $7 AND operator_id = $8`,
		l.URL, l.Email, l.ExpDate, l.OneUse, l.Used, l.EmailsSent, id, operatorID)
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	return l, nil
}

func (r *LinkRepository) DeleteLink(operatorID, id int) (int64, error) {
	res, err := r.DB.Exec(`DELETE FROM links WHERE id = $1 AND operator_id = $2`, id, operatorID)
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage(err)
	}
	return n, nil
}

// ListLinkEmails maps request id -> contact email for the daily operations
// enrichment. When a request has several links the last scanned wins, same as
// the registry view.
func (r *LinkRepository) ListLinkEmails(operatorID int, requestIDs []int) (map[int]string, error) {
	rows, err := r.DB.Query(`
		SELECT accommodation_request_id, email
		FROM links
		WHERE operator_id = $1 AND accommodation_request_id = ANY($2) AND email IS NOT NULL`,
		operatorID, pq.Array(requestIDs))
	if err != nil {
		return nil, apperrors.Storage(err)
	}
	defer rows.Close()

	emails := make(map[int]string)
	for rows.Next() {
		var requestID int
		var email string
		if err := rows.Scan(&requestID, &email); err != nil {
			return nil, apperrors.Storage(err)
		}
		emails[requestID] = email
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Storage(err)
	}
	return emails, nil
}
