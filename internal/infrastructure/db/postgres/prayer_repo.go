package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type PrayerRepo struct {
	db *sql.DB
}

func NewPrayerRepo(db *sql.DB) *PrayerRepo {
	return &PrayerRepo{db: db}
}

func (r *PrayerRepo) Create(ctx context.Context, p domain.PrayerRequest) (domain.PrayerRequest, error) {
	const q = `
INSERT INTO prayer_requests (name, email, phone, message, is_anonymous)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, p.Name, p.Email, p.Phone, p.Message, p.IsAnonymous).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return domain.PrayerRequest{}, domain.ErrDBUnavailable(err)
	}
	return p, nil
}

func (r *PrayerRepo) List(ctx context.Context) ([]domain.PrayerRequest, error) {
	const q = `
SELECT id, name, email, phone, message, is_anonymous, created_at
FROM prayer_requests
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.PrayerRequest
	for rows.Next() {
		var p domain.PrayerRequest
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Message, &p.IsAnonymous, &p.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
