package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type ScheduleRepo struct {
	db *sql.DB
}

func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

func (r *ScheduleRepo) Create(ctx context.Context, s domain.Schedule) (domain.Schedule, error) {
	const q = `
INSERT INTO schedules (title, description, content, created_by)
VALUES ($1,$2,$3,$4)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, s.Title, s.Description, s.Content, s.CreatedBy).
		Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return domain.Schedule{}, domain.ErrDBUnavailable(err)
	}
	return s, nil
}

func (r *ScheduleRepo) List(ctx context.Context) ([]domain.Schedule, error) {
	const q = `
SELECT id, title, description, content, created_by, created_at
FROM schedules
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Content, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM schedules WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrRecordNotFound("schedule")
	}
	return nil
}
