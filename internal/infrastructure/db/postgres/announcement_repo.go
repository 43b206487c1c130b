package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type AnnouncementRepo struct {
	db *sql.DB
}

func NewAnnouncementRepo(db *sql.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

func (r *AnnouncementRepo) Create(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	const q = `
INSERT INTO announcements (title, content, created_by)
VALUES ($1,$2,$3)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, a.Title, a.Content, a.CreatedBy).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return domain.Announcement{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}

func (r *AnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	const q = `
SELECT id, title, content, created_by, created_at
FROM announcements
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM announcements WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrRecordNotFound("announcement")
	}
	return nil
}
