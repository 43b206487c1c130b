package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type VisitorRepo struct {
	db *sql.DB
}

func NewVisitorRepo(db *sql.DB) *VisitorRepo {
	return &VisitorRepo{db: db}
}

func (r *VisitorRepo) Create(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	const q = `
INSERT INTO visitors (name, email, phone, message)
VALUES ($1,$2,$3,$4)
RETURNING id, created_at;
`
	err := r.db.QueryRowContext(ctx, q, v.Name, v.Email, v.Phone, v.Message).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		return domain.Visitor{}, domain.ErrDBUnavailable(err)
	}
	return v, nil
}

func (r *VisitorRepo) List(ctx context.Context) ([]domain.Visitor, error) {
	const q = `
SELECT id, name, email, phone, message, created_at
FROM visitors
ORDER BY created_at;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.Visitor
	for rows.Next() {
		var v domain.Visitor
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Message, &v.CreatedAt); err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
