package postgres

import (
	"context"
	"database/sql"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type PanelRepo struct {
	db *sql.DB
}

func NewPanelRepo(db *sql.DB) *PanelRepo {
	return &PanelRepo{db: db}
}

func (r *PanelRepo) Get(ctx context.Context, t domain.PanelType) (domain.PanelPassword, error) {
	const q = `
SELECT panel_type, password, updated_at
FROM access_passwords
WHERE panel_type = $1
LIMIT 1;
`
	var p domain.PanelPassword
	err := r.db.QueryRowContext(ctx, q, string(t)).Scan(&p.PanelType, &p.Password, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.PanelPassword{}, domain.ErrPanelPasswordNotFound()
		}
		return domain.PanelPassword{}, domain.ErrDBUnavailable(err)
	}
	return p, nil
}

// Set upserts in a single statement so concurrent sets cannot create two rows
// for the same panel type.
func (r *PanelRepo) Set(ctx context.Context, t domain.PanelType, password string) error {
	const q = `
INSERT INTO access_passwords (panel_type, password)
VALUES ($1, $2)
ON CONFLICT (panel_type) DO UPDATE
SET password = EXCLUDED.password,
    updated_at = NOW();
`
	if _, err := r.db.ExecContext(ctx, q, string(t), password); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}
