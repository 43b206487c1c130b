package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// SeedAdmin inserts an initial admin account when the email is not taken.
// Used on first boot so a fresh deployment has a working login.
func SeedAdmin(ctx context.Context, db *sql.DB, email, passwordHash string) error {
	const q = `
INSERT INTO internal_users (email, name, password_hash, role, is_active)
VALUES ($1, 'Administrator', $2, $3, TRUE)
ON CONFLICT (email) DO NOTHING;
`
	if _, err := db.ExecContext(ctx, q, email, passwordHash, string(domain.RoleAdmin)); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
