package auth

import (
	"context"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

/*
UserRepo
--------
Persistence port for internal users.
Only describes WHAT the credential flows need, not HOW it's stored.
Email uniqueness is enforced by the store itself (unique constraint); the
application-level duplicate check is a fast path only.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id int64) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, id int64, fields domain.UserUpdate) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.User, error)

	// Updates needed by business flows
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error
	SetActive(ctx context.Context, userID int64, active bool) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}
