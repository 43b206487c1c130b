package auth

import (
	"context"
	"strings"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// Register creates a new internal user with an active account. It does not
// sign the user in; login is a separate step.
func (s *Service) Register(ctx context.Context, email, password, name, role string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return domain.User{}, domain.ErrMissingField("password")
	}
	if role == "" {
		role = string(domain.RoleMember)
	}
	if !domain.IsValidRole(role) {
		return domain.User{}, domain.ErrInvalidRole(role)
	}

	// Fast-path duplicate check. The unique index on email is the real
	// guarantee; two concurrent registrations race here and the loser gets
	// the conflict from Create instead.
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	} else if domain.KindOf(err) == domain.KindInfrastructure {
		return domain.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.ErrHashFailed(err)
	}

	created, err := s.users.Create(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return domain.User{}, err
	}

	s.audit("user_registered", map[string]string{"email": created.Email})
	return sanitize(created), nil
}
