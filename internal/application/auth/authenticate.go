package auth

import (
	"context"
	"strings"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// Authenticate validates an email/password pair against the credential store.
// IMPORTANT: unknown email and wrong password both return invalid_credentials
// so callers cannot enumerate accounts. Store failures propagate as
// infrastructure errors, never as credential errors.
func (s *Service) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.KindOf(err) == domain.KindInfrastructure {
			return domain.User{}, err
		}
		// Hide not-found behind invalid credentials.
		return domain.User{}, domain.ErrInvalidCredentials()
	}

	if !u.IsActive {
		return domain.User{}, domain.ErrAccountInactive()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials()
	}

	s.audit("user_authenticated", map[string]string{"email": u.Email})
	return sanitize(u), nil
}
