package auth

import (
	"context"
	"strconv"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// ChangePassword changes the password for an authenticated user. The current
// password is re-verified directly against the acting user's stored hash
// rather than by email re-lookup, so a stale or swapped email cannot bypass
// the check.
func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return domain.ErrMissingField("current_password")
	}
	if newPassword == "" {
		return domain.ErrMissingField("new_password")
	}
	if len(newPassword) < 8 {
		return domain.ErrWeakPassword("min length 8")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(u.PasswordHash, currentPassword); err != nil {
		return domain.ErrInvalidCredentials()
	}

	newHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return domain.ErrHashFailed(err)
	}

	if err := s.users.UpdatePasswordHash(ctx, userID, newHash); err != nil {
		return err
	}

	// Sessions stay valid: cookies are stateless and carry no password
	// material, so there is nothing to revoke here.
	s.audit("password_changed", map[string]string{"user_id": strconv.FormatInt(userID, 10)})
	return nil
}
