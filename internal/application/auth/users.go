package auth

import (
	"context"
	"strconv"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

func (s *Service) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return sanitize(u), nil
}

// ListUsers returns all internal users for the admin dashboard, hashes
// stripped.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = sanitize(users[i])
	}
	return users, nil
}

// SetUserActive toggles the account-level enable flag. This is the only
// transition between Active and Inactive; there is no automatic lockout.
func (s *Service) SetUserActive(ctx context.Context, userID int64, active bool) error {
	if err := s.users.SetActive(ctx, userID, active); err != nil {
		return err
	}
	s.audit("user_active_set", map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"active":  strconv.FormatBool(active),
	})
	return nil
}
