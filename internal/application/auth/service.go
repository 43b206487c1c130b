package auth

import "github.com/igrejaviva/comunidade-api/internal/domain"

// Service implements the credential flows: registration, authentication and
// password change. It does not mint session cookies; the transport layer binds
// the authenticated identity returned here to a cookie.
type Service struct {
	users  UserRepo
	hasher PasswordHasher
	audit  func(action string, fields map[string]string)
}

func NewService(users UserRepo, hasher PasswordHasher) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		audit:  func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// sanitize strips the stored hash before a user record leaves the service.
func sanitize(u domain.User) domain.User {
	u.PasswordHash = ""
	return u
}
