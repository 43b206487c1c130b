// Package panels implements the shared-secret gate in front of the public
// visitor, prayer and raffle views. One plaintext password per panel type,
// compared with plain string equality. This is a convenience gate, not a
// credential path; accounts go through application/auth.
package panels

import (
	"context"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

/*
PanelRepo
---------
Persistence port for panel passwords. Set is an upsert: at most one row per
panel type, enforced by the store.
*/
type PanelRepo interface {
	Get(ctx context.Context, t domain.PanelType) (domain.PanelPassword, error)
	Set(ctx context.Context, t domain.PanelType, password string) error
}

type Service struct {
	panels PanelRepo
}

func NewService(panels PanelRepo) *Service {
	return &Service{panels: panels}
}

// Set overwrites the password for a panel type, creating it if absent.
func (s *Service) Set(ctx context.Context, panelType, password string) error {
	if !domain.IsValidPanelType(panelType) {
		return domain.ErrInvalidPanelType(panelType)
	}
	if password == "" {
		return domain.ErrMissingField("password")
	}
	return s.panels.Set(ctx, domain.PanelType(panelType), password)
}

// Get returns the stored password row for administrators.
func (s *Service) Get(ctx context.Context, panelType string) (domain.PanelPassword, error) {
	if !domain.IsValidPanelType(panelType) {
		return domain.PanelPassword{}, domain.ErrInvalidPanelType(panelType)
	}
	return s.panels.Get(ctx, domain.PanelType(panelType))
}

// Verify reports whether the candidate matches the stored password. An unset
// panel never verifies. Comparison is exact string equality, matching the
// historical behavior of this gate.
func (s *Service) Verify(ctx context.Context, panelType, password string) (bool, error) {
	if !domain.IsValidPanelType(panelType) {
		return false, domain.ErrInvalidPanelType(panelType)
	}
	stored, err := s.panels.Get(ctx, domain.PanelType(panelType))
	if err != nil {
		if domain.Is(err, "panel_password_not_found") {
			return false, nil
		}
		return false, err
	}
	return stored.Password == password, nil
}
