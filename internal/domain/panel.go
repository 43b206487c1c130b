package domain

import "time"

// PanelType names a public-facing gated dashboard view. Each panel is guarded
// by a single shared password, not by per-user credentials.
type PanelType string

const (
	PanelVisitors PanelType = "visitors"
	PanelPrayers  PanelType = "prayers"
	PanelRaffles  PanelType = "raffles"
)

func IsValidPanelType(t string) bool {
	switch PanelType(t) {
	case PanelVisitors, PanelPrayers, PanelRaffles:
		return true
	}
	return false
}

// PanelPassword is a shared secret keyed by panel type. The password is stored
// as plaintext and compared with plain string equality; this gate is
// deliberately weaker than the credential path and must not be treated as
// equivalent security.
type PanelPassword struct {
	PanelType PanelType
	Password  string
	UpdatedAt time.Time
}
