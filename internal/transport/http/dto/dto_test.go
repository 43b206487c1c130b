package dto

import (
	"testing"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

func TestRegisterRequest_Validate(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r := &RegisterRequest{Email: "", Password: "Secret123"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := &RegisterRequest{Email: "a@b.com", Password: ""}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(password), got: %v", err)
		}
	})

	t.Run("weak password (<8)", func(t *testing.T) {
		r := &RegisterRequest{Email: "a@b.com", Password: "short"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "weak_password") {
			t.Fatalf("expected weak_password, got: %v", err)
		}
	})

	t.Run("invalid email format", func(t *testing.T) {
		r := &RegisterRequest{Email: "abc", Password: "Secret123"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "invalid_field") {
			t.Fatalf("expected invalid_field(email), got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &RegisterRequest{Email: "a@b.com", Password: "Secret123", Name: "Ana"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r := &LoginRequest{Email: "", Password: "x"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(email), got: %v", err)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		r := &LoginRequest{Email: "a@b.com", Password: ""}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field(password), got: %v", err)
		}
	})

	t.Run("malformed email is not rejected here", func(t *testing.T) {
		// Login treats a bad email like any other wrong credential so the
		// endpoint does not reveal which part of the pair was wrong.
		r := &LoginRequest{Email: "not-an-email", Password: "x"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestPasswordChangeRequest_Validate(t *testing.T) {
	t.Run("missing current", func(t *testing.T) {
		r := &PasswordChangeRequest{CurrentPassword: "", NewPassword: "Secret123"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("weak new password", func(t *testing.T) {
		r := &PasswordChangeRequest{CurrentPassword: "old", NewPassword: "short"}
		err := r.Validate()
		if err == nil || !domain.Is(err, "weak_password") {
			t.Fatalf("expected weak_password, got: %v", err)
		}
	})

	t.Run("ok", func(t *testing.T) {
		r := &PasswordChangeRequest{CurrentPassword: "old", NewPassword: "Secret123"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestPanelRequests_Validate(t *testing.T) {
	t.Run("set requires password", func(t *testing.T) {
		r := &PanelSetPasswordRequest{}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("verify requires password", func(t *testing.T) {
		r := &PanelVerifyRequest{}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})
}

func TestCommunityRequests_Validate(t *testing.T) {
	t.Run("visitor requires name", func(t *testing.T) {
		r := &VisitorCreateRequest{Message: "hi"}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("prayer requires message", func(t *testing.T) {
		r := &PrayerCreateRequest{Name: "Ana"}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("file requires key and url", func(t *testing.T) {
		r := &FileCreateRequest{Filename: "boletim.pdf"}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("announcement ok", func(t *testing.T) {
		r := &AnnouncementCreateRequest{Title: "Culto", Content: "Domingo 10h"}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}

func TestSetUserActiveRequest_Validate(t *testing.T) {
	t.Run("missing is_active", func(t *testing.T) {
		r := &SetUserActiveRequest{}
		if err := r.Validate(); err == nil || !domain.Is(err, "missing_field") {
			t.Fatalf("expected missing_field, got: %v", err)
		}
	})

	t.Run("explicit false is valid", func(t *testing.T) {
		f := false
		r := &SetUserActiveRequest{IsActive: &f}
		if err := r.Validate(); err != nil {
			t.Fatalf("expected nil, got: %v", err)
		}
	})
}
