package http_handlers

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

func seedAdmin(t *testing.T, app *testApp) {
	t.Helper()
	_, err := app.users.Create(context.Background(), domain.User{
		Email: "admin@church.org", Name: "Admin",
		PasswordHash: "x", Role: "admin", IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func TestAdminUsers_MemberForbidden_AdminAllowed(t *testing.T) {
	app := newTestApp(t)
	seedAdmin(t, app) // id 1
	registerMember(t, app)

	// member (id 2) is blocked
	rr := app.do(t, http.MethodGet, "/api/v1/admin/users", "", app.sessionFor(t, 2, "member"))
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for member, got %d", rr.Code)
	}

	// admin sees the roster without hashes
	rr = app.do(t, http.MethodGet, "/api/v1/admin/users", "", app.sessionFor(t, 1, "admin"))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", rr.Code, rr.Body.String())
	}
	var list struct {
		Data []struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"data"`
	}
	decodeBody(t, rr, &list)
	if len(list.Data) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list.Data))
	}
	if body := rr.Body.String(); strings.Contains(body, "password_hash") || strings.Contains(body, "PasswordHash") {
		t.Fatalf("hash leaked into admin listing: %s", body)
	}
}

func TestAdminSetUserActive(t *testing.T) {
	app := newTestApp(t)
	seedAdmin(t, app) // id 1
	registerMember(t, app)

	admin := app.sessionFor(t, 1, "admin")

	rr := app.do(t, http.MethodPost, "/api/v1/admin/users/2/active",
		`{"is_active":false}`, admin)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	// the deactivated member cannot log in anymore
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"team@church.org","password":"Secret123"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after deactivation, got %d", rr.Code)
	}

	// unknown user id 404s
	rr = app.do(t, http.MethodPost, "/api/v1/admin/users/99/active",
		`{"is_active":true}`, admin)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}

	// missing body field 400s
	rr = app.do(t, http.MethodPost, "/api/v1/admin/users/2/active", `{}`, admin)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
