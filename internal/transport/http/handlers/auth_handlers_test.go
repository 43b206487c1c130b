package http_handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/igrejaviva/comunidade-api/internal/infrastructure/security"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
)

func sessionCookieFrom(rr interface{ Result() *http.Response }) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == security.SessionCookieName || c.Name == "__Host-"+security.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestRegister_RoleInPayloadIsIgnored(t *testing.T) {
	app := newTestApp(t)

	// an anonymous caller asking for admin still gets a member account
	rr := app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"evil@x.com","password":"Secret123","role":"admin"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		Data struct {
			User struct {
				Role string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, rr, &created)
	if created.Data.User.Role != "member" {
		t.Fatalf("expected member, got %q", created.Data.User.Role)
	}

	u, err := app.users.GetByEmail(context.Background(), "evil@x.com")
	if err != nil || u.Role != "member" {
		t.Fatalf("expected stored role member, got %q err=%v", u.Role, err)
	}

	// the session for that account cannot reach the admin surface
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"evil@x.com","password":"Secret123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rr.Code)
	}
	cookie := sessionCookieFrom(rr)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}

	rr = app.do(t, http.MethodGet, "/api/v1/admin/users", "", cookie)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for self-registered account, got %d", rr.Code)
	}
}

func TestRegisterThenLogin_Flow(t *testing.T) {
	app := newTestApp(t)

	// register
	rr := app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123","name":"Ana"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		Data struct {
			Success bool `json:"success"`
			User    struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, rr, &created)
	if !created.Data.Success || created.Data.User.Role != "member" {
		t.Fatalf("unexpected register body: %s", rr.Body.String())
	}

	// login with the right password
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"Secret123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if c := sessionCookieFrom(rr); c == nil || c.Value == "" {
		t.Fatalf("expected session cookie on login")
	}

	var login struct {
		Data struct {
			Success bool `json:"success"`
			User    struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	decodeBody(t, rr, &login)
	if !login.Data.Success || login.Data.User.Email != "a@x.com" || login.Data.User.Role != "member" {
		t.Fatalf("unexpected login body: %s", rr.Body.String())
	}

	// login with the wrong password
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"WrongPass1"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code := errCode(t, rr); code != "invalid_credentials" {
		t.Fatalf("expected invalid_credentials, got %q", code)
	}
}

func TestLogin_UnknownEmailAndWrongPassword_SameBody(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register failed: %d", rr.Code)
	}

	unknown := app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@x.com","password":"Secret123"}`)
	wrong := app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"Nope12345"}`)

	if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrong.Code)
	}
	if unknown.Body.String() != wrong.Body.String() {
		t.Fatalf("login failure bodies must be indistinguishable:\n%s\n%s",
			unknown.Body.String(), wrong.Body.String())
	}
}

func TestLogin_DeactivatedAccount_SameGenericError(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)

	// deactivate directly in the store
	if err := app.users.SetActive(context.Background(), 1, false); err != nil {
		t.Fatalf("set active: %v", err)
	}

	rr := app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"Secret123"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code := errCode(t, rr); code != "invalid_credentials" {
		t.Fatalf("inactive accounts must not be distinguishable, got %q", code)
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	app := newTestApp(t)

	first := app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}

	second := app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Other1234"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", second.Code)
	}
	if code := errCode(t, second); code != "email_already_exists" {
		t.Fatalf("expected email_already_exists, got %q", code)
	}
}

func TestMe_AnonymousReturnsNull_AuthenticatedReturnsUser(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodGet, "/api/v1/auth/me", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var anon response.Envelope
	decodeBody(t, rr, &anon)
	if anon.Data != nil {
		t.Fatalf("expected null data for anonymous, got %v", anon.Data)
	}

	app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)

	rr = app.do(t, http.MethodGet, "/api/v1/auth/me", "", app.sessionFor(t, 1, "member"))
	var me struct {
		Data *struct {
			Email string `json:"email"`
		} `json:"data"`
	}
	decodeBody(t, rr, &me)
	if me.Data == nil || me.Data.Email != "a@x.com" {
		t.Fatalf("expected user view, got %s", rr.Body.String())
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	app := newTestApp(t)

	rr := app.do(t, http.MethodPost, "/api/v1/auth/logout", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	c := sessionCookieFrom(rr)
	if c == nil || c.MaxAge != -1 {
		t.Fatalf("expected expired session cookie, got %+v", c)
	}
}

func TestChangePassword_Flow(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)
	sess := app.sessionFor(t, 1, "member")

	// anonymous is rejected
	rr := app.do(t, http.MethodPost, "/api/v1/auth/password/change",
		`{"current_password":"Secret123","new_password":"NewSecret1"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", rr.Code)
	}

	// wrong current password
	rr = app.do(t, http.MethodPost, "/api/v1/auth/password/change",
		`{"current_password":"Wrong1234","new_password":"NewSecret1"}`, sess)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current, got %d body=%s", rr.Code, rr.Body.String())
	}

	// success
	rr = app.do(t, http.MethodPost, "/api/v1/auth/password/change",
		`{"current_password":"Secret123","new_password":"NewSecret1"}`, sess)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	// old password no longer logs in, new one does
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"Secret123"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("old password should fail, got %d", rr.Code)
	}
	rr = app.do(t, http.MethodPost, "/api/v1/auth/login",
		`{"email":"a@x.com","password":"NewSecret1"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("new password should work, got %d", rr.Code)
	}
}

func TestDeactivatedUser_SessionBecomesAnonymous(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/api/v1/auth/register",
		`{"email":"a@x.com","password":"Secret123"}`)
	sess := app.sessionFor(t, 1, "member")

	rr := app.do(t, http.MethodGet, "/api/v1/visitors", "", sess)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 while active, got %d", rr.Code)
	}

	if err := app.users.SetActive(context.Background(), 1, false); err != nil {
		t.Fatalf("set active: %v", err)
	}

	rr = app.do(t, http.MethodGet, "/api/v1/visitors", "", sess)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("deactivated user should lose access, got %d", rr.Code)
	}
}
