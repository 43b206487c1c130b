package http_handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/igrejaviva/comunidade-api/internal/application/auth"
	"github.com/igrejaviva/comunidade-api/internal/application/community"
	"github.com/igrejaviva/comunidade-api/internal/application/panels"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/memory"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/security"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/middleware"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/router"
)

// testApp wires the full HTTP surface over in-memory stores so handler tests
// exercise the same stack the server runs, minus postgres.
type testApp struct {
	handler http.Handler
	users   *memory.UserRepo
	signer  *security.SessionSigner
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := memory.NewUserRepo()
	panelsRepo := memory.NewPanelRepo()
	store := memory.NewCommunityStore()

	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	signer := security.NewSessionSigner("test-secret", "comunidade-api")

	authSvc := auth.NewService(users, hasher)
	panelSvc := panels.NewService(panelsRepo)
	communitySvc := community.NewService(community.Repos{
		Visitors:      memory.VisitorRepo{CommunityStore: store},
		Prayers:       memory.PrayerRepo{CommunityStore: store},
		Raffles:       memory.RaffleRepo{CommunityStore: store},
		Announcements: memory.AnnouncementRepo{CommunityStore: store},
		Schedules:     memory.ScheduleRepo{CommunityStore: store},
		Files:         memory.FileRepo{CommunityStore: store},
	})

	h, err := router.New(router.Deps{
		Health:    NewHealthHandler(nil),
		Auth:      NewAuthHandler(authSvc, signer, time.Hour, false),
		Panels:    NewPanelHandler(panelSvc),
		Community: NewCommunityHandler(communitySvc),
		Admin:     NewAdminHandler(authSvc),

		RequestIDMW: middleware.RequestID,
		SessionMW:   middleware.Session(signer, users),
		UserMW:      middleware.RequireUser(response.WriteError),
		AdminMW:     middleware.RequireAtLeast("admin", response.WriteError),
	})
	if err != nil {
		t.Fatalf("router: %v", err)
	}

	return &testApp{handler: h, users: users, signer: signer}
}

func (a *testApp) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

// sessionFor mints a cookie for an already-created user.
func (a *testApp) sessionFor(t *testing.T, userID int64, role string) *http.Cookie {
	t.Helper()

	tok, err := a.signer.SignSession(userID, role, time.Hour)
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return &http.Cookie{Name: security.SessionCookieName, Value: tok}
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body: %v, body=%q", err, rr.Body.String())
	}
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body response.ErrorBody
	decodeBody(t, rr, &body)
	return body.Error.Code
}
