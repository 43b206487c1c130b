package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type PanelHandler interface {
	GetPassword(w http.ResponseWriter, r *http.Request)
	SetPassword(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
}

type CommunityHandler interface {
	CreateVisitor(w http.ResponseWriter, r *http.Request)
	ListVisitors(w http.ResponseWriter, r *http.Request)

	CreatePrayerRequest(w http.ResponseWriter, r *http.Request)
	ListPrayerRequests(w http.ResponseWriter, r *http.Request)

	CreateRaffle(w http.ResponseWriter, r *http.Request)
	ListRaffles(w http.ResponseWriter, r *http.Request)
	GetRaffle(w http.ResponseWriter, r *http.Request)
	JoinRaffle(w http.ResponseWriter, r *http.Request)
	ListRaffleParticipants(w http.ResponseWriter, r *http.Request)

	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	DeleteAnnouncement(w http.ResponseWriter, r *http.Request)

	CreateSchedule(w http.ResponseWriter, r *http.Request)
	ListSchedules(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)

	CreateFile(w http.ResponseWriter, r *http.Request)
	ListFiles(w http.ResponseWriter, r *http.Request)
	DeleteFile(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	SetUserActive(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health    HealthHandler
	Auth      AuthHandler
	Panels    PanelHandler
	Community CommunityHandler
	Admin     AdminHandler

	RequestIDMW func(http.Handler) http.Handler
	SessionMW   func(http.Handler) http.Handler
	UserMW      func(http.Handler) http.Handler
	AdminMW     func(http.Handler) http.Handler
}

// New builds the full route table. Public intake endpoints (visitor/prayer
// creation, raffle entry, panel verify) take no session; reads and management
// require a signed-in member, account administration requires admin.
func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Panels == nil {
		return nil, fmt.Errorf("nil Panels handler")
	}
	if deps.Community == nil {
		return nil, fmt.Errorf("nil Community handler")
	}
	if deps.Admin == nil {
		return nil, fmt.Errorf("nil Admin handler")
	}
	if deps.RequestIDMW == nil || deps.SessionMW == nil || deps.UserMW == nil || deps.AdminMW == nil {
		return nil, fmt.Errorf("nil middleware")
	}

	r := chi.NewRouter()
	r.Use(deps.RequestIDMW)
	r.Use(deps.SessionMW)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Auth ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/logout", deps.Auth.Logout)
			r.Get("/me", deps.Auth.Me)
			r.With(deps.UserMW).Post("/password/change", deps.Auth.ChangePassword)
		})

		// --- Public intake ---
		r.Post("/visitors", deps.Community.CreateVisitor)
		r.Post("/prayers", deps.Community.CreatePrayerRequest)
		r.Get("/raffles/{raffleID}", deps.Community.GetRaffle)
		r.Post("/raffles/{raffleID}/participants", deps.Community.JoinRaffle)

		// --- Panel gate ---
		r.Post("/panels/{panelType}/verify", deps.Panels.Verify)
		r.Route("/panels/{panelType}/password", func(r chi.Router) {
			r.Use(deps.UserMW)
			r.Get("/", deps.Panels.GetPassword)
			r.Put("/", deps.Panels.SetPassword)
		})

		// --- Member area ---
		r.Group(func(r chi.Router) {
			r.Use(deps.UserMW)

			r.Get("/visitors", deps.Community.ListVisitors)
			r.Get("/prayers", deps.Community.ListPrayerRequests)

			r.Post("/raffles", deps.Community.CreateRaffle)
			r.Get("/raffles", deps.Community.ListRaffles)
			r.Get("/raffles/{raffleID}/participants", deps.Community.ListRaffleParticipants)

			r.Post("/announcements", deps.Community.CreateAnnouncement)
			r.Get("/announcements", deps.Community.ListAnnouncements)
			r.Delete("/announcements/{id}", deps.Community.DeleteAnnouncement)

			r.Post("/schedules", deps.Community.CreateSchedule)
			r.Get("/schedules", deps.Community.ListSchedules)
			r.Delete("/schedules/{id}", deps.Community.DeleteSchedule)

			r.Post("/files", deps.Community.CreateFile)
			r.Get("/files", deps.Community.ListFiles)
			r.Delete("/files/{id}", deps.Community.DeleteFile)
		})

		// --- Admin ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(deps.UserMW)
			r.Use(deps.AdminMW)

			r.Get("/users", deps.Admin.ListUsers)
			r.Post("/users/{userID}/active", deps.Admin.SetUserActive)
		})
	})

	return r, nil
}
