package http_handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/igrejaviva/comunidade-api/internal/application/auth"
	"github.com/igrejaviva/comunidade-api/internal/domain"
	"github.com/igrejaviva/comunidade-api/internal/infrastructure/security"
	"github.com/igrejaviva/comunidade-api/internal/logger"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/dto"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/middleware"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc           *auth.Service
	signer        *security.SessionSigner
	sessionTTL    time.Duration
	secureCookies bool
}

func NewAuthHandler(svc *auth.Service, signer *security.SessionSigner, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		signer:        signer,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	// Public endpoint: always a member account. Unknown payload fields,
	// including a "role", are discarded by the decoder above.
	u, err := h.svc.Register(r.Context(), req.Email, req.Password, req.Name, string(domain.RoleMember))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", u.ID).
		Str("email", u.Email).
		Msg("user_registered")

	response.Created(w, map[string]any{"success": true, "user": dto.FromUser(u)})
}

// Login authenticates and issues the session cookie. Every failure that stems
// from the credential pair is reported with one body so callers cannot tell
// a wrong password from an unknown or deactivated account; the precise code
// is only logged.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	u, err := h.svc.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindAuth {
			logger.WithCtx(r.Context()).Info().
				Str("code", de.Code).
				Msg("login_rejected")
			response.WriteError(w, r, domain.ErrInvalidCredentials())
			return
		}
		response.WriteError(w, r, err)
		return
	}

	tok, err := h.signer.SignSession(u.ID, u.Role, h.sessionTTL)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", u.ID).
		Msg("user_logged_in")

	security.SetSessionCookie(w, tok, h.sessionTTL, h.secureCookies)
	response.OK(w, dto.LoginView{Success: true, User: dto.FromUser(u)})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	security.ClearSessionCookie(w, h.secureCookies)
	response.OK(w, map[string]any{"success": true})
}

// Me reports the current account, or null for anonymous callers. It never
// errors; the frontend polls it to decide which shell to render.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.OK(w, nil)
		return
	}
	view := dto.FromUser(u)
	response.OK(w, &view)
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := middleware.UserFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrSessionMissing())
		return
	}

	var req dto.PasswordChangeRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), u.ID, req.CurrentPassword, req.NewPassword); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", u.ID).
		Msg("password_changed")

	response.OK(w, map[string]any{"success": true})
}
