package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/igrejaviva/comunidade-api/internal/application/auth"
	"github.com/igrejaviva/comunidade-api/internal/domain"
	"github.com/igrejaviva/comunidade-api/internal/logger"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/dto"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
)

type AdminHandler struct {
	svc *auth.Service
}

func NewAdminHandler(svc *auth.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromUsers(users))
}

func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		response.WriteError(w, r, domain.ErrInvalidField("userID", "must be a positive integer"))
		return
	}

	var req dto.SetUserActiveRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.SetUserActive(r.Context(), userID, *req.IsActive); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Int64("user_id", userID).
		Bool("is_active", *req.IsActive).
		Msg("user_active_changed")

	response.OK(w, map[string]any{"success": true})
}
