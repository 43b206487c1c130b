package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/igrejaviva/comunidade-api/internal/application/panels"
	"github.com/igrejaviva/comunidade-api/internal/domain"
	"github.com/igrejaviva/comunidade-api/internal/logger"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/dto"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
)

type PanelHandler struct {
	svc *panels.Service
}

func NewPanelHandler(svc *panels.Service) *PanelHandler {
	return &PanelHandler{svc: svc}
}

// GetPassword returns the stored row, or null when no password has been set
// yet. Authenticated team members read it back to hand the secret out.
func (h *PanelHandler) GetPassword(w http.ResponseWriter, r *http.Request) {
	panelType := chi.URLParam(r, "panelType")

	p, err := h.svc.Get(r.Context(), panelType)
	if err != nil {
		if domain.Is(err, "panel_password_not_found") {
			response.OK(w, nil)
			return
		}
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromPanelPassword(p))
}

func (h *PanelHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	panelType := chi.URLParam(r, "panelType")

	var req dto.PanelSetPasswordRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := h.svc.Set(r.Context(), panelType, req.Password); err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("panel_type", panelType).
		Msg("panel_password_set")

	response.OK(w, map[string]any{"success": true})
}

// Verify is the public gate check. It answers valid true/false without
// distinguishing "wrong password" from "no password configured".
func (h *PanelHandler) Verify(w http.ResponseWriter, r *http.Request) {
	panelType := chi.URLParam(r, "panelType")

	var req dto.PanelVerifyRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	ok, err := h.svc.Verify(r.Context(), panelType, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.VerifyView{Valid: ok})
}
