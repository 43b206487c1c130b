package http_handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/igrejaviva/comunidade-api/internal/application/community"
	"github.com/igrejaviva/comunidade-api/internal/domain"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/dto"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/middleware"
	"github.com/igrejaviva/comunidade-api/internal/transport/http/response"
)

type CommunityHandler struct {
	svc *community.Service
}

func NewCommunityHandler(svc *community.Service) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidField(name, "must be a positive integer")
	}
	return id, nil
}

// ---- Visitors ----

func (h *CommunityHandler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var req dto.VisitorCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	v, err := h.svc.CreateVisitor(r.Context(), domain.Visitor{
		Name: req.Name, Email: req.Email, Phone: req.Phone, Message: req.Message,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromVisitor(v))
}

func (h *CommunityHandler) ListVisitors(w http.ResponseWriter, r *http.Request) {
	vs, err := h.svc.ListVisitors(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromVisitors(vs))
}

// ---- Prayer requests ----

func (h *CommunityHandler) CreatePrayerRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.PrayerCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.CreatePrayerRequest(r.Context(), domain.PrayerRequest{
		Name: req.Name, Email: req.Email, Phone: req.Phone,
		Message: req.Message, IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromPrayer(p))
}

func (h *CommunityHandler) ListPrayerRequests(w http.ResponseWriter, r *http.Request) {
	ps, err := h.svc.ListPrayerRequests(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromPrayers(ps))
}

// ---- Raffles ----

func (h *CommunityHandler) CreateRaffle(w http.ResponseWriter, r *http.Request) {
	var req dto.RaffleCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	ra, err := h.svc.CreateRaffle(r.Context(), domain.Raffle{
		Title: req.Title, Description: req.Description, Question: req.Question,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromRaffle(ra))
}

func (h *CommunityHandler) ListRaffles(w http.ResponseWriter, r *http.Request) {
	rs, err := h.svc.ListRaffles(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromRaffles(rs))
}

func (h *CommunityHandler) GetRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID, err := idParam(r, "raffleID")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	ra, err := h.svc.GetRaffle(r.Context(), raffleID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromRaffle(ra))
}

func (h *CommunityHandler) JoinRaffle(w http.ResponseWriter, r *http.Request) {
	raffleID, err := idParam(r, "raffleID")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	var req dto.RaffleJoinRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.AddRaffleParticipant(r.Context(), domain.RaffleParticipant{
		RaffleID: raffleID, Name: req.Name, Email: req.Email,
		Phone: req.Phone, Answer: req.Answer,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromRaffleParticipant(p))
}

func (h *CommunityHandler) ListRaffleParticipants(w http.ResponseWriter, r *http.Request) {
	raffleID, err := idParam(r, "raffleID")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	ps, err := h.svc.ListRaffleParticipants(r.Context(), raffleID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromRaffleParticipants(ps))
}

// ---- Announcements ----

func (h *CommunityHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req dto.AnnouncementCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a := domain.Announcement{Title: req.Title, Content: req.Content}
	if u, ok := middleware.UserFromContext(r.Context()); ok {
		a.CreatedBy = u.ID
	}

	created, err := h.svc.CreateAnnouncement(r.Context(), a)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromAnnouncement(created))
}

func (h *CommunityHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	as, err := h.svc.ListAnnouncements(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromAnnouncements(as))
}

func (h *CommunityHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.svc.DeleteAnnouncement(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}

// ---- Schedules ----

func (h *CommunityHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req dto.ScheduleCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	sc := domain.Schedule{Title: req.Title, Description: req.Description, Content: req.Content}
	if u, ok := middleware.UserFromContext(r.Context()); ok {
		sc.CreatedBy = u.ID
	}

	created, err := h.svc.CreateSchedule(r.Context(), sc)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromSchedule(created))
}

func (h *CommunityHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ss, err := h.svc.ListSchedules(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromSchedules(ss))
}

func (h *CommunityHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.svc.DeleteSchedule(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}

// ---- Files ----

func (h *CommunityHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var req dto.FileCreateRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	f := domain.StoredFile{
		Filename: req.Filename, FileKey: req.FileKey, URL: req.URL,
		MimeType: req.MimeType, Size: req.Size,
	}
	if u, ok := middleware.UserFromContext(r.Context()); ok {
		f.UploadedBy = u.ID
	}

	created, err := h.svc.CreateFile(r.Context(), f)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, dto.FromFile(created))
}

func (h *CommunityHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	fs, err := h.svc.ListFiles(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.FromFiles(fs))
}

func (h *CommunityHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := h.svc.DeleteFile(r.Context(), id); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.NoContent(w)
}
