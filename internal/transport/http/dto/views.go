package dto

import (
	"time"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// Response views. Password hashes never appear here; the panel password does,
// since admins read it back to hand out.

type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u domain.User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

func FromUsers(users []domain.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type LoginView struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

type PanelPasswordView struct {
	PanelType string    `json:"panel_type"`
	Password  string    `json:"password"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromPanelPassword(p domain.PanelPassword) PanelPasswordView {
	return PanelPasswordView{
		PanelType: string(p.PanelType),
		Password:  p.Password,
		UpdatedAt: p.UpdatedAt,
	}
}

type VerifyView struct {
	Valid bool `json:"valid"`
}

type VisitorView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func FromVisitor(v domain.Visitor) VisitorView {
	return VisitorView{
		ID: v.ID, Name: v.Name, Email: v.Email,
		Phone: v.Phone, Message: v.Message, CreatedAt: v.CreatedAt,
	}
}

func FromVisitors(vs []domain.Visitor) []VisitorView {
	out := make([]VisitorView, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromVisitor(v))
	}
	return out
}

type PrayerView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPrayer(p domain.PrayerRequest) PrayerView {
	return PrayerView{
		ID: p.ID, Name: p.Name, Email: p.Email, Phone: p.Phone,
		Message: p.Message, IsAnonymous: p.IsAnonymous, CreatedAt: p.CreatedAt,
	}
}

func FromPrayers(ps []domain.PrayerRequest) []PrayerView {
	out := make([]PrayerView, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPrayer(p))
	}
	return out
}

type RaffleView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Question    string    `json:"question"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromRaffle(r domain.Raffle) RaffleView {
	return RaffleView{
		ID: r.ID, Title: r.Title, Description: r.Description,
		Question: r.Question, CreatedAt: r.CreatedAt,
	}
}

func FromRaffles(rs []domain.Raffle) []RaffleView {
	out := make([]RaffleView, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRaffle(r))
	}
	return out
}

type RaffleParticipantView struct {
	ID        int64     `json:"id"`
	RaffleID  int64     `json:"raffle_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

func FromRaffleParticipant(p domain.RaffleParticipant) RaffleParticipantView {
	return RaffleParticipantView{
		ID: p.ID, RaffleID: p.RaffleID, Name: p.Name, Email: p.Email,
		Phone: p.Phone, Answer: p.Answer, CreatedAt: p.CreatedAt,
	}
}

func FromRaffleParticipants(ps []domain.RaffleParticipant) []RaffleParticipantView {
	out := make([]RaffleParticipantView, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromRaffleParticipant(p))
	}
	return out
}

type AnnouncementView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAnnouncement(a domain.Announcement) AnnouncementView {
	return AnnouncementView{
		ID: a.ID, Title: a.Title, Content: a.Content,
		CreatedBy: a.CreatedBy, CreatedAt: a.CreatedAt,
	}
}

func FromAnnouncements(as []domain.Announcement) []AnnouncementView {
	out := make([]AnnouncementView, 0, len(as))
	for _, a := range as {
		out = append(out, FromAnnouncement(a))
	}
	return out
}

type ScheduleView struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromSchedule(s domain.Schedule) ScheduleView {
	return ScheduleView{
		ID: s.ID, Title: s.Title, Description: s.Description,
		Content: s.Content, CreatedBy: s.CreatedBy, CreatedAt: s.CreatedAt,
	}
}

func FromSchedules(ss []domain.Schedule) []ScheduleView {
	out := make([]ScheduleView, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromSchedule(s))
	}
	return out
}

type FileView struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FileKey    string    `json:"file_key"`
	URL        string    `json:"url"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	UploadedBy int64     `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromFile(f domain.StoredFile) FileView {
	return FileView{
		ID: f.ID, Filename: f.Filename, FileKey: f.FileKey, URL: f.URL,
		MimeType: f.MimeType, Size: f.Size, UploadedBy: f.UploadedBy, CreatedAt: f.CreatedAt,
	}
}

func FromFiles(fs []domain.StoredFile) []FileView {
	out := make([]FileView, 0, len(fs))
	for _, f := range fs {
		out = append(out, FromFile(f))
	}
	return out
}
