// Package community holds the content flows of the church app: visitor and
// prayer intake, raffles, announcements, ministry schedules and file records.
package community

import (
	"context"
	"strings"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

type Service struct {
	visitors      VisitorRepo
	prayers       PrayerRepo
	raffles       RaffleRepo
	announcements AnnouncementRepo
	schedules     ScheduleRepo
	files         FileRepo
}

type Repos struct {
	Visitors      VisitorRepo
	Prayers       PrayerRepo
	Raffles       RaffleRepo
	Announcements AnnouncementRepo
	Schedules     ScheduleRepo
	Files         FileRepo
}

func NewService(r Repos) *Service {
	return &Service{
		visitors:      r.Visitors,
		prayers:       r.Prayers,
		raffles:       r.Raffles,
		announcements: r.Announcements,
		schedules:     r.Schedules,
		files:         r.Files,
	}
}

// ---- Visitors ----

func (s *Service) CreateVisitor(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" {
		return domain.Visitor{}, domain.ErrMissingField("name")
	}
	return s.visitors.Create(ctx, v)
}

func (s *Service) ListVisitors(ctx context.Context) ([]domain.Visitor, error) {
	return s.visitors.List(ctx)
}

// ---- Prayer requests ----

func (s *Service) CreatePrayerRequest(ctx context.Context, p domain.PrayerRequest) (domain.PrayerRequest, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.PrayerRequest{}, domain.ErrMissingField("name")
	}
	if strings.TrimSpace(p.Message) == "" {
		return domain.PrayerRequest{}, domain.ErrMissingField("message")
	}
	return s.prayers.Create(ctx, p)
}

func (s *Service) ListPrayerRequests(ctx context.Context) ([]domain.PrayerRequest, error) {
	return s.prayers.List(ctx)
}

// ---- Raffles ----

func (s *Service) CreateRaffle(ctx context.Context, r domain.Raffle) (domain.Raffle, error) {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return domain.Raffle{}, domain.ErrMissingField("title")
	}
	return s.raffles.Create(ctx, r)
}

func (s *Service) ListRaffles(ctx context.Context) ([]domain.Raffle, error) {
	return s.raffles.List(ctx)
}

func (s *Service) GetRaffle(ctx context.Context, id int64) (domain.Raffle, error) {
	return s.raffles.GetByID(ctx, id)
}

// AddRaffleParticipant records an entry for an existing raffle. The raffle is
// looked up first so a bogus id fails with not_found instead of a dangling
// foreign key error.
func (s *Service) AddRaffleParticipant(ctx context.Context, p domain.RaffleParticipant) (domain.RaffleParticipant, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.RaffleParticipant{}, domain.ErrMissingField("name")
	}
	if _, err := s.raffles.GetByID(ctx, p.RaffleID); err != nil {
		return domain.RaffleParticipant{}, err
	}
	return s.raffles.AddParticipant(ctx, p)
}

func (s *Service) ListRaffleParticipants(ctx context.Context, raffleID int64) ([]domain.RaffleParticipant, error) {
	if _, err := s.raffles.GetByID(ctx, raffleID); err != nil {
		return nil, err
	}
	return s.raffles.ListParticipants(ctx, raffleID)
}

// ---- Announcements ----

func (s *Service) CreateAnnouncement(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	if strings.TrimSpace(a.Title) == "" {
		return domain.Announcement{}, domain.ErrMissingField("title")
	}
	if strings.TrimSpace(a.Content) == "" {
		return domain.Announcement{}, domain.ErrMissingField("content")
	}
	return s.announcements.Create(ctx, a)
}

func (s *Service) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcements.List(ctx)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, id int64) error {
	return s.announcements.Delete(ctx, id)
}

// ---- Schedules ----

func (s *Service) CreateSchedule(ctx context.Context, sc domain.Schedule) (domain.Schedule, error) {
	if strings.TrimSpace(sc.Title) == "" {
		return domain.Schedule{}, domain.ErrMissingField("title")
	}
	if strings.TrimSpace(sc.Content) == "" {
		return domain.Schedule{}, domain.ErrMissingField("content")
	}
	return s.schedules.Create(ctx, sc)
}

func (s *Service) ListSchedules(ctx context.Context) ([]domain.Schedule, error) {
	return s.schedules.List(ctx)
}

func (s *Service) DeleteSchedule(ctx context.Context, id int64) error {
	return s.schedules.Delete(ctx, id)
}

// ---- Files ----

func (s *Service) CreateFile(ctx context.Context, f domain.StoredFile) (domain.StoredFile, error) {
	if strings.TrimSpace(f.Filename) == "" {
		return domain.StoredFile{}, domain.ErrMissingField("filename")
	}
	if strings.TrimSpace(f.FileKey) == "" {
		return domain.StoredFile{}, domain.ErrMissingField("file_key")
	}
	if strings.TrimSpace(f.URL) == "" {
		return domain.StoredFile{}, domain.ErrMissingField("url")
	}
	return s.files.Create(ctx, f)
}

func (s *Service) ListFiles(ctx context.Context) ([]domain.StoredFile, error) {
	return s.files.List(ctx)
}

func (s *Service) DeleteFile(ctx context.Context, id int64) error {
	return s.files.Delete(ctx, id)
}
