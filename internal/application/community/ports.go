package community

import (
	"context"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// Persistence ports for community content. List methods return records ordered
// by creation time, oldest first.

type VisitorRepo interface {
	Create(ctx context.Context, v domain.Visitor) (domain.Visitor, error)
	List(ctx context.Context) ([]domain.Visitor, error)
}

type PrayerRepo interface {
	Create(ctx context.Context, p domain.PrayerRequest) (domain.PrayerRequest, error)
	List(ctx context.Context) ([]domain.PrayerRequest, error)
}

type RaffleRepo interface {
	Create(ctx context.Context, r domain.Raffle) (domain.Raffle, error)
	List(ctx context.Context) ([]domain.Raffle, error)
	GetByID(ctx context.Context, id int64) (domain.Raffle, error)
	AddParticipant(ctx context.Context, p domain.RaffleParticipant) (domain.RaffleParticipant, error)
	ListParticipants(ctx context.Context, raffleID int64) ([]domain.RaffleParticipant, error)
}

type AnnouncementRepo interface {
	Create(ctx context.Context, a domain.Announcement) (domain.Announcement, error)
	List(ctx context.Context) ([]domain.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type ScheduleRepo interface {
	Create(ctx context.Context, s domain.Schedule) (domain.Schedule, error)
	List(ctx context.Context) ([]domain.Schedule, error)
	Delete(ctx context.Context, id int64) error
}

type FileRepo interface {
	Create(ctx context.Context, f domain.StoredFile) (domain.StoredFile, error)
	List(ctx context.Context) ([]domain.StoredFile, error)
	Delete(ctx context.Context, id int64) error
}
