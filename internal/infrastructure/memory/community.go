package memory

import (
	"context"
	"sync"
	"time"

	"github.com/igrejaviva/comunidade-api/internal/domain"
)

// CommunityStore backs every community content repo with in-memory slices.
// One store satisfies all six ports so dev mode wires a single instance.
type CommunityStore struct {
	mu     sync.RWMutex
	nextID int64

	visitors      []domain.Visitor
	prayers       []domain.PrayerRequest
	raffles       []domain.Raffle
	participants  []domain.RaffleParticipant
	announcements []domain.Announcement
	schedules     []domain.Schedule
	files         []domain.StoredFile
}

func NewCommunityStore() *CommunityStore {
	return &CommunityStore{nextID: 1}
}

func (s *CommunityStore) nextIDLocked() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *CommunityStore) CreateVisitor(_ context.Context, v domain.Visitor) (domain.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = s.nextIDLocked()
	v.CreatedAt = time.Now().UTC()
	s.visitors = append(s.visitors, v)
	return v, nil
}

func (s *CommunityStore) ListVisitors(_ context.Context) ([]domain.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Visitor(nil), s.visitors...), nil
}

func (s *CommunityStore) CreatePrayer(_ context.Context, p domain.PrayerRequest) (domain.PrayerRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextIDLocked()
	p.CreatedAt = time.Now().UTC()
	s.prayers = append(s.prayers, p)
	return p, nil
}

func (s *CommunityStore) ListPrayers(_ context.Context) ([]domain.PrayerRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.PrayerRequest(nil), s.prayers...), nil
}

func (s *CommunityStore) CreateRaffle(_ context.Context, r domain.Raffle) (domain.Raffle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = s.nextIDLocked()
	r.CreatedAt = time.Now().UTC()
	s.raffles = append(s.raffles, r)
	return r, nil
}

func (s *CommunityStore) ListRaffles(_ context.Context) ([]domain.Raffle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Raffle(nil), s.raffles...), nil
}

func (s *CommunityStore) GetRaffleByID(_ context.Context, id int64) (domain.Raffle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.raffles {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Raffle{}, domain.ErrRecordNotFound("raffle")
}

func (s *CommunityStore) AddParticipant(_ context.Context, p domain.RaffleParticipant) (domain.RaffleParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextIDLocked()
	p.CreatedAt = time.Now().UTC()
	s.participants = append(s.participants, p)
	return p, nil
}

func (s *CommunityStore) ListParticipants(_ context.Context, raffleID int64) ([]domain.RaffleParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.RaffleParticipant
	for _, p := range s.participants {
		if p.RaffleID == raffleID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CommunityStore) CreateAnnouncement(_ context.Context, a domain.Announcement) (domain.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextIDLocked()
	a.CreatedAt = time.Now().UTC()
	s.announcements = append(s.announcements, a)
	return a, nil
}

func (s *CommunityStore) ListAnnouncements(_ context.Context) ([]domain.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Announcement(nil), s.announcements...), nil
}

func (s *CommunityStore) DeleteAnnouncement(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.announcements {
		if a.ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound("announcement")
}

func (s *CommunityStore) CreateSchedule(_ context.Context, sc domain.Schedule) (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc.ID = s.nextIDLocked()
	sc.CreatedAt = time.Now().UTC()
	s.schedules = append(s.schedules, sc)
	return sc, nil
}

func (s *CommunityStore) ListSchedules(_ context.Context) ([]domain.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Schedule(nil), s.schedules...), nil
}

func (s *CommunityStore) DeleteSchedule(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sc := range s.schedules {
		if sc.ID == id {
			s.schedules = append(s.schedules[:i], s.schedules[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound("schedule")
}

func (s *CommunityStore) CreateFile(_ context.Context, f domain.StoredFile) (domain.StoredFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f.ID = s.nextIDLocked()
	f.CreatedAt = time.Now().UTC()
	s.files = append(s.files, f)
	return f, nil
}

func (s *CommunityStore) ListFiles(_ context.Context) ([]domain.StoredFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.StoredFile(nil), s.files...), nil
}

func (s *CommunityStore) DeleteFile(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.files {
		if f.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound("file")
}

// Typed views adapt the store to the per-entity repo ports.

type VisitorRepo struct{ *CommunityStore }

func (r VisitorRepo) Create(ctx context.Context, v domain.Visitor) (domain.Visitor, error) {
	return r.CreateVisitor(ctx, v)
}
func (r VisitorRepo) List(ctx context.Context) ([]domain.Visitor, error) {
	return r.ListVisitors(ctx)
}

type PrayerRepo struct{ *CommunityStore }

func (r PrayerRepo) Create(ctx context.Context, p domain.PrayerRequest) (domain.PrayerRequest, error) {
	return r.CreatePrayer(ctx, p)
}
func (r PrayerRepo) List(ctx context.Context) ([]domain.PrayerRequest, error) {
	return r.ListPrayers(ctx)
}

type RaffleRepo struct{ *CommunityStore }

func (r RaffleRepo) Create(ctx context.Context, ra domain.Raffle) (domain.Raffle, error) {
	return r.CreateRaffle(ctx, ra)
}
func (r RaffleRepo) List(ctx context.Context) ([]domain.Raffle, error) {
	return r.ListRaffles(ctx)
}
func (r RaffleRepo) GetByID(ctx context.Context, id int64) (domain.Raffle, error) {
	return r.GetRaffleByID(ctx, id)
}

type AnnouncementRepo struct{ *CommunityStore }

func (r AnnouncementRepo) Create(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	return r.CreateAnnouncement(ctx, a)
}
func (r AnnouncementRepo) List(ctx context.Context) ([]domain.Announcement, error) {
	return r.ListAnnouncements(ctx)
}
func (r AnnouncementRepo) Delete(ctx context.Context, id int64) error {
	return r.DeleteAnnouncement(ctx, id)
}

type ScheduleRepo struct{ *CommunityStore }

func (r ScheduleRepo) Create(ctx context.Context, sc domain.Schedule) (domain.Schedule, error) {
	return r.CreateSchedule(ctx, sc)
}
func (r ScheduleRepo) List(ctx context.Context) ([]domain.Schedule, error) {
	return r.ListSchedules(ctx)
}
func (r ScheduleRepo) Delete(ctx context.Context, id int64) error {
	return r.DeleteSchedule(ctx, id)
}

type FileRepo struct{ *CommunityStore }

func (r FileRepo) Create(ctx context.Context, f domain.StoredFile) (domain.StoredFile, error) {
	return r.CreateFile(ctx, f)
}
func (r FileRepo) List(ctx context.Context) ([]domain.StoredFile, error) {
	return r.ListFiles(ctx)
}
func (r FileRepo) Delete(ctx context.Context, id int64) error {
	return r.DeleteFile(ctx, id)
}
