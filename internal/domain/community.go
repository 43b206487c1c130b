package domain

import "time"

// Visitor is a public intake record left by someone visiting the church.
type Visitor struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// PrayerRequest is a public intake record; IsAnonymous hides the requester's
// name on public displays, the record itself still stores it.
type PrayerRequest struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Message     string
	IsAnonymous bool
	CreatedAt   time.Time
}

type Raffle struct {
	ID          int64
	Title       string
	Description string
	Question    string
	CreatedAt   time.Time
}

type RaffleParticipant struct {
	ID        int64
	RaffleID  int64
	Name      string
	Email     string
	Phone     string
	Answer    string
	CreatedAt time.Time
}

type Announcement struct {
	ID        int64
	Title     string
	Content   string
	CreatedBy int64
	CreatedAt time.Time
}

type Schedule struct {
	ID          int64
	Title       string
	Description string
	Content     string
	CreatedBy   int64
	CreatedAt   time.Time
}

// StoredFile is file metadata only; the bytes live in external storage and are
// referenced by FileKey/URL.
type StoredFile struct {
	ID         int64
	Filename   string
	FileKey    string
	URL        string
	MimeType   string
	Size       int64
	UploadedBy int64
	CreatedAt  time.Time
}
