package dto

type VisitorCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r *VisitorCreateRequest) Validate() error {
	return runValidate(r)
}

type PrayerCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message" validate:"required"`
	IsAnonymous bool   `json:"is_anonymous"`
}

func (r *PrayerCreateRequest) Validate() error {
	return runValidate(r)
}

type RaffleCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Question    string `json:"question"`
}

func (r *RaffleCreateRequest) Validate() error {
	return runValidate(r)
}

type RaffleJoinRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Answer string `json:"answer"`
}

func (r *RaffleJoinRequest) Validate() error {
	return runValidate(r)
}

type AnnouncementCreateRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (r *AnnouncementCreateRequest) Validate() error {
	return runValidate(r)
}

type ScheduleCreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
}

func (r *ScheduleCreateRequest) Validate() error {
	return runValidate(r)
}

type FileCreateRequest struct {
	Filename string `json:"filename" validate:"required"`
	FileKey  string `json:"file_key" validate:"required"`
	URL      string `json:"url" validate:"required"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

func (r *FileCreateRequest) Validate() error {
	return runValidate(r)
}
