package domain

import "time"

// User is an internal account used by church staff and members to access the
// admin dashboard. PasswordHash is never exposed through the transport layer.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserUpdate is a partial field set for user updates. Nil fields are left
// untouched by the store.
type UserUpdate struct {
	Name     *string
	Role     *string
	IsActive *bool
}
