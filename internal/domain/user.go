package domain

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string // bcrypt, never serialized out
	Role         string // admin|manager|staff
	PropertyID   *int64 // nil for org-wide accounts
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserFilter struct {
	Role       *string
	PropertyID *int64
}
