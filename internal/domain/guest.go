package domain

import (
	"encoding/json"
	"time"
)

type Guest struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       *string
	Phone       *string
	Country     *string
	IDNumber    *string
	VIP         bool
	Preferences json.RawMessage // free-form JSON (dietary, room prefs, ...)
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (g Guest) FullName() string {
	if g.LastName == "" {
		return g.FirstName
	}
	return g.FirstName + " " + g.LastName
}

type GuestFilter struct {
	Q   *string // matches first/last name or email
	VIP *bool
}
