package domain

import "time"

type StaffMember struct {
	ID         int64
	PropertyID int64
	FirstName  string
	LastName   string
	Role       string // manager|reception|housekeeping|maintenance
	Email      *string
	Phone      *string
	Active     bool
	Schedule   []ShiftSlot // stored as a JSON column
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (s StaffMember) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// ShiftSlot is one weekly recurring shift, e.g. {monday 08:00 16:00}.
type ShiftSlot struct {
	Day   string `json:"day"` // lowercase weekday name
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShiftOn returns the first slot scheduled for the given weekday, if any.
func (s StaffMember) ShiftOn(day string) (ShiftSlot, bool) {
	for _, sl := range s.Schedule {
		if sl.Day == day {
			return sl, true
		}
	}
	return ShiftSlot{}, false
}

type StaffFilter struct {
	PropertyID *int64
	Role       *string
	Active     *bool
}
