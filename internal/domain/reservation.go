package domain

import "time"

// Reservation lifecycle. Transitions are validated in the app layer:
// pending -> confirmed -> checked_in -> checked_out, with cancelled
// reachable from pending and confirmed.
const (
	ResPending    = "pending"
	ResConfirmed  = "confirmed"
	ResCheckedIn  = "checked_in"
	ResCheckedOut = "checked_out"
	ResCancelled  = "cancelled"
)

type Reservation struct {
	ID           int64
	Confirmation string // short code handed to the guest
	PropertyID   int64
	RoomID       int64
	GuestID      int64
	CheckIn      time.Time // date precision, UTC midnight
	CheckOut     time.Time
	Adults       int
	Children     int
	Status       string
	TotalAmount  float64
	Source       *string // walk_in|phone|website|ota
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r Reservation) Nights() int {
	n := int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

type ReservationFilter struct {
	PropertyID *int64
	GuestID    *int64
	Status     *string
	From       *time.Time // check-in on/after
	To         *time.Time // check-in before
}

// CheckInReminder is the read model the notifier works from: one row per
// reservation arriving on the target date, joined with guest/room/property.
type CheckInReminder struct {
	ReservationID int64
	Confirmation  string
	GuestName     string
	GuestEmail    *string
	GuestPhone    *string
	PropertyName  string
	RoomNumber    string
	CheckIn       time.Time
}
