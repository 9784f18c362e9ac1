package domain

import (
	"context"
	"time"
)

type PropertyRepository interface {
	Create(ctx context.Context, p Property) (int64, error)
	Get(ctx context.Context, id int64) (Property, error)
	Update(ctx context.Context, p Property) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f PropertyFilter, rng RowRange) ([]Property, int, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r Room) (int64, error)
	Get(ctx context.Context, id int64) (Room, error)
	Update(ctx context.Context, r Room) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f RoomFilter, rng RowRange) ([]Room, int, error)
}

type GuestRepository interface {
	Create(ctx context.Context, g Guest) (int64, error)
	Get(ctx context.Context, id int64) (Guest, error)
	Update(ctx context.Context, g Guest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f GuestFilter, rng RowRange) ([]Guest, int, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r Reservation) (int64, error)
	Get(ctx context.Context, id int64) (Reservation, error)
	Update(ctx context.Context, r Reservation) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f ReservationFilter, rng RowRange) ([]Reservation, int, error)

	// DueForCheckIn feeds the reminder job: confirmed reservations whose
	// check-in date equals day (date precision).
	DueForCheckIn(ctx context.Context, day time.Time) ([]CheckInReminder, error)
}

type StaffRepository interface {
	Create(ctx context.Context, s StaffMember) (int64, error)
	Get(ctx context.Context, id int64) (StaffMember, error)
	Update(ctx context.Context, s StaffMember) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f StaffFilter, rng RowRange) ([]StaffMember, int, error)
	ListActive(ctx context.Context) ([]StaffMember, error)
}

type UserRepository interface {
	Create(ctx context.Context, u User) (int64, error)
	Get(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, u User) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f UserFilter, rng RowRange) ([]User, int, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t Transaction) (int64, error)
	Get(ctx context.Context, id int64) (Transaction, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f TransactionFilter, rng RowRange) ([]Transaction, int, error)
}

type StatsRepository interface {
	DashboardSummary(ctx context.Context, propertyID int64, now time.Time) (DashboardSummary, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Mailer and SMSSender are the notification vendor ports. Both are synchronous:
// a nil error only means the vendor accepted the message.
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, plain, html string) error
}

type SMSSender interface {
	Send(ctx context.Context, toPhone, body string) error
}
