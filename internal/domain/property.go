package domain

import "time"

type Property struct {
	ID        int64
	Name      string
	Kind      *string // hotel|hostel|resort|apartment
	Address   *string
	City      *string
	State     *string
	Country   *string
	Phone     *string
	Email     *string
	Timezone  string
	Currency  string
	Amenities []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PropertyFilter struct {
	Q *string // matches name or city
}
