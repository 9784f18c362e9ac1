package domain

import "time"

// Room statuses. Housekeeping moves rooms between cleaning and available;
// reservations move them between available and occupied.
const (
	RoomAvailable   = "available"
	RoomOccupied    = "occupied"
	RoomCleaning    = "cleaning"
	RoomMaintenance = "maintenance"
)

type Room struct {
	ID           int64
	PropertyID   int64
	Number       string
	Floor        *string
	Kind         string // single|double|twin|suite
	Status       string
	Rate         float64
	MaxOccupancy int
	Amenities    []string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RoomFilter struct {
	PropertyID *int64
	Status     *string
	Floor      *string
}
