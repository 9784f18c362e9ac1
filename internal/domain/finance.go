package domain

import "time"

const (
	TxPayment = "payment"
	TxRefund  = "refund"
	TxExpense = "expense"
)

type Transaction struct {
	ID            int64
	PropertyID    int64
	ReservationID *int64
	Kind          string
	Category      *string // room|food|laundry|misc
	Amount        float64
	Currency      string
	Method        *string // cash|card|transfer
	Note          *string
	OccurredAt    time.Time
	CreatedAt     time.Time
}

type TransactionFilter struct {
	PropertyID *int64
	Kind       *string
	From       *time.Time
	To         *time.Time
}

// DashboardSummary aggregates what the front desk sees first thing:
// room state, today's movement and month-to-date revenue.
type DashboardSummary struct {
	PropertyID      int64          `json:"property_id"`
	RoomsByStatus   map[string]int `json:"rooms_by_status"`
	OccupancyRate   float64        `json:"occupancy_rate"` // occupied / total, 0..1
	ArrivalsToday   int            `json:"arrivals_today"`
	DeparturesToday int            `json:"departures_today"`
	RevenueMonth    float64        `json:"revenue_month"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
