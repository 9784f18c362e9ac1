package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type StatsRepo struct{ db *sql.DB }

// DashboardSummary runs the front-desk aggregates for one property.
// Occupancy counts rooms in status 'occupied' against all rooms;
// revenue sums payments minus refunds month-to-date.
func (r *StatsRepo) DashboardSummary(ctx context.Context, propertyID int64, now time.Time) (domain.DashboardSummary, error) {
	out := domain.DashboardSummary{
		PropertyID:    propertyID,
		RoomsByStatus: map[string]int{},
		GeneratedAt:   now,
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT status, COUNT(*)
FROM rooms
WHERE property_id = ?
GROUP BY status`, propertyID)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return domain.DashboardSummary{}, err
		}
		out.RoomsByStatus[status] = n
		total += n
	}
	if err := rows.Err(); err != nil {
		return domain.DashboardSummary{}, err
	}
	if total == 0 {
		// no rooms yet: every other aggregate is trivially zero
		return out, nil
	}
	out.OccupancyRate = float64(out.RoomsByStatus[domain.RoomOccupied]) / float64(total)

	day := now.Format("2006-01-02")
	if err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM reservations
WHERE property_id = ? AND check_in = ? AND status IN ('confirmed','checked_in')`,
		propertyID, day).Scan(&out.ArrivalsToday); err != nil {
		return domain.DashboardSummary{}, err
	}
	if err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM reservations
WHERE property_id = ? AND check_out = ? AND status IN ('checked_in','checked_out')`,
		propertyID, day).Scan(&out.DeparturesToday); err != nil {
		return domain.DashboardSummary{}, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	var revenue sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(SUM(CASE WHEN kind = 'refund' THEN -amount ELSE amount END), 0)
FROM transactions
WHERE property_id = ? AND kind IN ('payment','refund') AND occurred_at >= ?`,
		propertyID, monthStart).Scan(&revenue); err != nil {
		return domain.DashboardSummary{}, err
	}
	out.RevenueMonth = revenue.Float64

	return out, nil
}
