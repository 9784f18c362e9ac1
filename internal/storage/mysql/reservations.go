package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type ReservationRepo struct{ db *sql.DB }

func (r *ReservationRepo) Create(ctx context.Context, rv domain.Reservation) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertReservationSQL,
		rv.Confirmation,
		rv.PropertyID,
		rv.RoomID,
		rv.GuestID,
		rv.CheckIn,
		rv.CheckOut,
		rv.Adults,
		rv.Children,
		rv.Status,
		rv.TotalAmount,
		valStr(rv.Source),
		valStr(rv.Notes),
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *ReservationRepo) Get(ctx context.Context, id int64) (domain.Reservation, error) {
	return scanReservation(r.db.QueryRowContext(ctx, getReservationSQL, id))
}

func (r *ReservationRepo) Update(ctx context.Context, rv domain.Reservation) error {
	_, err := r.db.ExecContext(ctx, updateReservationSQL,
		rv.RoomID,
		rv.CheckIn,
		rv.CheckOut,
		rv.Adults,
		rv.Children,
		rv.TotalAmount,
		valStr(rv.Source),
		valStr(rv.Notes),
		rv.ID,
	)
	return mapErr(err)
}

func (r *ReservationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return affected(r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id))
}

func (r *ReservationRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id))
}

func (r *ReservationRepo) List(ctx context.Context, f domain.ReservationFilter, rng domain.RowRange) ([]domain.Reservation, int, error) {
	where, args := reservationWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, confirmation, property_id, room_id, guest_id, check_in, check_out,
       adults, children, status, total_amount, source, notes, created_at, updated_at
FROM reservations`+where+`
ORDER BY check_in DESC, id DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rv)
	}
	return out, total, rows.Err()
}

func (r *ReservationRepo) DueForCheckIn(ctx context.Context, day time.Time) ([]domain.CheckInReminder, error) {
	rows, err := r.db.QueryContext(ctx, dueForCheckInSQL, day.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CheckInReminder
	for rows.Next() {
		var c domain.CheckInReminder
		var email, phone sql.NullString
		if err := rows.Scan(
			&c.ReservationID, &c.Confirmation, &c.GuestName,
			&email, &phone, &c.PropertyName, &c.RoomNumber, &c.CheckIn,
		); err != nil {
			return nil, err
		}
		c.GuestEmail = strPtr(email)
		c.GuestPhone = strPtr(phone)
		out = append(out, c)
	}
	return out, rows.Err()
}

func reservationWhere(f domain.ReservationFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PropertyID != nil {
		conds = append(conds, "property_id = ?")
		args = append(args, *f.PropertyID)
	}
	if f.GuestID != nil {
		conds = append(conds, "guest_id = ?")
		args = append(args, *f.GuestID)
	}
	if f.Status != nil && *f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, *f.Status)
	}
	if f.From != nil {
		conds = append(conds, "check_in >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		conds = append(conds, "check_in < ?")
		args = append(args, *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanReservation(row rowScanner) (domain.Reservation, error) {
	var rv domain.Reservation
	var source, notes sql.NullString

	if err := row.Scan(
		&rv.ID, &rv.Confirmation, &rv.PropertyID, &rv.RoomID, &rv.GuestID,
		&rv.CheckIn, &rv.CheckOut, &rv.Adults, &rv.Children, &rv.Status,
		&rv.TotalAmount, &source, &notes, &rv.CreatedAt, &rv.UpdatedAt,
	); err != nil {
		return domain.Reservation{}, mapErr(err)
	}
	rv.Source = strPtr(source)
	rv.Notes = strPtr(notes)
	return rv, nil
}
