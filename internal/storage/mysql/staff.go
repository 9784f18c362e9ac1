package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type StaffRepo struct{ db *sql.DB }

func (r *StaffRepo) Create(ctx context.Context, s domain.StaffMember) (int64, error) {
	sched, _ := json.Marshal(s.Schedule)
	res, err := r.db.ExecContext(ctx, insertStaffSQL,
		s.PropertyID,
		s.FirstName,
		s.LastName,
		s.Role,
		valStr(s.Email),
		valStr(s.Phone),
		s.Active,
		string(sched),
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *StaffRepo) Get(ctx context.Context, id int64) (domain.StaffMember, error) {
	return scanStaff(r.db.QueryRowContext(ctx, getStaffSQL, id))
}

func (r *StaffRepo) Update(ctx context.Context, s domain.StaffMember) error {
	sched, _ := json.Marshal(s.Schedule)
	_, err := r.db.ExecContext(ctx, updateStaffSQL,
		s.PropertyID,
		s.FirstName,
		s.LastName,
		s.Role,
		valStr(s.Email),
		valStr(s.Phone),
		s.Active,
		string(sched),
		s.ID,
	)
	return mapErr(err)
}

func (r *StaffRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, id))
}

func (r *StaffRepo) List(ctx context.Context, f domain.StaffFilter, rng domain.RowRange) ([]domain.StaffMember, int, error) {
	where, args := staffWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM staff`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, property_id, first_name, last_name, role, email, phone, active,
       schedule, created_at, updated_at
FROM staff`+where+`
ORDER BY property_id, last_name, first_name
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.StaffMember
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

// ListActive returns every active staff member; the shift-reminder job
// filters schedules in memory (JSON column, no SQL-side predicate).
func (r *StaffRepo) ListActive(ctx context.Context) ([]domain.StaffMember, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, property_id, first_name, last_name, role, email, phone, active,
       schedule, created_at, updated_at
FROM staff
WHERE active = TRUE
ORDER BY property_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.StaffMember
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func staffWhere(f domain.StaffFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PropertyID != nil {
		conds = append(conds, "property_id = ?")
		args = append(args, *f.PropertyID)
	}
	if f.Role != nil && *f.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, *f.Role)
	}
	if f.Active != nil {
		conds = append(conds, "active = ?")
		args = append(args, *f.Active)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanStaff(row rowScanner) (domain.StaffMember, error) {
	var s domain.StaffMember
	var email, phone sql.NullString
	var schedJSON []byte

	if err := row.Scan(
		&s.ID, &s.PropertyID, &s.FirstName, &s.LastName, &s.Role,
		&email, &phone, &s.Active, &schedJSON, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return domain.StaffMember{}, mapErr(err)
	}
	s.Email = strPtr(email)
	s.Phone = strPtr(phone)
	_ = json.Unmarshal(schedJSON, &s.Schedule)
	return s, nil
}
