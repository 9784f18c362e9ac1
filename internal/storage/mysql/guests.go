package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type GuestRepo struct{ db *sql.DB }

func (r *GuestRepo) Create(ctx context.Context, g domain.Guest) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertGuestSQL,
		g.FirstName,
		g.LastName,
		valStr(g.Email),
		valStr(g.Phone),
		valStr(g.Country),
		valStr(g.IDNumber),
		g.VIP,
		prefsOrNull(g.Preferences),
		valStr(g.Notes),
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *GuestRepo) Get(ctx context.Context, id int64) (domain.Guest, error) {
	return scanGuest(r.db.QueryRowContext(ctx, getGuestSQL, id))
}

func (r *GuestRepo) Update(ctx context.Context, g domain.Guest) error {
	_, err := r.db.ExecContext(ctx, updateGuestSQL,
		g.FirstName,
		g.LastName,
		valStr(g.Email),
		valStr(g.Phone),
		valStr(g.Country),
		valStr(g.IDNumber),
		g.VIP,
		prefsOrNull(g.Preferences),
		valStr(g.Notes),
		g.ID,
	)
	return mapErr(err)
}

func (r *GuestRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = ?`, id))
}

func (r *GuestRepo) List(ctx context.Context, f domain.GuestFilter, rng domain.RowRange) ([]domain.Guest, int, error) {
	where, args := guestWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM guests`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, first_name, last_name, email, phone, country, id_number, vip,
       preferences, notes, created_at, updated_at
FROM guests`+where+`
ORDER BY last_name, first_name, id
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, g)
	}
	return out, total, rows.Err()
}

func guestWhere(f domain.GuestFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Q != nil && *f.Q != "" {
		conds = append(conds, "(first_name LIKE ? OR last_name LIKE ? OR email LIKE ?)")
		like := "%" + *f.Q + "%"
		args = append(args, like, like, like)
	}
	if f.VIP != nil {
		conds = append(conds, "vip = ?")
		args = append(args, *f.VIP)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// prefsOrNull keeps the JSON column NULL rather than storing "".
func prefsOrNull(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return string(b)
}

func scanGuest(row rowScanner) (domain.Guest, error) {
	var g domain.Guest
	var email, phone, ctry, idNum, notes sql.NullString
	var prefs []byte

	if err := row.Scan(
		&g.ID, &g.FirstName, &g.LastName, &email, &phone, &ctry, &idNum,
		&g.VIP, &prefs, &notes, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return domain.Guest{}, mapErr(err)
	}
	g.Email = strPtr(email)
	g.Phone = strPtr(phone)
	g.Country = strPtr(ctry)
	g.IDNumber = strPtr(idNum)
	g.Notes = strPtr(notes)
	if len(prefs) > 0 {
		g.Preferences = prefs
	}
	return g, nil
}
