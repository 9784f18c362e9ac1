package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type UserRepo struct{ db *sql.DB }

func (r *UserRepo) Create(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		valInt64(u.PropertyID),
		u.Active,
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *UserRepo) Get(ctx context.Context, id int64) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserSQL, id))
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, getUserByUsernameSQL, username))
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, updateUserSQL,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Role,
		valInt64(u.PropertyID),
		u.Active,
		u.ID,
	)
	return mapErr(err)
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

func (r *UserRepo) List(ctx context.Context, f domain.UserFilter, rng domain.RowRange) ([]domain.User, int, error) {
	where, args := userWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, username, email, password_hash, role, property_id, active, created_at, updated_at
FROM users`+where+`
ORDER BY username
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func userWhere(f domain.UserFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Role != nil && *f.Role != "" {
		conds = append(conds, "role = ?")
		args = append(args, *f.Role)
	}
	if f.PropertyID != nil {
		conds = append(conds, "property_id = ?")
		args = append(args, *f.PropertyID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	var propID sql.NullInt64

	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role,
		&propID, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return domain.User{}, mapErr(err)
	}
	u.PropertyID = int64Ptr(propID)
	return u, nil
}
