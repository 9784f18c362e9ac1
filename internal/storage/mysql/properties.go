package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type PropertyRepo struct{ db *sql.DB }

func (r *PropertyRepo) Create(ctx context.Context, p domain.Property) (int64, error) {
	amen, _ := json.Marshal(p.Amenities)
	res, err := r.db.ExecContext(ctx, insertPropertySQL,
		p.Name,
		valStr(p.Kind),
		valStr(p.Address),
		valStr(p.City),
		valStr(p.State),
		valStr(p.Country),
		valStr(p.Phone),
		valStr(p.Email),
		p.Timezone,
		p.Currency,
		string(amen),
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *PropertyRepo) Get(ctx context.Context, id int64) (domain.Property, error) {
	return scanProperty(r.db.QueryRowContext(ctx, getPropertySQL, id))
}

func (r *PropertyRepo) Update(ctx context.Context, p domain.Property) error {
	amen, _ := json.Marshal(p.Amenities)
	_, err := r.db.ExecContext(ctx, updatePropertySQL,
		p.Name,
		valStr(p.Kind),
		valStr(p.Address),
		valStr(p.City),
		valStr(p.State),
		valStr(p.Country),
		valStr(p.Phone),
		valStr(p.Email),
		p.Timezone,
		p.Currency,
		string(amen),
		p.ID,
	)
	return mapErr(err)
}

func (r *PropertyRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id))
}

func (r *PropertyRepo) List(ctx context.Context, f domain.PropertyFilter, rng domain.RowRange) ([]domain.Property, int, error) {
	where, args := propertyWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM properties`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, kind, address, city, state, country, phone, email,
       timezone, currency, amenities, created_at, updated_at
FROM properties`+where+`
ORDER BY id
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func propertyWhere(f domain.PropertyFilter) (string, []any) {
	var conds []string
	var args []any
	if f.Q != nil && *f.Q != "" {
		conds = append(conds, "(name LIKE ? OR city LIKE ?)")
		like := "%" + *f.Q + "%"
		args = append(args, like, like)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanProperty(row rowScanner) (domain.Property, error) {
	var p domain.Property
	var kind, addr, city, state, ctry, phone, email sql.NullString
	var amenitiesJSON []byte

	if err := row.Scan(
		&p.ID, &p.Name, &kind, &addr, &city, &state, &ctry, &phone, &email,
		&p.Timezone, &p.Currency, &amenitiesJSON, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Property{}, mapErr(err)
	}
	p.Kind = strPtr(kind)
	p.Address = strPtr(addr)
	p.City = strPtr(city)
	p.State = strPtr(state)
	p.Country = strPtr(ctry)
	p.Phone = strPtr(phone)
	p.Email = strPtr(email)
	_ = json.Unmarshal(amenitiesJSON, &p.Amenities)
	return p, nil
}
