package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type RoomRepo struct{ db *sql.DB }

func (r *RoomRepo) Create(ctx context.Context, rm domain.Room) (int64, error) {
	amen, _ := json.Marshal(rm.Amenities)
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.PropertyID,
		rm.Number,
		valStr(rm.Floor),
		rm.Kind,
		rm.Status,
		rm.Rate,
		rm.MaxOccupancy,
		string(amen),
		valStr(rm.Notes),
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *RoomRepo) Get(ctx context.Context, id int64) (domain.Room, error) {
	return scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, id))
}

func (r *RoomRepo) Update(ctx context.Context, rm domain.Room) error {
	amen, _ := json.Marshal(rm.Amenities)
	_, err := r.db.ExecContext(ctx, updateRoomSQL,
		rm.PropertyID,
		rm.Number,
		valStr(rm.Floor),
		rm.Kind,
		rm.Status,
		rm.Rate,
		rm.MaxOccupancy,
		string(amen),
		valStr(rm.Notes),
		rm.ID,
	)
	return mapErr(err)
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id))
}

func (r *RoomRepo) List(ctx context.Context, f domain.RoomFilter, rng domain.RowRange) ([]domain.Room, int, error) {
	where, args := roomWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rooms`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, property_id, number, floor, kind, status, rate, max_occupancy,
       amenities, notes, created_at, updated_at
FROM rooms`+where+`
ORDER BY property_id, number
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rm)
	}
	return out, total, rows.Err()
}

func roomWhere(f domain.RoomFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PropertyID != nil {
		conds = append(conds, "property_id = ?")
		args = append(args, *f.PropertyID)
	}
	if f.Status != nil && *f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, *f.Status)
	}
	if f.Floor != nil && *f.Floor != "" {
		conds = append(conds, "floor = ?")
		args = append(args, *f.Floor)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRoom(row rowScanner) (domain.Room, error) {
	var rm domain.Room
	var floor, notes sql.NullString
	var amenitiesJSON []byte

	if err := row.Scan(
		&rm.ID, &rm.PropertyID, &rm.Number, &floor, &rm.Kind, &rm.Status,
		&rm.Rate, &rm.MaxOccupancy, &amenitiesJSON, &notes,
		&rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return domain.Room{}, mapErr(err)
	}
	rm.Floor = strPtr(floor)
	rm.Notes = strPtr(notes)
	_ = json.Unmarshal(amenitiesJSON, &rm.Amenities)
	return rm, nil
}
