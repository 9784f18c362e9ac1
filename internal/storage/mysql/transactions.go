package mysql

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type TransactionRepo struct{ db *sql.DB }

func (r *TransactionRepo) Create(ctx context.Context, t domain.Transaction) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertTransactionSQL,
		t.PropertyID,
		valInt64(t.ReservationID),
		t.Kind,
		valStr(t.Category),
		t.Amount,
		t.Currency,
		valStr(t.Method),
		valStr(t.Note),
		t.OccurredAt,
	)
	if err != nil {
		return 0, mapErr(err)
	}
	return res.LastInsertId()
}

func (r *TransactionRepo) Get(ctx context.Context, id int64) (domain.Transaction, error) {
	return scanTransaction(r.db.QueryRowContext(ctx, getTransactionSQL, id))
}

func (r *TransactionRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id))
}

func (r *TransactionRepo) List(ctx context.Context, f domain.TransactionFilter, rng domain.RowRange) ([]domain.Transaction, int, error) {
	where, args := transactionWhere(f)

	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := limOff(rng)
	rows, err := r.db.QueryContext(ctx, `
SELECT id, property_id, reservation_id, kind, category, amount, currency,
       method, note, occurred_at, created_at
FROM transactions`+where+`
ORDER BY occurred_at DESC, id DESC
LIMIT ? OFFSET ?`, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}

func transactionWhere(f domain.TransactionFilter) (string, []any) {
	var conds []string
	var args []any
	if f.PropertyID != nil {
		conds = append(conds, "property_id = ?")
		args = append(args, *f.PropertyID)
	}
	if f.Kind != nil && *f.Kind != "" {
		conds = append(conds, "kind = ?")
		args = append(args, *f.Kind)
	}
	if f.From != nil {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, *f.From)
	}
	if f.To != nil {
		conds = append(conds, "occurred_at < ?")
		args = append(args, *f.To)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var t domain.Transaction
	var resID sql.NullInt64
	var category, method, note sql.NullString

	if err := row.Scan(
		&t.ID, &t.PropertyID, &resID, &t.Kind, &category, &t.Amount,
		&t.Currency, &method, &note, &t.OccurredAt, &t.CreatedAt,
	); err != nil {
		return domain.Transaction{}, mapErr(err)
	}
	t.ReservationID = int64Ptr(resID)
	t.Category = strPtr(category)
	t.Method = strPtr(method)
	t.Note = strPtr(note)
	return t, nil
}
