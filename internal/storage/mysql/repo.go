package mysql

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

// Store groups the per-entity repositories over one connection pool.
type Store struct {
	Properties   *PropertyRepo
	Rooms        *RoomRepo
	Guests       *GuestRepo
	Reservations *ReservationRepo
	Staff        *StaffRepo
	Users        *UserRepo
	Transactions *TransactionRepo
	Stats        *StatsRepo
}

func New(db *sql.DB) *Store {
	return &Store{
		Properties:   &PropertyRepo{db: db},
		Rooms:        &RoomRepo{db: db},
		Guests:       &GuestRepo{db: db},
		Reservations: &ReservationRepo{db: db},
		Staff:        &StaffRepo{db: db},
		Users:        &UserRepo{db: db},
		Transactions: &TransactionRepo{db: db},
		Stats:        &StatsRepo{db: db},
	}
}

// ---- nullable helpers ----

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

func strPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
func int64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	n := ni.Int64
	return &n
}

// limOff converts an inclusive row range to LIMIT/OFFSET arguments.
func limOff(rng domain.RowRange) (limit, offset int) {
	return rng.To - rng.From + 1, rng.From
}

// mapErr translates driver errors into domain sentinels. 1062 is a duplicate
// key, 1451/1452 are FK violations (delete with children / insert with a
// missing parent).
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062, 1451, 1452:
			return domain.ErrConflict
		}
	}
	return err
}

// affected returns ErrNotFound when a DELETE matched nothing.
func affected(res sql.Result, err error) error {
	if err != nil {
		return mapErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }
