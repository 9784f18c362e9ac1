package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

// ---- fakes ----

func ptr[T any](v T) *T { return &v }

// fakeCache JSON-roundtrips values so it behaves like the Redis adapter.
type fakeCache struct {
	store map[string][]byte
	sets  int
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

type fakeResRepo struct {
	byID   map[int64]domain.Reservation
	nextID int64
	due    []domain.CheckInReminder
	dueErr error
}

func newFakeResRepo() *fakeResRepo {
	return &fakeResRepo{byID: map[int64]domain.Reservation{}}
}

func (f *fakeResRepo) Create(ctx context.Context, r domain.Reservation) (int64, error) {
	f.nextID++
	r.ID = f.nextID
	f.byID[r.ID] = r
	return r.ID, nil
}

func (f *fakeResRepo) Get(ctx context.Context, id int64) (domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok {
		return domain.Reservation{}, domain.ErrNotFound
	}
	return r, nil
}

func (f *fakeResRepo) Update(ctx context.Context, r domain.Reservation) error {
	if _, ok := f.byID[r.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeResRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.Status = status
	f.byID[id] = r
	return nil
}

func (f *fakeResRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeResRepo) List(ctx context.Context, fl domain.ReservationFilter, rng domain.RowRange) ([]domain.Reservation, int, error) {
	return nil, len(f.byID), nil
}

func (f *fakeResRepo) DueForCheckIn(ctx context.Context, day time.Time) ([]domain.CheckInReminder, error) {
	return f.due, f.dueErr
}

func seedReservation(f *fakeResRepo, status string) int64 {
	id, _ := f.Create(context.Background(), domain.Reservation{
		Confirmation: "AB12CD34",
		PropertyID:   1,
		RoomID:       7,
		GuestID:      3,
		CheckIn:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Adults:       2,
		Status:       status,
	})
	return id
}

// ---- tests ----

func TestReservationCreate_SetsPendingAndConfirmation(t *testing.T) {
	repo := newFakeResRepo()
	svc := app.NewReservationService(repo, &fakeCache{})

	rv, err := svc.Create(context.Background(), app.CreateReservationInput{
		PropertyID: 1, RoomID: 7, GuestID: 3,
		CheckIn: "2026-09-10", CheckOut: "2026-09-12",
		Adults: 2, TotalAmount: 240,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rv.Status != domain.ResPending {
		t.Fatalf("new reservation status = %q, want %q", rv.Status, domain.ResPending)
	}
	if len(rv.Confirmation) != 8 {
		t.Fatalf("confirmation %q should be 8 chars", rv.Confirmation)
	}
	if rv.Nights() != 2 {
		t.Fatalf("Nights() = %d, want 2", rv.Nights())
	}
}

func TestReservationCreate_RejectsBadDates(t *testing.T) {
	svc := app.NewReservationService(newFakeResRepo(), &fakeCache{})

	_, err := svc.Create(context.Background(), app.CreateReservationInput{
		PropertyID: 1, RoomID: 7, GuestID: 3,
		CheckIn: "2026-09-12", CheckOut: "2026-09-12",
		Adults: 1,
	})
	if !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("same-day stay should be ErrInvalid, got %v", err)
	}
}

func TestReservationSetStatus_Lifecycle(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{domain.ResPending, domain.ResConfirmed, true},
		{domain.ResPending, domain.ResCancelled, true},
		{domain.ResConfirmed, domain.ResCheckedIn, true},
		{domain.ResConfirmed, domain.ResCancelled, true},
		{domain.ResCheckedIn, domain.ResCheckedOut, true},

		{domain.ResPending, domain.ResCheckedIn, false},
		{domain.ResCheckedIn, domain.ResCancelled, false},
		{domain.ResCheckedOut, domain.ResConfirmed, false},
		{domain.ResCancelled, domain.ResConfirmed, false},
	}
	for _, c := range cases {
		repo := newFakeResRepo()
		id := seedReservation(repo, c.from)
		svc := app.NewReservationService(repo, &fakeCache{})

		rv, err := svc.SetStatus(context.Background(), id, c.to)
		if c.ok {
			if err != nil {
				t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
				continue
			}
			if rv.Status != c.to {
				t.Errorf("%s -> %s: status = %q", c.from, c.to, rv.Status)
			}
			continue
		}
		if !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("%s -> %s: want ErrInvalid, got %v", c.from, c.to, err)
		}
	}
}

func TestReservationUpdate_RejectedOnceClosed(t *testing.T) {
	for _, status := range []string{domain.ResCheckedOut, domain.ResCancelled} {
		repo := newFakeResRepo()
		id := seedReservation(repo, status)
		svc := app.NewReservationService(repo, &fakeCache{})

		_, err := svc.Update(context.Background(), id, app.UpdateReservationInput{Adults: ptr(3)})
		if !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("update of %s reservation: want ErrInvalid, got %v", status, err)
		}
	}
}

func TestReservationSetStatus_InvalidatesDashboard(t *testing.T) {
	repo := newFakeResRepo()
	id := seedReservation(repo, domain.ResPending)
	cache := &fakeCache{}
	svc := app.NewReservationService(repo, cache)

	if _, err := svc.SetStatus(context.Background(), id, domain.ResConfirmed); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	if len(cache.dels) == 0 {
		t.Fatalf("status change should drop the dashboard cache entry")
	}
}
