package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

type fakePropRepo struct {
	byID   map[int64]domain.Property
	nextID int64
	gets   int
}

func newFakePropRepo() *fakePropRepo {
	return &fakePropRepo{byID: map[int64]domain.Property{}}
}

func (f *fakePropRepo) Create(ctx context.Context, p domain.Property) (int64, error) {
	f.nextID++
	p.ID = f.nextID
	f.byID[p.ID] = p
	return p.ID, nil
}

func (f *fakePropRepo) Get(ctx context.Context, id int64) (domain.Property, error) {
	f.gets++
	p, ok := f.byID[id]
	if !ok {
		return domain.Property{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakePropRepo) Update(ctx context.Context, p domain.Property) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePropRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakePropRepo) List(ctx context.Context, fl domain.PropertyFilter, rng domain.RowRange) ([]domain.Property, int, error) {
	return nil, len(f.byID), nil
}

func TestPropertyCreate_Defaults(t *testing.T) {
	svc := app.NewPropertyService(newFakePropRepo(), &fakeCache{}, time.Minute)

	p, err := svc.Create(context.Background(), app.CreatePropertyInput{Name: "Harbor View"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Timezone != "UTC" || p.Currency != "USD" {
		t.Fatalf("defaults not applied: tz=%q currency=%q", p.Timezone, p.Currency)
	}
}

func TestPropertyCreate_Validation(t *testing.T) {
	svc := app.NewPropertyService(newFakePropRepo(), &fakeCache{}, time.Minute)

	cases := map[string]app.CreatePropertyInput{
		"missing name":    {},
		"kind not enum":   {Name: "X", Kind: ptr("castle")},
		"country alpha-3": {Name: "X", Country: ptr("USA")},
		"bad phone":       {Name: "X", Phone: ptr("not-a-phone")},
		"bad email":       {Name: "X", Email: ptr("nope")},
	}
	for name, in := range cases {
		if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalid) {
			t.Errorf("%s: want ErrInvalid, got %v", name, err)
		}
	}
}

func TestPropertyGet_CacheMissThenHit(t *testing.T) {
	repo := newFakePropRepo()
	cache := &fakeCache{}
	svc := app.NewPropertyService(repo, cache, time.Minute)

	created, err := svc.Create(context.Background(), app.CreatePropertyInput{Name: "Harbor View"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.gets = 0

	// miss populates the cache
	p, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.Name != "Harbor View" {
		t.Fatalf("unexpected property: %+v", p)
	}
	if repo.gets != 1 || cache.sets != 1 {
		t.Fatalf("first read should hit the repo once and cache it (gets=%d sets=%d)", repo.gets, cache.sets)
	}

	// mutate the repo to prove the second read is served from cache
	mutated := repo.byID[created.ID]
	mutated.Name = "SHOULD NOT SEE THIS"
	repo.byID[created.ID] = mutated

	p2, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get (cached): %v", err)
	}
	if p2.Name != "Harbor View" {
		t.Fatalf("expected cached name, got %q", p2.Name)
	}
	if repo.gets != 1 {
		t.Fatalf("second read should not touch the repo (gets=%d)", repo.gets)
	}
}

func TestPropertyUpdate_InvalidatesCache(t *testing.T) {
	repo := newFakePropRepo()
	cache := &fakeCache{}
	svc := app.NewPropertyService(repo, cache, time.Minute)

	created, _ := svc.Create(context.Background(), app.CreatePropertyInput{Name: "Harbor View"})
	if _, err := svc.Get(context.Background(), created.ID); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, app.UpdatePropertyInput{Name: ptr("Harbor View II")}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	p, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if p.Name != "Harbor View II" {
		t.Fatalf("stale read after update: %q", p.Name)
	}
}
