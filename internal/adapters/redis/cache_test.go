package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/redis"
)

type payload struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	// absent key is a miss, not an error
	var got payload
	ok, err := c.Get(ctx, "property:1", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatalf("unexpected hit on empty cache")
	}

	if err := c.Set(ctx, "property:1", payload{ID: 1, Name: "Harbor View"}, 60); err != nil {
		t.Fatalf("Set: %v", err)
	}
	ok, err = c.Get(ctx, "property:1", &got)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || got.ID != 1 || got.Name != "Harbor View" {
		t.Fatalf("unexpected value: ok=%v %+v", ok, got)
	}
}

func TestCache_SetRejectsUnmarshalable(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)

	if err := c.Set(context.Background(), "k", make(chan int), 60); err == nil {
		t.Fatalf("expected a marshal error")
	}
	if mr.Exists("k") {
		t.Fatalf("nothing should be stored on a marshal error")
	}
}

func TestCache_TTLAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	if err := c.Set(ctx, "k", payload{ID: 2}, 30); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl := mr.TTL("k"); ttl <= 0 {
		t.Fatalf("expected a positive TTL, got %v", ttl)
	}

	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	var got payload
	if ok, _ := c.Get(ctx, "k", &got); ok {
		t.Fatalf("key should be gone after Del")
	}
}
