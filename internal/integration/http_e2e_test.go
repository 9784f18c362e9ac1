//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	jwtauth "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/auth"
	server "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/http_server"
	redisad "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/redis"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
	mysqlrepo "github.com/Mujammil-ios/Stayhook-sub002/internal/storage/mysql"
)

// ---------- helpers ----------

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

type env struct {
	Success bool             `json:"success"`
	Data    json.RawMessage  `json:"data"`
	Meta    *domain.PageMeta `json:"meta"`
	Error   string           `json:"error"`
}

func call(t *testing.T, method, url, token string, body any) (int, env) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	var e env
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil {
		t.Fatalf("decode envelope for %s %s: %v", method, url, err)
	}
	return resp.StatusCode, e
}

func idOf(t *testing.T, data json.RawMessage) int64 {
	t.Helper()
	var v struct {
		ID int64 `json:"ID"`
	}
	if err := json.Unmarshal(data, &v); err != nil || v.ID == 0 {
		t.Fatalf("no id in payload: %s", data)
	}
	return v.ID
}

// ---------- the test ----------

func TestHTTP_EndToEnd_FrontDeskFlow(t *testing.T) {
	// isolated MySQL container
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=stayhook",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "stayhook")

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	// real stack: MySQL store, Redis cache (miniredis), JWT auth
	mr := miniredis.RunT(t)
	store := mysqlrepo.New(db)
	cache := redisad.New(mr.Addr(), "", 0)

	tokens, err := jwtauth.NewJWT("e2e-secret", time.Hour)
	if err != nil {
		t.Fatalf("jwt: %v", err)
	}

	users := app.NewUserService(store.Users)
	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Auth:         app.NewAuthService(store.Users, tokens),
		Properties:   app.NewPropertyService(store.Properties, cache, time.Minute),
		Rooms:        app.NewRoomService(store.Rooms, cache, time.Minute),
		Guests:       app.NewGuestService(store.Guests),
		Reservations: app.NewReservationService(store.Reservations, cache),
		Staff:        app.NewStaffService(store.Staff),
		Users:        users,
		Transactions: app.NewTransactionService(store.Transactions, cache),
		Dashboard:    app.NewDashboardService(store.Stats, cache, time.Minute),
		JWT:          tokens,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)

	// seed an account directly through the service (no open signup route)
	ctx := context.Background()
	if _, err := users.Create(ctx, app.CreateUserInput{
		Username: "frontdesk", Email: "desk@stayhook.app",
		Password: "hunter2-long", Role: "manager",
	}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	// login
	code, e := call(t, "POST", ts.URL+"/v1/auth/login", "", map[string]string{
		"username": "frontdesk", "password": "hunter2-long",
	})
	if code != http.StatusOK || !e.Success {
		t.Fatalf("login: %d %+v", code, e)
	}
	var sess struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(e.Data, &sess); err != nil || sess.Token == "" {
		t.Fatalf("no token: %s", e.Data)
	}
	tok := sess.Token

	// property -> room -> guest -> reservation
	code, e = call(t, "POST", ts.URL+"/v1/properties", tok, map[string]any{
		"name": "Harbor View", "city": "Lisbon", "country": "PT", "currency": "EUR",
	})
	if code != http.StatusCreated {
		t.Fatalf("create property: %d %+v", code, e)
	}
	propID := idOf(t, e.Data)

	code, e = call(t, "POST", ts.URL+"/v1/rooms", tok, map[string]any{
		"property_id": propID, "number": "204", "kind": "double", "rate": 120, "max_occupancy": 2,
	})
	if code != http.StatusCreated {
		t.Fatalf("create room: %d %+v", code, e)
	}
	roomID := idOf(t, e.Data)

	code, e = call(t, "POST", ts.URL+"/v1/guests", tok, map[string]any{
		"first_name": "Ada", "last_name": "Smith", "email": "ada@example.com",
	})
	if code != http.StatusCreated {
		t.Fatalf("create guest: %d %+v", code, e)
	}
	guestID := idOf(t, e.Data)

	checkIn := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	checkOut := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	code, e = call(t, "POST", ts.URL+"/v1/reservations", tok, map[string]any{
		"property_id": propID, "room_id": roomID, "guest_id": guestID,
		"check_in": checkIn, "check_out": checkOut,
		"adults": 2, "total_amount": 240,
	})
	if code != http.StatusCreated {
		t.Fatalf("create reservation: %d %+v", code, e)
	}
	resID := idOf(t, e.Data)

	// lifecycle over HTTP: pending -> confirmed, then an illegal jump
	code, e = call(t, "PATCH", fmt.Sprintf("%s/v1/reservations/%d/status", ts.URL, resID), tok,
		map[string]string{"status": "confirmed"})
	if code != http.StatusOK || !e.Success {
		t.Fatalf("confirm: %d %+v", code, e)
	}
	code, _ = call(t, "PATCH", fmt.Sprintf("%s/v1/reservations/%d/status", ts.URL, resID), tok,
		map[string]string{"status": "checked_out"})
	if code != http.StatusBadRequest {
		t.Fatalf("confirmed -> checked_out should be rejected, got %d", code)
	}

	// paginated list carries meta
	code, e = call(t, "GET", ts.URL+"/v1/reservations?page=1&limit=10", tok, nil)
	if code != http.StatusOK || e.Meta == nil || e.Meta.TotalCount != 1 {
		t.Fatalf("list reservations: %d %+v", code, e.Meta)
	}

	// dashboard summary over the live data
	code, e = call(t, "GET", fmt.Sprintf("%s/v1/dashboard/summary?property_id=%d", ts.URL, propID), tok, nil)
	if code != http.StatusOK || !e.Success {
		t.Fatalf("dashboard: %d %+v", code, e)
	}
	var sum domain.DashboardSummary
	if err := json.Unmarshal(e.Data, &sum); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if sum.PropertyID != propID || sum.RoomsByStatus["available"] != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	// deleting the occupied property is refused while rows reference it
	code, _ = call(t, "DELETE", fmt.Sprintf("%s/v1/properties/%d", ts.URL, propID), tok, nil)
	if code != http.StatusConflict {
		t.Fatalf("delete referenced property: want 409, got %d", code)
	}
}
