package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	jwtauth "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/auth"
	server "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/http_server"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/observability"
	redisad "github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/redis"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/shared"
	mysqlrepo "github.com/Mujammil-ios/Stayhook-sub002/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "api")

	observability.Serve()

	// db
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	// deps
	store := mysqlrepo.New(db)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	tokens, err := jwtauth.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("jwt setup failed")
	}

	h := &server.Handlers{
		Auth:         app.NewAuthService(store.Users, tokens),
		Properties:   app.NewPropertyService(store.Properties, cache, cfg.CacheTTL),
		Rooms:        app.NewRoomService(store.Rooms, cache, cfg.CacheTTL),
		Guests:       app.NewGuestService(store.Guests),
		Reservations: app.NewReservationService(store.Reservations, cache),
		Staff:        app.NewStaffService(store.Staff),
		Users:        app.NewUserService(store.Users),
		Transactions: app.NewTransactionService(store.Transactions, cache),
		Dashboard:    app.NewDashboardService(store.Stats, cache, cfg.CacheTTL),
		JWT:          tokens,
	}

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
