package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/mailer"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/observability"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/sms"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/shared"
	mysqlrepo "github.com/Mujammil-ios/Stayhook-sub002/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, "notifier")

	observability.Serve()

	log.Info().
		Str("checkin_cron", cfg.CheckInCron).
		Str("shift_cron", cfg.ShiftCron).
		Int("workers", cfg.NotifyWorkers).
		Msg("notifier starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	store := mysqlrepo.New(db)

	mail, err := mailer.NewSendGrid(cfg.SendGridKey, cfg.SendGridHost, cfg.FromEmail, cfg.FromName, cfg.SendGridSandbox, cfg.VendorRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize SendGrid client")
	}
	texter, err := sms.NewTwilio(cfg.TwilioSID, cfg.TwilioToken, cfg.FromPhone, cfg.VendorRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Twilio client")
	}
	svc := app.NewNotifyService(store.Reservations, store.Staff, mail, texter, cfg.NotifyWorkers)

	runCheckIn := func() {
		// remind guests arriving tomorrow
		day := time.Now().UTC().AddDate(0, 0, 1)
		rep, err := svc.SendCheckInReminders(ctx, day)
		if err != nil {
			log.Error().Err(err).Msg("check-in reminder run failed")
			return
		}
		log.Info().
			Str("day", day.Format("2006-01-02")).
			Int("sent", rep.Sent).
			Int("failed", rep.Failed).
			Int("skipped", rep.Skipped).
			Msg("check-in reminders done")
	}
	runShift := func() {
		now := time.Now().UTC()
		rep, err := svc.SendShiftReminders(ctx, now)
		if err != nil {
			log.Error().Err(err).Msg("shift reminder run failed")
			return
		}
		log.Info().
			Int("sent", rep.Sent).
			Int("failed", rep.Failed).
			Int("skipped", rep.Skipped).
			Msg("shift reminders done")
	}

	if cfg.NotifyRunOnce {
		runCheckIn()
		runShift()
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.CheckInCron, runCheckIn); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.CheckInCron).Msg("bad check-in cron spec")
	}
	if _, err := c.AddFunc(cfg.ShiftCron, runShift); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.ShiftCron).Msg("bad shift cron spec")
	}
	c.Start()
	log.Info().Msg("notifier schedules armed")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopped := c.Stop()
	<-stopped.Done()
	log.Info().Msg("notifier stopped")
}
