package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	SendGridKey     string
	SendGridHost    string
	FromEmail       string
	FromName        string
	SendGridSandbox bool

	TwilioSID   string
	TwilioToken string
	FromPhone   string

	VendorRPS      int
	NotifyWorkers  int
	CheckInCron    string
	ShiftCron      string
	NotifyRunOnce  bool
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	isTrue := func(k string) bool {
		v := os.Getenv(k)
		return v == "1" || v == "true" || v == "yes"
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/stayhook?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),

		RedisAddr: env("REDIS_ADDR", "localhost:6379"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,

		JWTSecret: env("JWT_SECRET", ""),
		JWTTTL:    time.Duration(atoi("JWT_TTL_MINUTES", 720)) * time.Minute,

		SendGridKey:     env("SENDGRID_API_KEY", ""),
		SendGridHost:    env("SENDGRID_HOST", "https://api.sendgrid.com"),
		FromEmail:       env("NOTIFY_FROM_EMAIL", "frontdesk@stayhook.app"),
		FromName:        env("NOTIFY_FROM_NAME", "Stayhook"),
		SendGridSandbox: isTrue("SENDGRID_SANDBOX"),

		TwilioSID:   env("TWILIO_ACCOUNT_SID", ""),
		TwilioToken: env("TWILIO_AUTH_TOKEN", ""),
		FromPhone:   env("NOTIFY_FROM_PHONE", ""),

		VendorRPS:     atoi("VENDOR_RPS", 5),
		NotifyWorkers: atoi("NOTIFY_WORKERS", 8),
		CheckInCron:   env("CHECKIN_REMINDER_CRON", "0 16 * * *"),
		ShiftCron:     env("SHIFT_REMINDER_CRON", "0 6 * * *"),
		NotifyRunOnce: isTrue("NOTIFY_RUN_ONCE"),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty")
	}
	if c.SendGridKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
