package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"golang.org/x/time/rate"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/observability"
)

// SendGrid delivers transactional email through the v3 mail/send endpoint.
// The host is injectable so tests can point it at a local server.
type SendGrid struct {
	key     string
	host    string
	from    *mail.Email
	sandbox bool
	rl      *rate.Limiter
}

func NewSendGrid(key, host, fromEmail, fromName string, sandbox bool, rps int) (*SendGrid, error) {
	if key == "" {
		return nil, fmt.Errorf("sendgrid: API key is required")
	}
	if host == "" {
		host = "https://api.sendgrid.com"
	}
	if rps <= 0 {
		rps = 5
	}
	return &SendGrid{
		key:     key,
		host:    host,
		from:    mail.NewEmail(fromName, fromEmail),
		sandbox: sandbox,
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

func (s *SendGrid) Send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	if err := s.rl.Wait(ctx); err != nil {
		return err
	}

	msg := mail.NewSingleEmail(s.from, subject, mail.NewEmail(toName, toEmail), plain, html)
	msg.TrackingSettings = &mail.TrackingSettings{
		ClickTracking: &mail.ClickTrackingSetting{Enable: ptr(false)},
	}
	if s.sandbox {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}

	req := sendgrid.GetRequest(s.key, "/v3/mail/send", s.host)
	req.Method = "POST"
	req.Body = mail.GetRequestBody(msg)

	start := time.Now()
	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		observability.ObserveExternal("sendgrid", "mail_send", 0, time.Since(start))
		return fmt.Errorf("sendgrid: %w", err)
	}
	observability.ObserveExternal("sendgrid", "mail_send", resp.StatusCode, time.Since(start))
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: status %d: %s", resp.StatusCode, strings.TrimSpace(resp.Body))
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
