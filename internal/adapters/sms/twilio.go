package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"golang.org/x/time/rate"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/observability"
)

type Twilio struct {
	client *twilio.RestClient
	from   string
	rl     *rate.Limiter
}

func NewTwilio(accountSID, authToken, fromPhone string, rps int) (*Twilio, error) {
	if accountSID == "" || authToken == "" {
		return nil, fmt.Errorf("twilio: account SID and auth token are required")
	}
	if fromPhone == "" {
		return nil, fmt.Errorf("twilio: from phone is required")
	}
	if rps <= 0 {
		rps = 5
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Twilio{client: client, from: fromPhone, rl: rate.NewLimiter(rate.Limit(rps), rps)}, nil
}

func (t *Twilio) Send(ctx context.Context, toPhone, body string) error {
	if err := t.rl.Wait(ctx); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(toPhone)
	params.SetFrom(t.from)
	params.SetBody(body)

	start := time.Now()
	_, err := t.client.Api.CreateMessage(params)
	status := 201
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("twilio", "create_message", status, time.Since(start))
	if err != nil {
		return fmt.Errorf("twilio: %w", err)
	}
	return nil
}
