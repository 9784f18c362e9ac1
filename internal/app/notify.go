package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/adapters/observability"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

// ReminderReport is what one job run hands back: per-recipient outcomes
// collected, never aborting the run on a single failure.
type ReminderReport struct {
	Sent     int      `json:"sent"`
	Failed   int      `json:"failed"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures,omitempty"`
}

type NotifyService struct {
	reservations domain.ReservationRepository
	staff        domain.StaffRepository
	mail         domain.Mailer
	sms          domain.SMSSender
	workers      int64
}

func NewNotifyService(res domain.ReservationRepository, st domain.StaffRepository, m domain.Mailer, s domain.SMSSender, workers int) *NotifyService {
	if workers <= 0 {
		workers = 4
	}
	return &NotifyService{reservations: res, staff: st, mail: m, sms: s, workers: int64(workers)}
}

// deliver tries email first, then falls back to SMS. Outcomes:
// "sent" on any vendor accept, "skipped" when the recipient has no usable
// contact, "failed" when every available channel errored.
func (s *NotifyService) deliver(ctx context.Context, job string, email, phone *string, name, subject, plain, html, smsBody string) (outcome string, err error) {
	if email == nil && phone == nil {
		observability.ObserveReminder(job, "skipped")
		return "skipped", nil
	}
	var mailErr error
	if email != nil {
		mailErr = s.mail.Send(ctx, *email, name, subject, plain, html)
		if mailErr == nil {
			observability.ObserveReminder(job, "sent")
			return "sent", nil
		}
		log.Warn().Err(mailErr).Str("job", job).Str("to", *email).Msg("email failed, trying SMS")
	}
	if phone != nil {
		smsErr := s.sms.Send(ctx, *phone, smsBody)
		if smsErr == nil {
			observability.ObserveReminder(job, "sent")
			return "sent", nil
		}
		observability.ObserveReminder(job, "failed")
		if mailErr != nil {
			return "failed", fmt.Errorf("email: %v; sms: %w", mailErr, smsErr)
		}
		return "failed", smsErr
	}
	observability.ObserveReminder(job, "failed")
	return "failed", mailErr
}

const checkInEmailHTML = `<html><body>
<p>Hi %s,</p>
<p>This is a reminder that your stay at <strong>%s</strong> begins tomorrow, %s.</p>
<p>Room %s is reserved for you under confirmation <strong>%s</strong>.</p>
<p>We look forward to welcoming you.</p>
</body></html>`

// SendCheckInReminders emails every guest arriving on day (usually
// tomorrow), grouped per reservation, with SMS fallback.
func (s *NotifyService) SendCheckInReminders(ctx context.Context, day time.Time) (ReminderReport, error) {
	due, err := s.reservations.DueForCheckIn(ctx, day)
	if err != nil {
		return ReminderReport{}, fmt.Errorf("load due check-ins: %w", err)
	}

	var (
		mu  sync.Mutex
		rep ReminderReport
		wg  sync.WaitGroup
	)
	sem := semaphore.NewWeighted(s.workers)

	var acqErr error
	for _, c := range due {
		c := c
		// On ctx cancellation, stop launching but drain what is in
		// flight before the report is read.
		if acqErr = sem.Acquire(ctx, 1); acqErr != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			date := c.CheckIn.Format("Monday, 2 Jan 2006")
			subject := fmt.Sprintf("Your stay at %s starts tomorrow", c.PropertyName)
			plain := fmt.Sprintf(
				"Hi %s,\n\nYour stay at %s begins tomorrow, %s.\nRoom %s, confirmation %s.\n\nSee you soon!",
				c.GuestName, c.PropertyName, date, c.RoomNumber, c.Confirmation)
			html := fmt.Sprintf(checkInEmailHTML, c.GuestName, c.PropertyName, date, c.RoomNumber, c.Confirmation)
			smsBody := fmt.Sprintf("%s: check-in tomorrow, room %s, conf %s", c.PropertyName, c.RoomNumber, c.Confirmation)

			outcome, derr := s.deliver(ctx, "checkin", c.GuestEmail, c.GuestPhone, c.GuestName, subject, plain, html, smsBody)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case "sent":
				rep.Sent++
			case "skipped":
				rep.Skipped++
			default:
				rep.Failed++
				rep.Failures = append(rep.Failures, fmt.Sprintf("reservation %d: %v", c.ReservationID, derr))
			}
		}()
	}
	wg.Wait()
	if acqErr != nil {
		return rep, acqErr
	}

	log.Info().Int("sent", rep.Sent).Int("failed", rep.Failed).Int("skipped", rep.Skipped).
		Msg("check-in reminders done")
	return rep, nil
}

// SendShiftReminders notifies active staff who have a shift on the given
// day. The weekly schedule lives in a JSON column, so the day filter runs
// here rather than in SQL.
func (s *NotifyService) SendShiftReminders(ctx context.Context, now time.Time) (ReminderReport, error) {
	members, err := s.staff.ListActive(ctx)
	if err != nil {
		return ReminderReport{}, fmt.Errorf("load active staff: %w", err)
	}
	day := strings.ToLower(now.Weekday().String())

	var (
		mu  sync.Mutex
		rep ReminderReport
		wg  sync.WaitGroup
	)
	sem := semaphore.NewWeighted(s.workers)

	var acqErr error
	for _, m := range members {
		slot, ok := m.ShiftOn(day)
		if !ok {
			continue
		}
		m := m
		if acqErr = sem.Acquire(ctx, 1); acqErr != nil {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			subject := fmt.Sprintf("Shift reminder: %s %s-%s", day, slot.Start, slot.End)
			plain := fmt.Sprintf("Hi %s,\n\nReminder: your %s shift today runs %s-%s.",
				m.FullName(), m.Role, slot.Start, slot.End)
			html := fmt.Sprintf("<p>Hi %s,</p><p>Reminder: your %s shift today runs <strong>%s-%s</strong>.</p>",
				m.FullName(), m.Role, slot.Start, slot.End)
			smsBody := fmt.Sprintf("Shift reminder: today %s-%s (%s)", slot.Start, slot.End, m.Role)

			outcome, derr := s.deliver(ctx, "shift", m.Email, m.Phone, m.FullName(), subject, plain, html, smsBody)

			mu.Lock()
			defer mu.Unlock()
			switch outcome {
			case "sent":
				rep.Sent++
			case "skipped":
				rep.Skipped++
			default:
				rep.Failed++
				rep.Failures = append(rep.Failures, fmt.Sprintf("staff %d: %v", m.ID, derr))
			}
		}()
	}
	wg.Wait()
	if acqErr != nil {
		return rep, acqErr
	}

	log.Info().Int("sent", rep.Sent).Int("failed", rep.Failed).Int("skipped", rep.Skipped).
		Msg("shift reminders done")
	return rep, nil
}
