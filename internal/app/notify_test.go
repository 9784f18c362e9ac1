package app_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Mujammil-ios/Stayhook-sub002/internal/app"
	"github.com/Mujammil-ios/Stayhook-sub002/internal/domain"
)

// ---- fakes ----

type fakeStaffRepo struct {
	active []domain.StaffMember
	err    error
}

func (f *fakeStaffRepo) Create(ctx context.Context, s domain.StaffMember) (int64, error) {
	return 0, nil
}
func (f *fakeStaffRepo) Get(ctx context.Context, id int64) (domain.StaffMember, error) {
	return domain.StaffMember{}, domain.ErrNotFound
}
func (f *fakeStaffRepo) Update(ctx context.Context, s domain.StaffMember) error { return nil }
func (f *fakeStaffRepo) Delete(ctx context.Context, id int64) error             { return nil }
func (f *fakeStaffRepo) List(ctx context.Context, fl domain.StaffFilter, rng domain.RowRange) ([]domain.StaffMember, int, error) {
	return nil, 0, nil
}
func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]domain.StaffMember, error) {
	return f.active, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []string // recipient emails
	fail map[string]bool
}

func (m *fakeMailer) Send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail[toEmail] {
		return errors.New("sendgrid: 500")
	}
	m.sent = append(m.sent, toEmail)
	return nil
}

type fakeSMS struct {
	mu   sync.Mutex
	sent []string // recipient phones
	fail bool
}

func (s *fakeSMS) Send(ctx context.Context, toPhone, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("twilio: 503")
	}
	s.sent = append(s.sent, toPhone)
	return nil
}

func reminder(id int64, email, phone *string) domain.CheckInReminder {
	return domain.CheckInReminder{
		ReservationID: id,
		Confirmation:  "AB12CD34",
		GuestName:     "Ada Smith",
		GuestEmail:    email,
		GuestPhone:    phone,
		PropertyName:  "Harbor View",
		RoomNumber:    "204",
		CheckIn:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ---- tests ----

func TestSendCheckInReminders_AllEmail(t *testing.T) {
	repo := newFakeResRepo()
	repo.due = []domain.CheckInReminder{
		reminder(1, ptr("a@x.com"), nil),
		reminder(2, ptr("b@x.com"), ptr("+15550001")),
	}
	mail := &fakeMailer{}
	sms := &fakeSMS{}
	svc := app.NewNotifyService(repo, &fakeStaffRepo{}, mail, sms, 4)

	rep, err := svc.SendCheckInReminders(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SendCheckInReminders: %v", err)
	}
	if rep.Sent != 2 || rep.Failed != 0 || rep.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("want 2 emails, got %d", len(mail.sent))
	}
	if len(sms.sent) != 0 {
		t.Fatalf("SMS should not fire when email succeeds, got %v", sms.sent)
	}
}

func TestSendCheckInReminders_SMSFallback(t *testing.T) {
	repo := newFakeResRepo()
	repo.due = []domain.CheckInReminder{
		reminder(1, ptr("down@x.com"), ptr("+15550001")),
	}
	mail := &fakeMailer{fail: map[string]bool{"down@x.com": true}}
	sms := &fakeSMS{}
	svc := app.NewNotifyService(repo, &fakeStaffRepo{}, mail, sms, 4)

	rep, err := svc.SendCheckInReminders(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("SendCheckInReminders: %v", err)
	}
	if rep.Sent != 1 || rep.Failed != 0 {
		t.Fatalf("fallback should count as sent: %+v", rep)
	}
	if len(sms.sent) != 1 || sms.sent[0] != "+15550001" {
		t.Fatalf("expected one SMS to +15550001, got %v", sms.sent)
	}
}

func TestSendCheckInReminders_MixedOutcomes(t *testing.T) {
	repo := newFakeResRepo()
	// one deliverable, one with no contact at all, one with both channels down
	repo.due = []domain.CheckInReminder{
		reminder(1, ptr("ok@x.com"), nil),
		reminder(2, nil, nil),
		reminder(3, ptr("down@x.com"), ptr("+15550002")),
	}
	mail := &fakeMailer{fail: map[string]bool{"down@x.com": true}}
	sms := &fakeSMS{fail: true}
	svc := app.NewNotifyService(repo, &fakeStaffRepo{}, mail, sms, 4)

	rep, err := svc.SendCheckInReminders(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("one bad recipient must not abort the run: %v", err)
	}
	if rep.Sent != 1 || rep.Skipped != 1 || rep.Failed != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(rep.Failures) != 1 {
		t.Fatalf("want one failure detail, got %v", rep.Failures)
	}
	if !strings.Contains(rep.Failures[0], "sendgrid") || !strings.Contains(rep.Failures[0], "twilio") {
		t.Fatalf("failure detail should carry both channel errors: %v", rep.Failures[0])
	}
}

// blockingMailer parks every Send until release is closed.
type blockingMailer struct {
	started chan struct{}
	release chan struct{}
}

func (m *blockingMailer) Send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	m.started <- struct{}{}
	<-m.release
	return nil
}

func TestSendCheckInReminders_CancelDrainsInFlight(t *testing.T) {
	repo := newFakeResRepo()
	repo.due = []domain.CheckInReminder{
		reminder(1, ptr("a@x.com"), nil),
		reminder(2, ptr("b@x.com"), nil),
	}
	mail := &blockingMailer{started: make(chan struct{}, 2), release: make(chan struct{})}
	svc := app.NewNotifyService(repo, &fakeStaffRepo{}, mail, &fakeSMS{}, 1)

	ctx, cancel := context.WithCancel(context.Background())

	var (
		rep  app.ReminderReport
		err  error
		done = make(chan struct{})
	)
	go func() {
		rep, err = svc.SendCheckInReminders(ctx, time.Now())
		close(done)
	}()

	// First delivery holds the only worker slot; cancel while the loop
	// is parked acquiring a slot for the second.
	<-mail.started
	cancel()

	select {
	case <-done:
		t.Fatalf("run returned before the in-flight delivery settled")
	case <-time.After(50 * time.Millisecond):
	}

	close(mail.release)
	<-done

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if rep.Sent != 1 {
		t.Fatalf("in-flight delivery must land in the report: %+v", rep)
	}
}

func TestSendCheckInReminders_RepoError(t *testing.T) {
	repo := newFakeResRepo()
	repo.dueErr = errors.New("db gone")
	svc := app.NewNotifyService(repo, &fakeStaffRepo{}, &fakeMailer{}, &fakeSMS{}, 4)

	if _, err := svc.SendCheckInReminders(context.Background(), time.Now()); err == nil {
		t.Fatalf("expected error when the due query fails")
	}
}

func TestSendShiftReminders_FiltersByWeekday(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	now := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)

	staff := &fakeStaffRepo{active: []domain.StaffMember{
		{
			ID: 1, FirstName: "Mia", Role: "reception", Email: ptr("mia@x.com"),
			Schedule: []domain.ShiftSlot{{Day: "tuesday", Start: "08:00", End: "16:00"}},
		},
		{
			ID: 2, FirstName: "Leo", Role: "housekeeping", Email: ptr("leo@x.com"),
			Schedule: []domain.ShiftSlot{{Day: "friday", Start: "10:00", End: "18:00"}},
		},
		{
			ID: 3, FirstName: "Sam", Role: "maintenance", // on shift, but unreachable
			Schedule: []domain.ShiftSlot{{Day: "tuesday", Start: "09:00", End: "17:00"}},
		},
	}}
	mail := &fakeMailer{}
	svc := app.NewNotifyService(newFakeResRepo(), staff, mail, &fakeSMS{}, 4)

	rep, err := svc.SendShiftReminders(context.Background(), now)
	if err != nil {
		t.Fatalf("SendShiftReminders: %v", err)
	}
	if rep.Sent != 1 || rep.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if len(mail.sent) != 1 || mail.sent[0] != "mia@x.com" {
		t.Fatalf("only Tuesday staff should be mailed, got %v", mail.sent)
	}
}
