package reminders

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
)

var testNow = time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings []*domain.Booking

	gotFrom, gotTo time.Time
}

func (f *fakeBookingRepo) ListConfirmedBetween(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	f.gotFrom, f.gotTo = from, to
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.Status == domain.StatusConfirmed && !b.ScheduledAt.Before(from) && b.ScheduledAt.Before(to) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeSalonRepo struct{}

func (fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	if id == "1" {
		return &domain.Salon{ID: "1", Name: "L’Atelier Coiffure Montréal"}, nil
	}
	return nil, salonRepoPkg.ErrSalonNotFound
}

type recordingNotifier struct {
	sent    []string
	failFor map[string]bool
}

func (n *recordingNotifier) Send(_ string, body string) error {
	for substr, fail := range n.failFor {
		if fail && strings.Contains(body, substr) {
			return errors.New("twilio down")
		}
	}
	n.sent = append(n.sent, body)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func booking(id string, status domain.BookingStatus, scheduledAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		SalonID:     "1",
		ClientName:  "Marie",
		ServiceName: "Coupe Femme",
		Status:      status,
		ScheduledAt: scheduledAt,
	}
}

func TestSweep_SendsForTomorrowOnly(t *testing.T) {
	tomorrow := time.Date(2025, 3, 21, 14, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("bk-1", domain.StatusConfirmed, tomorrow),
		booking("bk-2", domain.StatusConfirmed, tomorrow.AddDate(0, 0, 3)), // не завтра
		booking("bk-3", domain.StatusPending, tomorrow),                    // не подтверждено
	}}
	notifier := &recordingNotifier{}
	svc := NewService(repo, fakeSalonRepo{}, notifier, "+15145550000", fixedTime{testNow}, noopLogger{})

	sent := svc.Sweep(context.Background())

	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "Marie")
	assert.Contains(t, notifier.sent[0], "Coupe Femme")
	assert.Contains(t, notifier.sent[0], "L’Atelier Coiffure Montréal")
	assert.Contains(t, notifier.sent[0], "2025-03-21")

	// Окно выборки - календарные сутки завтра
	assert.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), repo.gotFrom)
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), repo.gotTo)
}

func TestSweep_DeliveryFailureDoesNotStopOthers(t *testing.T) {
	tomorrow := time.Date(2025, 3, 21, 14, 0, 0, 0, time.UTC)
	first := booking("bk-1", domain.StatusConfirmed, tomorrow)
	first.ClientName = "Failing"
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		first,
		booking("bk-2", domain.StatusConfirmed, tomorrow.Add(time.Hour)),
	}}
	notifier := &recordingNotifier{failFor: map[string]bool{"Failing": true}}
	svc := NewService(repo, fakeSalonRepo{}, notifier, "+15145550000", fixedTime{testNow}, noopLogger{})

	sent := svc.Sweep(context.Background())

	assert.Equal(t, 1, sent)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "Marie")
}
