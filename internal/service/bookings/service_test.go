package bookings

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/service/bookings/models"
	"github.com/glameo/glameo-backend/pkg/ptr"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.ClientID != clientID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ScheduledAt.After(result[j].ScheduledAt)
	})
	return result, nil
}

func (f *fakeBookingRepo) GetBySalonWithFilter(_ context.Context, filter domain.SalonBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.SalonID != filter.SalonID {
			continue
		}
		if !filter.IncludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && b.ScheduledAt.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && b.ScheduledAt.After(*filter.EndDate) {
			continue
		}
		copied := *b
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, cancelledAt time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancelledAt = &cancelledAt
	return nil
}

type fakeSalonRepo struct {
	salons map[string]*domain.Salon
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	s, ok := f.salons[id]
	if !ok {
		return nil, salonRepoPkg.ErrSalonNotFound
	}
	return s, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeBookingRepo) {
	bookings := newFakeBookingRepo()
	salons := &fakeSalonRepo{salons: map[string]*domain.Salon{
		"1": {
			ID:      "1",
			OwnerID: "p1",
			CancellationPolicy: domain.CancellationPolicy{
				FreeUntilHours:       24,
				LateCancelFeePercent: 50,
				NoShowFeePercent:     100,
			},
		},
	}}
	svc := NewService(bookings, salons, passthroughTxManager{}, fixedTime{testNow}, noopLogger{})
	return svc, bookings
}

func seedBooking(repo *fakeBookingRepo, id string, status domain.BookingStatus, scheduledAt time.Time) {
	repo.bookings[id] = &domain.Booking{
		ID:            id,
		SalonID:       "1",
		ServiceID:     "s1",
		ClientID:      "c1",
		ClientName:    "Marie",
		ScheduledAt:   scheduledAt,
		Status:        status,
		TotalPrice:    45,
		PaymentStatus: domain.PaymentPaid,
		ServiceName:   "Coupe Femme",
		ServicePrice:  45,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusConfirmed, testNow.Add(48*time.Hour))

	// Клиент видит своё бронирование
	resp, err := svc.GetByID(context.Background(), "bk-1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "bk-1", resp.ID)

	// Владелец салона тоже видит
	_, err = svc.GetByID(context.Background(), "bk-1", "p1")
	require.NoError(t, err)

	// Посторонний - нет
	_, err = svc.GetByID(context.Background(), "bk-1", "stranger")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing", "c1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetClientBookings_SortedNewestFirst(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-old", domain.StatusCompleted, testNow.Add(-72*time.Hour))
	seedBooking(repo, "bk-new", domain.StatusConfirmed, testNow.Add(48*time.Hour))

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{ClientID: "c1"})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "bk-new", resp.Bookings[0].ID)
	assert.Equal(t, "bk-old", resp.Bookings[1].ID)
}

func TestGetClientBookings_StatusFilter(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusCompleted, testNow.Add(-72*time.Hour))
	seedBooking(repo, "bk-2", domain.StatusConfirmed, testNow.Add(48*time.Hour))

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "c1",
		Status:   ptr.Ptr("completed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk-1", resp.Bookings[0].ID)

	_, err = svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientID: "c1",
		Status:   ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetSalonBookings_OwnerOnly(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusConfirmed, testNow.Add(48*time.Hour))
	seedBooking(repo, "bk-2", domain.StatusCancelled, testNow.Add(24*time.Hour))

	resp, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		UserID:  "p1",
		SalonID: "1",
	})
	require.NoError(t, err)
	// Отменённые по умолчанию скрыты
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "bk-1", resp.Bookings[0].ID)

	withCancelled, err := svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		UserID:           "p1",
		SalonID:          "1",
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Len(t, withCancelled.Bookings, 2)

	_, err = svc.GetSalonBookings(context.Background(), &models.GetSalonBookingsRequest{
		UserID:  "c1",
		SalonID: "1",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_LegalTransition(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusPending, testNow.Add(48*time.Hour))

	resp, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID:    "p1",
		BookingID: "bk-1",
		Status:    "confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusCompleted, testNow.Add(-48*time.Hour))

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID:    "p1",
		BookingID: "bk-1",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateStatus_UnknownBookingIsLoud(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID:    "p1",
		BookingID: "missing",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_ProviderOnly(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusPending, testNow.Add(48*time.Hour))

	_, err := svc.UpdateStatus(context.Background(), &models.UpdateStatusRequest{
		UserID:    "c1",
		BookingID: "bk-1",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_FreeWindow(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusConfirmed, testNow.Add(48*time.Hour))

	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		UserID:    "c1",
		BookingID: "bk-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.Equal(t, 0, resp.FeePercent)
	assert.Equal(t, 0.0, resp.FeeAmount)
	require.NotNil(t, resp.Booking.CancelledAt)
	assert.Equal(t, testNow, *resp.Booking.CancelledAt)
}

func TestCancel_LateWindowFee(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusConfirmed, testNow.Add(2*time.Hour))

	resp, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		UserID:    "c1",
		BookingID: "bk-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 50, resp.FeePercent)
	assert.Equal(t, 22.5, resp.FeeAmount)
}

func TestCancel_TerminalBooking(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusCancelled, testNow.Add(2*time.Hour))

	_, err := svc.Cancel(context.Background(), &models.CancelBookingRequest{
		UserID:    "c1",
		BookingID: "bk-1",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancellationQuote_NoShowAfterStart(t *testing.T) {
	svc, repo := newTestService()
	seedBooking(repo, "bk-1", domain.StatusConfirmed, testNow.Add(-time.Hour))

	quote, err := svc.CancellationQuote(context.Background(), "bk-1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 100, quote.FeePercent)
	assert.Equal(t, 45.0, quote.FeeAmount)
}
