package reviews

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	reviewRepo "github.com/glameo/glameo-backend/internal/infra/storage/review"
	"github.com/glameo/glameo-backend/internal/service/reviews/models"
)

type fakeReviewRepo struct {
	reviews map[string]*domain.Review // по booking id
	nextID  int
}

func (f *fakeReviewRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	if _, ok := f.reviews[review.BookingID]; ok {
		return nil, reviewRepo.ErrDuplicateReview
	}
	f.nextID++
	copied := *review
	copied.ID = fmt.Sprintf("rv-%d", f.nextID)
	copied.CreatedAt = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)
	f.reviews[review.BookingID] = &copied
	result := copied
	return &result, nil
}

func (f *fakeReviewRepo) ListBySalon(_ context.Context, salonID string) ([]*domain.Review, error) {
	var result []*domain.Review
	for _, r := range f.reviews {
		if r.SalonID == salonID {
			copied := *r
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReviewRepo) AggregateForSalon(_ context.Context, salonID string) (float64, int, error) {
	var sum, count int
	for _, r := range f.reviews {
		if r.SalonID == salonID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) SetReviewID(_ context.Context, id string, reviewID string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.ReviewID = &reviewID
	return nil
}

type fakeSalonRepo struct {
	rating float64
	count  int
}

func (f *fakeSalonRepo) UpdateRating(_ context.Context, _ string, rating float64, reviewCount int) error {
	f.rating = rating
	f.count = reviewCount
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeBookingRepo, *fakeSalonRepo) {
	reviews := &fakeReviewRepo{reviews: make(map[string]*domain.Review)}
	bookings := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	salons := &fakeSalonRepo{}
	svc := NewService(reviews, bookings, salons, passthroughTxManager{}, noopLogger{})
	return svc, bookings, salons
}

func seedBooking(repo *fakeBookingRepo, id string, status domain.BookingStatus) {
	repo.bookings[id] = &domain.Booking{
		ID:         id,
		SalonID:    "1",
		ClientID:   "c1",
		ClientName: "Marie",
		Status:     status,
	}
}

func TestSubmit_PublishesAndLinks(t *testing.T) {
	svc, bookings, salons := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusCompleted)

	resp, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID:    "c1",
		BookingID: "bk-1",
		Rating:    5,
		Comment:   "Excellente coupe!",
	})
	require.NoError(t, err)
	assert.Equal(t, "1", resp.SalonID)
	assert.True(t, resp.IsVerified)
	assert.Equal(t, "Marie", resp.ClientName) // имя клиента из бронирования

	// Бронирование связано с отзывом
	require.NotNil(t, bookings.bookings["bk-1"].ReviewID)
	assert.Equal(t, resp.ID, *bookings.bookings["bk-1"].ReviewID)

	// Агрегат рейтинга пересчитан
	assert.Equal(t, 5.0, salons.rating)
	assert.Equal(t, 1, salons.count)
}

func TestSubmit_OnlyBookingClient(t *testing.T) {
	svc, bookings, _ := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusCompleted)

	_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID: "stranger", BookingID: "bk-1", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSubmit_OnlyCompletedBooking(t *testing.T) {
	svc, bookings, _ := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusConfirmed)

	_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID: "c1", BookingID: "bk-1", Rating: 4,
	})
	assert.ErrorIs(t, err, ErrNotReviewable)
}

func TestSubmit_DuplicateReview(t *testing.T) {
	svc, bookings, _ := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusCompleted)

	_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID: "c1", BookingID: "bk-1", Rating: 5,
	})
	require.NoError(t, err)

	// Бронирование уже имеет отзыв
	_, err = svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID: "c1", BookingID: "bk-1", Rating: 3,
	})
	assert.ErrorIs(t, err, ErrNotReviewable)
}

func TestSubmit_RatingBounds(t *testing.T) {
	svc, bookings, _ := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusCompleted)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
			UserID: "c1", BookingID: "bk-1", Rating: rating,
		})
		assert.ErrorIs(t, err, ErrInvalidRating, "rating=%d", rating)
	}
}

func TestSubmit_UnknownBooking(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{
		UserID: "c1", BookingID: "missing", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSubmit_AggregateOverMultipleReviews(t *testing.T) {
	svc, bookings, salons := newTestService()
	seedBooking(bookings, "bk-1", domain.StatusCompleted)
	seedBooking(bookings, "bk-2", domain.StatusCompleted)

	_, err := svc.Submit(context.Background(), &models.SubmitReviewRequest{UserID: "c1", BookingID: "bk-1", Rating: 5})
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), &models.SubmitReviewRequest{UserID: "c1", BookingID: "bk-2", Rating: 4})
	require.NoError(t, err)

	assert.Equal(t, 4.5, salons.rating)
	assert.Equal(t, 2, salons.count)
}
