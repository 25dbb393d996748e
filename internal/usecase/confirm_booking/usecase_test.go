package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/integrations/payments"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	copied := *booking
	copied.ID = "bk-test"
	copied.CreatedAt = testNow
	f.created = append(f.created, &copied)
	result := copied
	return &result, nil
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

type fakePayments struct {
	declined bool
	amounts  []float64
}

func (f *fakePayments) Authorize(_ context.Context, _ string, amount float64) (*payments.Authorization, error) {
	if f.declined {
		return nil, payments.ErrPaymentDeclined
	}
	f.amounts = append(f.amounts, amount)
	return &payments.Authorization{Reference: "pay-test", Amount: amount, AuthorizedAt: testNow}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakePayments) {
	bookings := &fakeBookingRepo{}
	pay := &fakePayments{}
	salons := &fakeSalonRepo{salons: map[string]*domain.Salon{
		"1": {
			ID:      "1",
			OwnerID: "p1",
			Name:    "L’Atelier Coiffure Montréal",
			Services: []domain.Service{
				{ID: "s1", SalonID: "1", Name: "Coupe Femme", DurationMinutes: 45, BufferMinutes: 15, Price: 45},
			},
		},
	}}
	uc := NewUseCase(bookings, salons, pay, noopLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc, bookings, pay
}

func validRequest() *Request {
	return &Request{
		UserID:         "c1",
		ClientName:     "Marie",
		SalonID:        "1",
		ServiceID:      "s1",
		ScheduledAt:    testNow.Add(48 * time.Hour),
		PolicyAccepted: true,
	}
}

func TestExecute_ConfirmedAndPaid(t *testing.T) {
	uc, repo, pay := newTestUseCase()

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-test", resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Equal(t, "pay-test", resp.PaymentReference)
	assert.Equal(t, 45.0, resp.TotalPrice)
	assert.False(t, resp.PromoApplied)

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusConfirmed, repo.created[0].Status)
	require.Len(t, pay.amounts, 1)
	assert.Equal(t, 45.0, pay.amounts[0])
}

func TestExecute_PromoCode(t *testing.T) {
	uc, _, pay := newTestUseCase()

	req := validRequest()
	req.PromoCode = "GLAMEO10"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.PromoApplied)
	assert.Equal(t, 35.0, resp.TotalPrice)
	assert.Equal(t, 45.0, resp.ServicePrice)
	// Платеж авторизован на сумму со скидкой
	assert.Equal(t, 35.0, pay.amounts[0])
}

func TestExecute_ShortPromoCodeIgnored(t *testing.T) {
	uc, _, _ := newTestUseCase()

	req := validRequest()
	req.PromoCode = "ab"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.PromoApplied)
	assert.Equal(t, 45.0, resp.TotalPrice)
}

func TestExecute_PolicyNotAccepted(t *testing.T) {
	uc, repo, _ := newTestUseCase()

	req := validRequest()
	req.PolicyAccepted = false
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPolicyNotAccepted)
	assert.Empty(t, repo.created)
}

func TestExecute_PastDate(t *testing.T) {
	uc, _, _ := newTestUseCase()

	req := validRequest()
	req.ScheduledAt = testNow.Add(-time.Hour)
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_UnknownSalon(t *testing.T) {
	uc, _, _ := newTestUseCase()

	req := validRequest()
	req.SalonID = "missing"
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, _, _ := newTestUseCase()

	req := validRequest()
	req.ServiceID = "s99"
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PaymentDeclined(t *testing.T) {
	uc, repo, pay := newTestUseCase()
	pay.declined = true

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrPaymentFailed)
	// Запись не создается при отказе платежа
	assert.Empty(t, repo.created)
}
