package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glameo/glameo-backend/internal/domain"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	paymentsClient "github.com/glameo/glameo-backend/internal/integrations/payments"
)

// UseCase use case подтверждения и оплаты записи
// Запись создается сразу подтвержденной и оплаченной: симулируемая
// авторизация платежа предшествует вставке
type UseCase struct {
	bookingRepo    BookingRepository
	salonRepo      SalonRepository
	paymentsClient PaymentsClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	paymentsClient PaymentsClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		salonRepo:      salonRepo,
		paymentsClient: paymentsClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: user=%s, salon=%s, service=%s, at=%s",
		req.UserID, req.SalonID, req.ServiceID, req.ScheduledAt.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон
	salon, err := uc.salonRepo.GetByID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepoPkg.ErrSalonNotFound) {
			uc.logger.Warn("ConfirmBooking: salon id=%s not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get salon id=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Проверяем, что услуга существует в этом салоне
	service, ok := salon.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("ConfirmBooking: service id=%s not found in salon id=%s", req.ServiceID, req.SalonID)
		return nil, ErrServiceNotFound
	}

	// 4. Считаем итог с учетом промокода
	promoApplied := domain.IsPromoCodeValid(req.PromoCode)
	totalPrice := domain.ComputeTotal(service.Price, promoApplied)

	// 5. Авторизуем платеж до вставки записи
	authorization, err := uc.paymentsClient.Authorize(ctx, req.UserID, totalPrice)
	if err != nil {
		if errors.Is(err, paymentsClient.ErrPaymentDeclined) {
			uc.logger.Warn("ConfirmBooking: payment declined for user=%s", req.UserID)
			return nil, ErrPaymentFailed
		}
		uc.logger.Error("ConfirmBooking: payment error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: payment authorization: %v", ErrInternal, err)
	}

	// 6. Создаем запись сразу подтвержденной и оплаченной
	clientName := strings.TrimSpace(req.ClientName)
	if clientName == "" {
		clientName = req.UserID
	}

	booking, err := uc.bookingRepo.Create(ctx, &domain.Booking{
		SalonID:       req.SalonID,
		ServiceID:     req.ServiceID,
		ClientID:      req.UserID,
		ClientName:    clientName,
		ScheduledAt:   req.ScheduledAt,
		Status:        domain.StatusConfirmed,
		TotalPrice:    totalPrice,
		PaymentStatus: domain.PaymentPaid,
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		PromoApplied:  promoApplied,
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to create booking for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%s confirmed, total=%.2f, payment=%s",
		booking.ID, booking.TotalPrice, authorization.Reference)

	return &Response{
		ID:               booking.ID,
		SalonID:          booking.SalonID,
		ServiceID:        booking.ServiceID,
		ClientID:         booking.ClientID,
		ScheduledAt:      booking.ScheduledAt,
		Status:           string(booking.Status),
		PaymentStatus:    string(booking.PaymentStatus),
		PaymentReference: authorization.Reference,
		ServiceName:      booking.ServiceName,
		ServicePrice:     booking.ServicePrice,
		PromoApplied:     booking.PromoApplied,
		TotalPrice:       booking.TotalPrice,
		CreatedAt:        booking.CreatedAt,
	}, nil
}
