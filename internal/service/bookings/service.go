package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	salonRepoPkg "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	salonRepo    SalonRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		salonRepo:    salonRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят только клиент и владелец салона
func (s *Service) GetByID(ctx context.Context, id string, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.fetchBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу, сортировка от новых к старым
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%s", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%s", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSalonBookings получает бронирования салона с фильтрацией по периоду и статусу
// Доступно только владельцу салона
func (s *Service) GetSalonBookings(ctx context.Context, req *models.GetSalonBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetSalonBookings: fetching bookings for salon=%s, user=%s", req.SalonID, req.UserID)

	if err := s.checkSalonOwner(ctx, req.SalonID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSalonBookings: invalid filter for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetBySalonWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSalonBookings: repository error for salon=%s: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: GetSalonBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSalonBookings: successfully fetched %d bookings for salon=%s", len(bookings), req.SalonID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус по таблице переходов
// pending -> confirmed | cancelled, confirmed -> completed | cancelled
// Доступно только владельцу салона. Для отмены клиентом используется Cancel
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s -> status=%s by user=%s", req.BookingID, req.Status, req.UserID)

	target, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.fetchBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}

		if err := s.checkSalonOwner(ctx, booking.SalonID, req.UserID); err != nil {
			return err
		}

		if !booking.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, target)
		}

		if target == domain.StatusCancelled {
			if err := s.bookingRepo.Cancel(ctx, booking.ID, s.timeProvider.Now()); err != nil {
				return fmt.Errorf("%w: UpdateStatus - cancel: %v", ErrInternal, err)
			}
		} else {
			if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, target); err != nil {
				return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
			}
		}

		updated, err = s.fetchBooking(ctx, req.BookingID)
		return err
	})
	if err != nil {
		s.logWarnOrError("UpdateStatus", req.BookingID, err)
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", updated.ID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// Cancel отменяет бронирование по требованию клиента
// Возвращает размер сбора за отмену на момент операции. Сбор информационный -
// списания не происходит, оплата не возвращается автоматически
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%s", req.BookingID, req.UserID)

	var resp *models.CancelBookingResponse
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.fetchBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}

		if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			return fmt.Errorf("%w: booking is %s", ErrCannotCancel, booking.Status)
		}

		salon, err := s.fetchSalon(ctx, booking.SalonID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		feePercent := salon.CancellationPolicy.FeePercentAt(booking.ScheduledAt, now)
		feeAmount := salon.CancellationPolicy.FeeAmount(booking.TotalPrice, booking.ScheduledAt, now)

		if err := s.bookingRepo.Cancel(ctx, booking.ID, now); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		cancelled, err := s.fetchBooking(ctx, req.BookingID)
		if err != nil {
			return err
		}

		resp = &models.CancelBookingResponse{
			Booking:    *models.FromDomainBooking(cancelled),
			FeePercent: feePercent,
			FeeAmount:  feeAmount,
		}
		return nil
	})
	if err != nil {
		s.logWarnOrError("Cancel", req.BookingID, err)
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%s cancelled, fee=%d%%", req.BookingID, resp.FeePercent)
	return resp, nil
}

// CancellationQuote возвращает размер сбора, который будет раскрыт клиенту
// при отмене бронирования прямо сейчас
func (s *Service) CancellationQuote(ctx context.Context, bookingID string, userID string) (*models.CancellationQuoteResponse, error) {
	s.logger.Info("CancellationQuote: quoting booking id=%s for user=%s", bookingID, userID)

	booking, err := s.fetchBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		return nil, err
	}

	if !booking.CanBeCancelled() {
		return nil, fmt.Errorf("%w: booking is %s", ErrCannotCancel, booking.Status)
	}

	salon, err := s.fetchSalon(ctx, booking.SalonID)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	freeUntil := booking.ScheduledAt.Add(-time.Duration(salon.CancellationPolicy.FreeUntilHours) * time.Hour)

	return &models.CancellationQuoteResponse{
		BookingID:  booking.ID,
		FeePercent: salon.CancellationPolicy.FeePercentAt(booking.ScheduledAt, now),
		FeeAmount:  salon.CancellationPolicy.FeeAmount(booking.TotalPrice, booking.ScheduledAt, now),
		FreeUntil:  freeUntil.Format(time.RFC3339),
	}, nil
}

// fetchBooking достает бронирование, транслируя ошибки репозитория в сервисные
func (s *Service) fetchBooking(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: fetch booking id=%s: %v", ErrInternal, id, err)
	}
	return booking, nil
}

func (s *Service) fetchSalon(ctx context.Context, id string) (*domain.Salon, error) {
	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepoPkg.ErrSalonNotFound) {
			return nil, ErrSalonNotFound
		}
		return nil, fmt.Errorf("%w: fetch salon id=%s: %v", ErrInternal, id, err)
	}
	return salon, nil
}

// checkUserAccess проверяет, что пользователь - клиент бронирования
// или владелец салона
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID string) error {
	if booking.ClientID == userID {
		return nil
	}

	salon, err := s.fetchSalon(ctx, booking.SalonID)
	if err != nil {
		return err
	}
	if salon.OwnerID == userID {
		return nil
	}

	return ErrAccessDenied
}

// checkSalonOwner проверяет, что пользователь - владелец салона
func (s *Service) checkSalonOwner(ctx context.Context, salonID string, userID string) error {
	salon, err := s.fetchSalon(ctx, salonID)
	if err != nil {
		return err
	}
	if salon.OwnerID != userID {
		s.logger.Warn("checkSalonOwner: user=%s is not the owner of salon=%s", userID, salonID)
		return ErrAccessDenied
	}
	return nil
}

func (s *Service) logWarnOrError(op string, bookingID string, err error) {
	switch {
	case errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrAccessDenied),
		errors.Is(err, ErrIllegalTransition),
		errors.Is(err, ErrCannotCancel):
		s.logger.Warn("%s: booking id=%s: %v", op, bookingID, err)
	default:
		s.logger.Error("%s: booking id=%s: %v", op, bookingID, err)
	}
}
