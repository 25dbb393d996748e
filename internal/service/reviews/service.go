package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glameo/glameo-backend/internal/domain"
	bookingRepo "github.com/glameo/glameo-backend/internal/infra/storage/booking"
	reviewRepo "github.com/glameo/glameo-backend/internal/infra/storage/review"
	"github.com/glameo/glameo-backend/internal/service/reviews/models"
)

// Service сервис отзывов
// Отзыв привязан к завершенному бронированию, после публикации
// пересчитывается агрегат рейтинга салона
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	salonRepo   SalonRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		salonRepo:   salonRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Submit публикует отзыв на завершенное бронирование клиента
// Связывает бронирование с отзывом и обновляет рейтинг салона
func (s *Service) Submit(ctx context.Context, req *models.SubmitReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Submit: review for booking=%s by user=%s, rating=%d", req.BookingID, req.UserID, req.Rating)

	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("Submit: invalid rating=%d for booking=%s", req.Rating, req.BookingID)
		return nil, ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if len(comment) > domain.MaxCommentLength {
		return nil, fmt.Errorf("%w: comment is too long", ErrInvalidInput)
	}

	var created *domain.Review
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Submit - fetch booking: %v", ErrInternal, err)
		}

		// Отзыв оставляет только клиент бронирования
		if booking.ClientID != req.UserID {
			return ErrAccessDenied
		}
		if !booking.CanBeReviewed() {
			return ErrNotReviewable
		}

		clientName := strings.TrimSpace(req.UserName)
		if clientName == "" {
			clientName = booking.ClientName
		}

		created, err = s.reviewRepo.Create(ctx, &domain.Review{
			SalonID:    booking.SalonID,
			BookingID:  booking.ID,
			ClientID:   booking.ClientID,
			ClientName: clientName,
			Rating:     req.Rating,
			Comment:    comment,
			IsVerified: true, // отзыв на реальное завершенное бронирование
		})
		if err != nil {
			if errors.Is(err, reviewRepo.ErrDuplicateReview) {
				return ErrNotReviewable
			}
			return fmt.Errorf("%w: Submit - create review: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.SetReviewID(ctx, booking.ID, created.ID); err != nil {
			return fmt.Errorf("%w: Submit - link booking: %v", ErrInternal, err)
		}

		// Пересчитываем агрегат рейтинга салона
		rating, count, err := s.reviewRepo.AggregateForSalon(ctx, booking.SalonID)
		if err != nil {
			return fmt.Errorf("%w: Submit - aggregate rating: %v", ErrInternal, err)
		}
		if err := s.salonRepo.UpdateRating(ctx, booking.SalonID, rating, count); err != nil {
			return fmt.Errorf("%w: Submit - update salon rating: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrNotReviewable):
			s.logger.Warn("Submit: booking=%s rejected: %v", req.BookingID, err)
		default:
			s.logger.Error("Submit: booking=%s failed: %v", req.BookingID, err)
		}
		return nil, err
	}

	s.logger.Info("Submit: review id=%s published for salon=%s", created.ID, created.SalonID)
	return models.FromDomainReview(created), nil
}

// ListBySalon возвращает отзывы салона от новых к старым
func (s *Service) ListBySalon(ctx context.Context, salonID string) (*models.ReviewListResponse, error) {
	s.logger.Info("ListBySalon: fetching reviews for salon=%s", salonID)

	reviews, err := s.reviewRepo.ListBySalon(ctx, salonID)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%s: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews), nil
}
