package reviews

import (
	"context"

	"github.com/glameo/glameo-backend/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListBySalon(ctx context.Context, salonID string) ([]*domain.Review, error)
	AggregateForSalon(ctx context.Context, salonID string) (float64, int, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	SetReviewID(ctx context.Context, id string, reviewID string) error
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
