package catalog

import (
	"context"

	"github.com/glameo/glameo-backend/internal/domain"
)

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	Create(ctx context.Context, salon *domain.Salon) error
	GetByID(ctx context.Context, id string) (*domain.Salon, error)
	List(ctx context.Context, category *domain.SalonCategory) ([]*domain.Salon, error)
	UpdateSettings(ctx context.Context, id string, update domain.SalonSettingsUpdate) error
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
