package ai_search

import (
	"context"

	"github.com/glameo/glameo-backend/internal/integrations/aiservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByClientID(ctx context.Context, clientID string) (int, error)
}

// AIClient интерфейс клиента генеративной модели
type AIClient interface {
	SmartSearch(ctx context.Context, query string, location string) (*aiservice.SearchResult, error)
	EditImage(ctx context.Context, imageB64 string, mimeType string, instruction string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
