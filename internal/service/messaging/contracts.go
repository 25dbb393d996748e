package messaging

import (
	"context"

	"github.com/glameo/glameo-backend/internal/domain"
)

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	GetConversation(ctx context.Context, partyA, partyB string) ([]*domain.Message, error)
	ListPartners(ctx context.Context, userID string) ([]string, error)
	MarkConversationRead(ctx context.Context, userID, partnerID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
