package list_conversations

import (
	"context"

	"github.com/glameo/glameo-backend/internal/service/messaging/models"
)

type MessagingService interface {
	ListConversations(ctx context.Context, userID string) (*models.ConversationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
