package get_conversation

import (
	"context"

	"github.com/glameo/glameo-backend/internal/service/messaging/models"
)

type MessagingService interface {
	GetConversation(ctx context.Context, userID, partnerID string) (*models.ConversationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
