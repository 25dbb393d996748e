package send_message

import (
	"context"

	"github.com/glameo/glameo-backend/internal/service/messaging/models"
)

type MessagingService interface {
	Send(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
