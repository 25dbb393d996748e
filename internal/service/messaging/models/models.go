package models

import (
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения
type SendMessageRequest struct {
	SenderID   string  `json:"senderId"`
	ReceiverID string  `json:"receiverId"`
	Text       string  `json:"text"`
	BookingID  *string `json:"bookingId,omitempty"` // Привязка к бронированию (опционально)
}

// Response модели

// MessageResponse сообщение переписки
type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	SentAt     time.Time `json:"sentAt"`
	IsRead     bool      `json:"isRead"`
	BookingID  *string   `json:"bookingId,omitempty"`
}

// ConversationResponse переписка двух участников
// PollIntervalSeconds подсказывает клиенту частоту опроса - push-доставки нет
type ConversationResponse struct {
	Messages            []MessageResponse `json:"messages"`
	PollIntervalSeconds int               `json:"pollIntervalSeconds"`
}

// ConversationListResponse список собеседников пользователя
type ConversationListResponse struct {
	Partners            []string `json:"partners"`
	PollIntervalSeconds int      `json:"pollIntervalSeconds"`
}

// FromDomainMessage конвертирует доменную модель сообщения в response
func FromDomainMessage(m *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Text:       m.Text,
		SentAt:     m.SentAt,
		IsRead:     m.IsRead,
		BookingID:  m.BookingID,
	}
}

// FromDomainMessageList конвертирует список сообщений в response
func FromDomainMessageList(messages []*domain.Message, pollInterval int) *ConversationResponse {
	result := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		result = append(result, *FromDomainMessage(m))
	}
	return &ConversationResponse{
		Messages:            result,
		PollIntervalSeconds: pollInterval,
	}
}
