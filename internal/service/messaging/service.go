package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/glameo/glameo-backend/internal/domain"
	"github.com/glameo/glameo-backend/internal/service/messaging/models"
)

// Service сервис переписки клиентов и салонов
// Доставка по модели поллинга: сервер не пушит, клиент перечитывает
// переписку с интервалом PollIntervalSeconds
type Service struct {
	messageRepo  MessageRepository
	pollInterval int
	logger       Logger
}

// NewService создает новый экземпляр сервиса переписки
func NewService(messageRepo MessageRepository, pollIntervalSeconds int, logger Logger) *Service {
	return &Service{
		messageRepo:  messageRepo,
		pollInterval: pollIntervalSeconds,
		logger:       logger,
	}
}

// Send отправляет сообщение от отправителя получателю
func (s *Service) Send(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("Send: message from=%s to=%s", req.SenderID, req.ReceiverID)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		s.logger.Warn("Send: empty message from=%s", req.SenderID)
		return nil, ErrEmptyMessage
	}
	if len(text) > domain.MaxMessageLength {
		s.logger.Warn("Send: message too long from=%s, len=%d", req.SenderID, len(text))
		return nil, ErrMessageTooLong
	}
	if req.SenderID == req.ReceiverID {
		return nil, ErrSelfConversation
	}
	if req.ReceiverID == "" {
		return nil, fmt.Errorf("%w: receiverId is required", ErrInvalidInput)
	}

	msg := &domain.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Text:       text,
		BookingID:  req.BookingID,
	}

	created, err := s.messageRepo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Send: repository error from=%s to=%s: %v", req.SenderID, req.ReceiverID, err)
		return nil, fmt.Errorf("%w: Send - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Send: message id=%s delivered", created.ID)
	return models.FromDomainMessage(created), nil
}

// GetConversation возвращает переписку пользователя с собеседником
// в хронологическом порядке и помечает входящие как прочитанные
func (s *Service) GetConversation(ctx context.Context, userID, partnerID string) (*models.ConversationResponse, error) {
	s.logger.Info("GetConversation: user=%s partner=%s", userID, partnerID)

	messages, err := s.messageRepo.GetConversation(ctx, userID, partnerID)
	if err != nil {
		s.logger.Error("GetConversation: repository error user=%s partner=%s: %v", userID, partnerID, err)
		return nil, fmt.Errorf("%w: GetConversation - repository error: %v", ErrInternal, err)
	}

	// Прочтение - побочный эффект чтения переписки
	if err := s.messageRepo.MarkConversationRead(ctx, userID, partnerID); err != nil {
		s.logger.Error("GetConversation: mark read failed user=%s partner=%s: %v", userID, partnerID, err)
		return nil, fmt.Errorf("%w: GetConversation - mark read: %v", ErrInternal, err)
	}

	return models.FromDomainMessageList(messages, s.pollInterval), nil
}

// ListConversations возвращает собеседников пользователя
func (s *Service) ListConversations(ctx context.Context, userID string) (*models.ConversationListResponse, error) {
	s.logger.Info("ListConversations: user=%s", userID)

	partners, err := s.messageRepo.ListPartners(ctx, userID)
	if err != nil {
		s.logger.Error("ListConversations: repository error user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListConversations - repository error: %v", ErrInternal, err)
	}

	if partners == nil {
		partners = []string{}
	}
	return &models.ConversationListResponse{
		Partners:            partners,
		PollIntervalSeconds: s.pollInterval,
	}, nil
}
