package send_message

import (
	"errors"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/messaging"
	"github.com/glameo/glameo-backend/internal/service/messaging/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyMessage       = "текст сообщения пуст"
	msgMessageTooLong     = "текст сообщения слишком длинный"
	msgSelfConversation   = "нельзя отправить сообщение самому себе"
	msgInvalidInput       = "некорректные данные сообщения"
)

type Handler struct {
	messagingService MessagingService
	logger           Logger
}

func NewHandler(messagingService MessagingService, logger Logger) *Handler {
	return &Handler{
		messagingService: messagingService,
		logger:           logger,
	}
}

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidInput)
		return
	}

	var req models.SendMessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Отправитель всегда текущий пользователь
	req.SenderID = session.UserID

	result, err := h.messagingService.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, messaging.ErrEmptyMessage):
			h.logger.Warn("POST /messages - Empty message from user=%s", session.UserID)
			handlers.RespondBadRequest(w, msgEmptyMessage)
		case errors.Is(err, messaging.ErrMessageTooLong):
			h.logger.Warn("POST /messages - Message too long from user=%s", session.UserID)
			handlers.RespondBadRequest(w, msgMessageTooLong)
		case errors.Is(err, messaging.ErrSelfConversation):
			h.logger.Warn("POST /messages - Self conversation from user=%s", session.UserID)
			handlers.RespondBadRequest(w, msgSelfConversation)
		case errors.Is(err, messaging.ErrInvalidInput):
			h.logger.Warn("POST /messages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /messages - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /messages - Message id=%s from user=%s", result.ID, session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
