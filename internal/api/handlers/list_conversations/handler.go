package list_conversations

import (
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
)

const msgUnauthorized = "требуется действующая сессия"

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

// Handle GET /api/v1/conversations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.messagingService.ListConversations(r.Context(), session.UserID)
	if err != nil {
		h.logger.Error("GET /conversations - Failed for user=%s: %v", session.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /conversations - %d partners for user=%s", len(result.Partners), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
