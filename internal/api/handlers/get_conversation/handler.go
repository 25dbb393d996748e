package get_conversation

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
)

const (
	msgMissingPartnerID = "не указан идентификатор собеседника"
	msgUnauthorized     = "требуется действующая сессия"
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

// Handle GET /api/v1/conversations/{partnerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	partnerID := mux.Vars(r)["partnerId"]
	if partnerID == "" {
		handlers.RespondBadRequest(w, msgMissingPartnerID)
		return
	}

	result, err := h.messagingService.GetConversation(r.Context(), session.UserID, partnerID)
	if err != nil {
		h.logger.Error("GET /conversations/{partnerId} - Failed for user=%s partner=%s: %v", session.UserID, partnerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /conversations/{partnerId} - %d messages for user=%s partner=%s", len(result.Messages), session.UserID, partnerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
