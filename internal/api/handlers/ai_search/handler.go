package ai_search

import (
	"errors"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	usecase "github.com/glameo/glameo-backend/internal/usecase/ai_search"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgAccessDenied       = "экспертный поиск доступен после первого бронирования"
	msgInvalidInput       = "некорректные параметры поиска"
	msgUnauthorized       = "требуется действующая сессия"
)

type Handler struct {
	searchUseCase SearchUseCase
	logger        Logger
}

func NewHandler(searchUseCase SearchUseCase, logger Logger) *Handler {
	return &Handler{
		searchUseCase: searchUseCase,
		logger:        logger,
	}
}

// Handle POST /api/v1/ai/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req usecase.SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ai/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = session.UserID

	result, err := h.searchUseCase.Search(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAccessDenied):
			h.logger.Warn("POST /ai/search - Access denied for user=%s", session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /ai/search - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /ai/search - user=%s unavailable=%t", session.UserID, result.Unavailable)
	handlers.RespondJSON(w, http.StatusOK, result)
}
