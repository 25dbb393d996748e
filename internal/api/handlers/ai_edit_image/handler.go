package ai_edit_image

import (
	"errors"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	usecase "github.com/glameo/glameo-backend/internal/usecase/ai_search"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры правки изображения"
	msgEditFailed         = "не удалось обработать изображение"
	msgUnauthorized       = "требуется действующая сессия"
)

type Handler struct {
	editImageUseCase EditImageUseCase
	logger           Logger
}

func NewHandler(editImageUseCase EditImageUseCase, logger Logger) *Handler {
	return &Handler{
		editImageUseCase: editImageUseCase,
		logger:           logger,
	}
}

// Handle POST /api/v1/ai/edit-image
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req usecase.EditImageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ai/edit-image - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = session.UserID

	result, err := h.editImageUseCase.EditImage(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, usecase.ErrImageEditFailed):
			// Ошибка модели не маскируется - клиент предлагает повтор
			h.logger.Error("POST /ai/edit-image - Edit failed for user=%s: %v", session.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgEditFailed)
		default:
			h.logger.Error("POST /ai/edit-image - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /ai/edit-image - user=%s got %d bytes base64", session.UserID, len(result.ImageB64))
	handlers.RespondJSON(w, http.StatusOK, result)
}
