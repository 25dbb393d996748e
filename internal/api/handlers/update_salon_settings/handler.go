package update_salon_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/catalog"
	"github.com/glameo/glameo-backend/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgAccessDenied       = "настройки салона меняет только владелец"
	msgInvalidSettings    = "некорректные настройки салона"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle PUT /api/v1/salons/{salonId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}
	salonID := mux.Vars(r)["salonId"]

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/%s/settings - Invalid request body: %v", salonID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = session.UserID
	req.SalonID = salonID

	result, err := h.catalogService.UpdateSettings(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("PUT /salons/%s/settings - Salon not found", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, catalog.ErrAccessDenied):
			h.logger.Warn("PUT /salons/%s/settings - Access denied for user=%s", salonID, session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /salons/%s/settings - Invalid settings: %v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSettings)
		default:
			h.logger.Error("PUT /salons/%s/settings - Failed: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/%s/settings - Updated by user=%s", salonID, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
