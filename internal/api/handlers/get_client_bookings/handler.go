package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/bookings"
	"github.com/glameo/glameo-backend/internal/service/bookings/models"
)

const (
	msgAccessDenied  = "история записей доступна только её владельцу"
	msgInvalidStatus = "неизвестный статус записи"
)

type Handler struct {
	bookingService BookingService
	logger         Logger
}

func NewHandler(bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}
	clientID := mux.Vars(r)["clientId"]

	// Клиент видит только собственную историю
	if clientID != session.UserID {
		h.logger.Warn("GET /clients/%s/bookings - Access denied for user=%s", clientID, session.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetClientBookingsRequest{ClientID: clientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.bookingService.GetClientBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/%s/bookings - Invalid status: %v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("GET /clients/%s/bookings - Failed: %v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
