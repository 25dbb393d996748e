package cancellation_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/bookings"
)

const (
	msgBookingNotFound = "запись не найдена"
	msgAccessDenied    = "нет доступа к этой записи"
	msgCannotCancel    = "запись уже завершена или отменена"
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

// Handle GET /api/v1/bookings/{bookingId}/cancellation-quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.bookingService.CancellationQuote(r.Context(), bookingID, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%s/cancellation-quote - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/%s/cancellation-quote - Access denied for user=%s", bookingID, session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("GET /bookings/%s/cancellation-quote - Not cancellable: %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("GET /bookings/%s/cancellation-quote - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
