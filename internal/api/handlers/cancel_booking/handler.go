package cancel_booking

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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}
	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.bookingService.Cancel(r.Context(), &models.CancelBookingRequest{
		UserID:    session.UserID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/%s/cancel - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/%s/cancel - Access denied for user=%s", bookingID, session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/%s/cancel - Cannot cancel: %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("PATCH /bookings/%s/cancel - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/%s/cancel - Cancelled by user=%s, fee=%d%%", bookingID, session.UserID, result.FeePercent)
	handlers.RespondJSON(w, http.StatusOK, result)
}
