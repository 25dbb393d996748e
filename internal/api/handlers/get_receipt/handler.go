package get_receipt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/receipts"
)

const (
	msgBookingNotFound = "бронирование не найдено"
	msgAccessDenied    = "нет доступа к квитанции этого бронирования"
	msgNotPayable      = "квитанция доступна только для оплаченных бронирований"
	msgUnauthorized    = "требуется действующая сессия"
)

type Handler struct {
	receiptService ReceiptService
	logger         Logger
}

func NewHandler(receiptService ReceiptService, logger Logger) *Handler {
	return &Handler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	pdf, err := h.receiptService.Generate(r.Context(), bookingID, session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, receipts.ErrBookingNotFound), errors.Is(err, receipts.ErrSalonNotFound):
			h.logger.Warn("GET /bookings/{bookingId}/receipt - Not found: %s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, receipts.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{bookingId}/receipt - Access denied for user=%s booking=%s", session.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, receipts.ErrNotPayable):
			h.logger.Warn("GET /bookings/{bookingId}/receipt - Not payable: %s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)
		default:
			h.logger.Error("GET /bookings/{bookingId}/receipt - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{bookingId}/receipt - %d bytes for booking=%s", len(pdf), bookingID)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"recu-glameo-%s.pdf\"", bookingID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf) //nolint:errcheck
}
