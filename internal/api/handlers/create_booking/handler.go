package create_booking

import (
	"errors"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	confirmBooking "github.com/glameo/glameo-backend/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSalonNotFound      = "салон не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgPolicyNotAccepted  = "необходимо принять политику отмены"
	msgInvalidDate        = "дата записи должна быть в будущем"
	msgPaymentFailed      = "платеж отклонен"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidInput)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(session))
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSalonNotFound):
			h.logger.Warn("POST /bookings - Salon not found: salon_id=%s", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, confirmBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: salon_id=%s, service_id=%s", req.SalonID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, confirmBooking.ErrPolicyNotAccepted):
			h.logger.Warn("POST /bookings - Policy not accepted: user_id=%s", session.UserID)
			handlers.RespondBadRequest(w, msgPolicyNotAccepted)

		case errors.Is(err, confirmBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: user_id=%s", session.UserID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, confirmBooking.ErrPaymentFailed):
			h.logger.Warn("POST /bookings - Payment failed: user_id=%s", session.UserID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%s, error=%v", session.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s", result.ID, session.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
