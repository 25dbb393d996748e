package submit_review

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/service/reviews"
	"github.com/glameo/glameo-backend/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "отзыв может оставить только клиент бронирования"
	msgNotReviewable      = "бронирование нельзя оценить"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgInvalidInput       = "некорректные данные отзыва"
	msgUnauthorized       = "требуется действующая сессия"
)

type Handler struct {
	reviewService ReviewService
	logger        Logger
}

func NewHandler(reviewService ReviewService, logger Logger) *Handler {
	return &Handler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/review
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	var req models.SubmitReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{bookingId}/review - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Автор отзыва всегда текущий пользователь
	req.BookingID = bookingID
	req.UserID = session.UserID
	if req.UserName == "" {
		req.UserName = session.DisplayName
	}

	result, err := h.reviewService.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{bookingId}/review - Booking not found: %s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, reviews.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{bookingId}/review - Access denied for user=%s booking=%s", session.UserID, bookingID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, reviews.ErrNotReviewable):
			h.logger.Warn("POST /bookings/{bookingId}/review - Not reviewable: %s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotReviewable)
		case errors.Is(err, reviews.ErrInvalidRating):
			handlers.RespondBadRequest(w, msgInvalidRating)
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /bookings/{bookingId}/review - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{bookingId}/review - Review id=%s for salon=%s", result.ID, result.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
