package get_salon_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/api/middleware"
	"github.com/glameo/glameo-backend/internal/domain"
	"github.com/glameo/glameo-backend/internal/service/bookings"
	"github.com/glameo/glameo-backend/internal/service/bookings/models"
)

const (
	msgSalonNotFound = "салон не найден"
	msgAccessDenied  = "записи салона видит только владелец"
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/salons/{salonId}/bookings?startDate=&endDate=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgAccessDenied)
		return
	}
	salonID := mux.Vars(r)["salonId"]

	req := &models.GetSalonBookingsRequest{
		UserID:           session.UserID,
		SalonID:          salonID,
		IncludeCancelled: r.URL.Query().Get("includeCancelled") == "true",
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	query := r.URL.Query()
	for param, dst := range map[string]**time.Time{"startDate": &req.StartDate, "endDate": &req.EndDate} {
		if raw := query.Get(param); raw != "" {
			parsed, err := time.Parse(domain.DateFormat, raw)
			if err != nil {
				h.logger.Warn("GET /salons/%s/bookings - Invalid %s=%q", salonID, param, raw)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			*dst = &parsed
		}
	}

	result, err := h.bookingService.GetSalonBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrSalonNotFound):
			h.logger.Warn("GET /salons/%s/bookings - Salon not found", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /salons/%s/bookings - Access denied for user=%s", salonID, session.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /salons/%s/bookings - Invalid filter: %v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
		default:
			h.logger.Error("GET /salons/%s/bookings - Failed: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
