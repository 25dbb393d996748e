package get_salon

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/service/catalog"
	catalogModels "github.com/glameo/glameo-backend/internal/service/catalog/models"
	reviewModels "github.com/glameo/glameo-backend/internal/service/reviews/models"
)

const msgSalonNotFound = "салон не найден"

type Handler struct {
	catalogService CatalogService
	reviewService  ReviewService
	logger         Logger
}

func NewHandler(catalogService CatalogService, reviewService ReviewService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		reviewService:  reviewService,
		logger:         logger,
	}
}

// Response салон вместе с отзывами
type Response struct {
	catalogModels.SalonResponse
	Reviews []reviewModels.ReviewResponse `json:"reviews"`
}

// Handle GET /api/v1/salons/{salonId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	salon, err := h.catalogService.GetByID(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSalonNotFound):
			h.logger.Warn("GET /salons/%s - Salon not found", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
		default:
			h.logger.Error("GET /salons/%s - Failed: %v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	reviews, err := h.reviewService.ListBySalon(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/%s - Failed to fetch reviews: %v", salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{
		SalonResponse: *salon,
		Reviews:       reviews.Reviews,
	})
}
