package list_salons

import (
	"errors"
	"net/http"

	"github.com/glameo/glameo-backend/internal/api/handlers"
	"github.com/glameo/glameo-backend/internal/service/catalog"
	"github.com/glameo/glameo-backend/internal/service/catalog/models"
)

const msgInvalidCategory = "неизвестная категория салона"

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

// Handle GET /api/v1/salons?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSalonsRequest{}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.catalogService.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /salons - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)
		default:
			h.logger.Error("GET /salons - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
