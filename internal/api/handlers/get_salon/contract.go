package get_salon

import (
	"context"

	catalogModels "github.com/glameo/glameo-backend/internal/service/catalog/models"
	reviewModels "github.com/glameo/glameo-backend/internal/service/reviews/models"
)

type CatalogService interface {
	GetByID(ctx context.Context, id string) (*catalogModels.SalonResponse, error)
}

type ReviewService interface {
	ListBySalon(ctx context.Context, salonID string) (*reviewModels.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
