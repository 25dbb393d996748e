package cancellation_quote

import (
	"context"

	"github.com/glameo/glameo-backend/internal/service/bookings/models"
)

type BookingService interface {
	CancellationQuote(ctx context.Context, bookingID string, userID string) (*models.CancellationQuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
