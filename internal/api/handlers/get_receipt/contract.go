package get_receipt

import "context"

type ReceiptService interface {
	Generate(ctx context.Context, bookingID string, userID string) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
