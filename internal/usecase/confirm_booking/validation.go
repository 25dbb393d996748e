package confirm_booking

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SalonID) == "" {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	// Запись подтверждается только с принятой политикой отмены
	if !req.PolicyAccepted {
		return ErrPolicyNotAccepted
	}

	if !req.ScheduledAt.After(now) {
		return ErrInvalidDate
	}

	return nil
}
