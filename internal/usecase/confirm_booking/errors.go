package confirm_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("confirm_booking: salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в салоне
	ErrServiceNotFound = errors.New("confirm_booking: service not found")

	// ErrPolicyNotAccepted возвращается, когда клиент не принял политику отмены
	ErrPolicyNotAccepted = errors.New("confirm_booking: cancellation policy must be accepted")

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = errors.New("confirm_booking: scheduled time must be in the future")

	// ErrPaymentFailed возвращается при отказе платежа
	ErrPaymentFailed = errors.New("confirm_booking: payment failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
