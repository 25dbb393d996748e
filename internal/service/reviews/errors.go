package reviews

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда отзыв оставляет не клиент бронирования
	ErrAccessDenied = errors.New("access denied")

	// ErrNotReviewable возвращается, когда бронирование не завершено
	// или уже имеет отзыв
	ErrNotReviewable = errors.New("booking cannot be reviewed")

	// ErrInvalidRating возвращается при оценке вне диапазона 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
