package ai_search

import "errors"

var (
	// ErrAccessDenied возвращается, когда у клиента нет ни одной записи
	// Экспертный поиск открывается после первого бронирования
	ErrAccessDenied = errors.New("ai_search: access denied")

	// ErrImageEditFailed возвращается при неудачной правке изображения
	// В отличие от текстового поиска ошибка не маскируется
	ErrImageEditFailed = errors.New("ai_search: image edit failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("ai_search: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("ai_search: internal error")
)
