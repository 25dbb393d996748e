package messaging

import "errors"

var (
	// ErrEmptyMessage возвращается при попытке отправить пустое сообщение
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrMessageTooLong возвращается при превышении допустимой длины текста
	ErrMessageTooLong = errors.New("message text is too long")

	// ErrSelfConversation возвращается при попытке написать самому себе
	ErrSelfConversation = errors.New("cannot message yourself")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
