package aiservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("aiservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе модели
	ErrInvalidResponse = errors.New("aiservice client: invalid response")

	// ErrNoImageGenerated возвращается, когда модель не вернула изображение
	// Отличает неудачу редактирования от успеха по отсутствию картинки в ответе
	ErrNoImageGenerated = errors.New("aiservice client: no image was generated")
)
