package ai_edit_image

import (
	"context"

	usecase "github.com/glameo/glameo-backend/internal/usecase/ai_search"
)

type EditImageUseCase interface {
	EditImage(ctx context.Context, req *usecase.EditImageRequest) (*usecase.EditImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
