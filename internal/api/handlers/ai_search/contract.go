package ai_search

import (
	"context"

	usecase "github.com/glameo/glameo-backend/internal/usecase/ai_search"
)

type SearchUseCase interface {
	Search(ctx context.Context, req *usecase.SearchRequest) (*usecase.SearchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
