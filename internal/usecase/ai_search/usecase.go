package ai_search

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case экспертного AI-поиска и правки изображений
// Текстовый поиск доступен только клиентам с хотя бы одной записью
type UseCase struct {
	bookingRepo BookingRepository
	aiClient    AIClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, aiClient AIClient, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		aiClient:    aiClient,
		logger:      logger,
	}
}

// Search выполняет текстовый экспертный поиск
// Недоступность модели не ошибка: возвращается структурированный
// пустой результат с пометкой Unavailable
func (uc *UseCase) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	uc.logger.Info("Search: user=%s, query=%q", req.UserID, req.Query)

	if strings.TrimSpace(req.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	// Серверная проверка клиентского правила: поиск открыт после
	// первого бронирования
	count, err := uc.bookingRepo.CountByClientID(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("Search: count bookings for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: count bookings: %v", ErrInternal, err)
	}
	if count == 0 {
		uc.logger.Warn("Search: user=%s has no bookings, access denied", req.UserID)
		return nil, ErrAccessDenied
	}

	result, err := uc.aiClient.SmartSearch(ctx, req.Query, req.Location)
	if err != nil {
		uc.logger.Warn("Search: model unavailable for user=%s: %v", req.UserID, err)
		return unavailableResult(), nil
	}

	uc.logger.Info("Search: user=%s got %d trends, %d sources", req.UserID, len(result.Trends), len(result.Sources))
	return &SearchResponse{
		Summary: result.Summary,
		Trends:  result.Trends,
		Advice:  result.Advice,
		Sources: result.Sources,
	}, nil
}

// EditImage выполняет правку изображения прически
// Ошибки модели не маскируются - клиент показывает состояние ошибки
// с возможностью повтора
func (uc *UseCase) EditImage(ctx context.Context, req *EditImageRequest) (*EditImageResponse, error) {
	uc.logger.Info("EditImage: user=%s, instruction=%q", req.UserID, req.Instruction)

	if strings.TrimSpace(req.ImageB64) == "" {
		return nil, fmt.Errorf("%w: imageBase64 is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, fmt.Errorf("%w: instruction is required", ErrInvalidInput)
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	edited, err := uc.aiClient.EditImage(ctx, req.ImageB64, mimeType, req.Instruction)
	if err != nil {
		uc.logger.Error("EditImage: failed for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrImageEditFailed, err)
	}

	uc.logger.Info("EditImage: user=%s got edited image, %d bytes base64", req.UserID, len(edited))
	return &EditImageResponse{ImageB64: edited}, nil
}
