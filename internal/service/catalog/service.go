package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/glameo/glameo-backend/internal/domain"
	salonRepo "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/service/catalog/models"
)

// Service сервис каталога салонов
type Service struct {
	salonRepo SalonRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(salonRepo SalonRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает салоны каталога, опционально отфильтрованные по категории
func (s *Service) List(ctx context.Context, req *models.ListSalonsRequest) (*models.SalonListResponse, error) {
	var category *domain.SalonCategory
	if req.Category != nil && *req.Category != "" {
		if !domain.IsValidCategory(*req.Category) {
			s.logger.Warn("List: invalid category=%s", *req.Category)
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *req.Category)
		}
		c := domain.SalonCategory(*req.Category)
		category = &c
	}

	s.logger.Info("List: fetching salons, category=%v", req.Category)

	salons, err := s.salonRepo.List(ctx, category)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d salons", len(salons))
	return models.FromDomainSalonList(salons), nil
}

// GetByID возвращает салон со всеми услугами и политикой отмены
func (s *Service) GetByID(ctx context.Context, id string) (*models.SalonResponse, error) {
	s.logger.Info("GetByID: fetching salon id=%s", id)

	salon, err := s.salonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			s.logger.Warn("GetByID: salon id=%s not found", id)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetByID: repository error for salon id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSalon(salon), nil
}

// UpdateSettings обновляет настройки салона
// Доступно только владельцу салона
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SalonResponse, error) {
	s.logger.Info("UpdateSettings: updating salon id=%s by user=%s", req.SalonID, req.UserID)

	if req.FreeUntilHours != nil && *req.FreeUntilHours < 0 {
		return nil, fmt.Errorf("%w: freeUntilHours must be non-negative", ErrInvalidInput)
	}
	if req.LateCancelFeePercent != nil && (*req.LateCancelFeePercent < 0 || *req.LateCancelFeePercent > 100) {
		return nil, fmt.Errorf("%w: lateCancelFeePercent must be in [0, 100]", ErrInvalidInput)
	}
	if req.NoShowFeePercent != nil && (*req.NoShowFeePercent < 0 || *req.NoShowFeePercent > 100) {
		return nil, fmt.Errorf("%w: noShowFeePercent must be in [0, 100]", ErrInvalidInput)
	}

	var updated *domain.Salon
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		salon, err := s.salonRepo.GetByID(ctx, req.SalonID)
		if err != nil {
			if errors.Is(err, salonRepo.ErrSalonNotFound) {
				return ErrSalonNotFound
			}
			return fmt.Errorf("%w: UpdateSettings - fetch salon: %v", ErrInternal, err)
		}

		// Проверяем права доступа - настройки меняет только владелец
		if salon.OwnerID != req.UserID {
			return ErrAccessDenied
		}

		update := req.ToDomainSettingsUpdate(salon.CancellationPolicy)
		if err := s.salonRepo.UpdateSettings(ctx, req.SalonID, update); err != nil {
			if errors.Is(err, salonRepo.ErrSalonNotFound) {
				return ErrSalonNotFound
			}
			return fmt.Errorf("%w: UpdateSettings - apply update: %v", ErrInternal, err)
		}

		updated, err = s.salonRepo.GetByID(ctx, req.SalonID)
		if err != nil {
			return fmt.Errorf("%w: UpdateSettings - refetch salon: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSalonNotFound) {
			s.logger.Warn("UpdateSettings: salon id=%s not found", req.SalonID)
		} else if errors.Is(err, ErrAccessDenied) {
			s.logger.Warn("UpdateSettings: access denied for user=%s to salon id=%s", req.UserID, req.SalonID)
		} else {
			s.logger.Error("UpdateSettings: failed for salon id=%s: %v", req.SalonID, err)
		}
		return nil, err
	}

	s.logger.Info("UpdateSettings: successfully updated salon id=%s", req.SalonID)
	return models.FromDomainSalon(updated), nil
}
