package models

import (
	"github.com/glameo/glameo-backend/internal/domain"
)

// Request модели

// ListSalonsRequest запрос на получение списка салонов
type ListSalonsRequest struct {
	Category *string `json:"category,omitempty"` // Фильтр по категории (опционально)
}

// UpdateSettingsRequest запрос на обновление настроек салона
type UpdateSettingsRequest struct {
	UserID               string   `json:"userId"`
	SalonID              string   `json:"salonId"`
	Name                 *string  `json:"name,omitempty"`
	Description          *string  `json:"description,omitempty"`
	Address              *string  `json:"address,omitempty"`
	Specialties          []string `json:"specialties,omitempty"`
	FreeUntilHours       *int     `json:"freeUntilHours,omitempty"`
	LateCancelFeePercent *int     `json:"lateCancelFeePercent,omitempty"`
	NoShowFeePercent     *int     `json:"noShowFeePercent,omitempty"`
}

// Response модели

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"durationMinutes"`
	BufferMinutes   int     `json:"bufferMinutes"`
	Price           float64 `json:"price"`
}

// CancellationPolicyResponse политика отмены салона
type CancellationPolicyResponse struct {
	FreeUntilHours       int `json:"freeUntilHours"`
	LateCancelFeePercent int `json:"lateCancelFeePercent"`
	NoShowFeePercent     int `json:"noShowFeePercent"`
}

// SalonResponse салон с услугами и политикой отмены
type SalonResponse struct {
	ID                 string                     `json:"id"`
	OwnerID            string                     `json:"ownerId"`
	Name               string                     `json:"name"`
	Category           string                     `json:"category"`
	Description        string                     `json:"description"`
	Address            string                     `json:"address"`
	ImageURL           string                     `json:"imageUrl"`
	GalleryImages      []string                   `json:"galleryImages"`
	Specialties        []string                   `json:"specialties"`
	IsVerified         bool                       `json:"isVerified"`
	Rating             float64                    `json:"rating"`
	ReviewCount        int                        `json:"reviewCount"`
	Services           []ServiceResponse          `json:"services"`
	CancellationPolicy CancellationPolicyResponse `json:"cancellationPolicy"`
}

// SalonListResponse список салонов
type SalonListResponse struct {
	Salons []SalonResponse `json:"salons"`
}

// FromDomainSalon конвертирует доменную модель салона в response
func FromDomainSalon(salon *domain.Salon) *SalonResponse {
	services := make([]ServiceResponse, 0, len(salon.Services))
	for _, svc := range salon.Services {
		services = append(services, ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Description:     svc.Description,
			DurationMinutes: svc.DurationMinutes,
			BufferMinutes:   svc.BufferMinutes,
			Price:           svc.Price,
		})
	}

	return &SalonResponse{
		ID:            salon.ID,
		OwnerID:       salon.OwnerID,
		Name:          salon.Name,
		Category:      string(salon.Category),
		Description:   salon.Description,
		Address:       salon.Address,
		ImageURL:      salon.ImageURL,
		GalleryImages: salon.GalleryImages,
		Specialties:   salon.Specialties,
		IsVerified:    salon.IsVerified,
		Rating:        salon.Rating,
		ReviewCount:   salon.ReviewCount,
		Services:      services,
		CancellationPolicy: CancellationPolicyResponse{
			FreeUntilHours:       salon.CancellationPolicy.FreeUntilHours,
			LateCancelFeePercent: salon.CancellationPolicy.LateCancelFeePercent,
			NoShowFeePercent:     salon.CancellationPolicy.NoShowFeePercent,
		},
	}
}

// FromDomainSalonList конвертирует список доменных моделей в response
func FromDomainSalonList(salons []*domain.Salon) *SalonListResponse {
	result := make([]SalonResponse, 0, len(salons))
	for _, salon := range salons {
		result = append(result, *FromDomainSalon(salon))
	}
	return &SalonListResponse{Salons: result}
}

// ToDomainSettingsUpdate конвертирует запрос в доменную модель частичного обновления
func (r *UpdateSettingsRequest) ToDomainSettingsUpdate(current domain.CancellationPolicy) domain.SalonSettingsUpdate {
	update := domain.SalonSettingsUpdate{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Specialties: r.Specialties,
	}

	// Политика отмены обновляется целиком: непереданные поля берём из текущей
	if r.FreeUntilHours != nil || r.LateCancelFeePercent != nil || r.NoShowFeePercent != nil {
		policy := current
		if r.FreeUntilHours != nil {
			policy.FreeUntilHours = *r.FreeUntilHours
		}
		if r.LateCancelFeePercent != nil {
			policy.LateCancelFeePercent = *r.LateCancelFeePercent
		}
		if r.NoShowFeePercent != nil {
			policy.NoShowFeePercent = *r.NoShowFeePercent
		}
		update.CancellationPolicy = &policy
	}

	return update
}
