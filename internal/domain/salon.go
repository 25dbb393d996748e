package domain

import "time"

// SalonCategory категория салона в каталоге
type SalonCategory string

const (
	CategoryCoiffure SalonCategory = "Coiffure"
	CategoryBarbier  SalonCategory = "Barbier"
	CategoryOngles   SalonCategory = "Ongles"
	CategorySpa      SalonCategory = "Spa"
	CategorySoin     SalonCategory = "Soin"
)

// ValidCategories список допустимых категорий
var ValidCategories = []SalonCategory{
	CategoryCoiffure,
	CategoryBarbier,
	CategoryOngles,
	CategorySpa,
	CategorySoin,
}

// IsValidCategory проверяет, что строка является допустимой категорией
func IsValidCategory(s string) bool {
	for _, valid := range ValidCategories {
		if SalonCategory(s) == valid {
			return true
		}
	}
	return false
}

// Salon represents a service-provider business entity in the catalog
type Salon struct {
	ID            string
	OwnerID       string
	Name          string
	Description   string
	Address       string
	Rating        float64 // [0, 5]
	ReviewCount   int
	ImageURL      string
	GalleryImages []string
	Specialties   []string
	IsVerified    bool
	Category      SalonCategory

	Services           []Service
	CancellationPolicy CancellationPolicy

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceByID ищет услугу салона по идентификатору
func (s *Salon) ServiceByID(serviceID string) (*Service, bool) {
	for i := range s.Services {
		if s.Services[i].ID == serviceID {
			return &s.Services[i], true
		}
	}
	return nil, false
}

// IsBookable returns true if the salon has at least one service to book
func (s *Salon) IsBookable() bool {
	return len(s.Services) > 0
}

// Service represents a priced, timed offering sold by a salon
type Service struct {
	ID              string
	SalonID         string
	Name            string
	Description     string
	DurationMinutes int // duration > 0
	BufferMinutes   int // cleanup/prep time after the service
	Price           float64
}

// CancellationPolicy per-salon fee rules for late cancellation and no-show
type CancellationPolicy struct {
	FreeUntilHours       int // окно бесплатной отмены до начала записи
	LateCancelFeePercent int
	NoShowFeePercent     int
}

// FeePercentAt returns the fee percentage to disclose for cancelling at
// the given moment relative to the appointment time:
// 0 while the free window is open, lateCancelFeePercent inside the window,
// noShowFeePercent once the appointment time has passed.
func (p CancellationPolicy) FeePercentAt(scheduledAt, now time.Time) int {
	if !now.Before(scheduledAt) {
		return p.NoShowFeePercent
	}
	freeDeadline := scheduledAt.Add(-time.Duration(p.FreeUntilHours) * time.Hour)
	if now.Before(freeDeadline) {
		return 0
	}
	return p.LateCancelFeePercent
}

// FeeAmount вычисляет сумму сбора по проценту от стоимости бронирования
func (p CancellationPolicy) FeeAmount(totalPrice float64, scheduledAt, now time.Time) float64 {
	return totalPrice * float64(p.FeePercentAt(scheduledAt, now)) / 100
}

// SalonSettingsUpdate частичное обновление настроек салона владельцем
// Обновляются только переданные поля
type SalonSettingsUpdate struct {
	Name               *string
	Description        *string
	Address            *string
	Specialties        []string
	CancellationPolicy *CancellationPolicy
}
