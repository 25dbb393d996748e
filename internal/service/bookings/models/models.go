package models

import (
	"errors"
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID string  `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// GetSalonBookingsRequest запрос на получение бронирований салона
type GetSalonBookingsRequest struct {
	UserID           string     `json:"userId"`
	SalonID          string     `json:"salonId"`
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включать отменённые
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID    string `json:"userId"`
	BookingID string `json:"bookingId"`
}

// Response модели

// BookingResponse бронирование
type BookingResponse struct {
	ID            string     `json:"id"`
	SalonID       string     `json:"salonId"`
	ServiceID     string     `json:"serviceId"`
	ClientID      string     `json:"clientId"`
	ClientName    string     `json:"clientName"`
	ScheduledAt   time.Time  `json:"scheduledAt"`
	Status        string     `json:"status"`
	TotalPrice    float64    `json:"totalPrice"`
	PaymentStatus string     `json:"paymentStatus"`
	ServiceName   string     `json:"serviceName"`
	ServicePrice  float64    `json:"servicePrice"`
	PromoApplied  bool       `json:"promoApplied"`
	ReviewID      *string    `json:"reviewId,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancellationQuoteResponse расчёт сбора за отмену на текущий момент
// Сбор информационный - реального списания не происходит
type CancellationQuoteResponse struct {
	BookingID  string  `json:"bookingId"`
	FeePercent int     `json:"feePercent"`
	FeeAmount  float64 `json:"feeAmount"`
	FreeUntil  string  `json:"freeUntil"`
}

// CancelBookingResponse результат отмены бронирования
type CancelBookingResponse struct {
	Booking    BookingResponse `json:"booking"`
	FeePercent int             `json:"feePercent"`
	FeeAmount  float64         `json:"feeAmount"`
}

// FromDomainBooking конвертирует доменную модель бронирования в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		SalonID:       b.SalonID,
		ServiceID:     b.ServiceID,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		ScheduledAt:   b.ScheduledAt,
		Status:        string(b.Status),
		TotalPrice:    b.TotalPrice,
		PaymentStatus: string(b.PaymentStatus),
		ServiceName:   b.ServiceName,
		ServicePrice:  b.ServicePrice,
		PromoApplied:  b.PromoApplied,
		ReviewID:      b.ReviewID,
		CancelledAt:   b.CancelledAt,
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в доменный статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetSalonBookingsRequest) ToDomainFilter() (domain.SalonBookingsFilter, error) {
	filter := domain.SalonBookingsFilter{
		SalonID:          r.SalonID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.SalonBookingsFilter{}, err
		}
		filter.Status = &status
	}
	return filter, nil
}
