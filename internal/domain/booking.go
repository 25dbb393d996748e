package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking represents a scheduled reservation of a service at a salon
type Booking struct {
	ID         string
	SalonID    string
	ServiceID  string
	ClientID   string
	ClientName string

	ScheduledAt   time.Time
	Status        BookingStatus
	TotalPrice    float64
	PaymentStatus PaymentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	PromoApplied bool

	ReviewID    *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// allowedTransitions таблица разрешенных переходов статусов
// pending -> confirmed | cancelled
// confirmed -> completed | cancelled
// completed и cancelled - терминальные
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo returns true if the transition from the current status is legal
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range allowedTransitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeReviewed returns true if a review can be submitted for the booking
func (b *Booking) CanBeReviewed() bool {
	return b.Status == StatusCompleted && b.ReviewID == nil
}

// ValidStatuses список всех допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus проверяет, что строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, valid := range ValidStatuses {
		if BookingStatus(s) == valid {
			return true
		}
	}
	return false
}

// SalonBookingsFilter фильтр для получения бронирований салона
type SalonBookingsFilter struct {
	SalonID          string
	StartDate        *time.Time     // Начало периода (опционально)
	EndDate          *time.Time     // Конец периода (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool           // Включать ли отмененные бронирования
}
