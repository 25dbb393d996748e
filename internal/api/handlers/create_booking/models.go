package create_booking

import (
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
	confirmBooking "github.com/glameo/glameo-backend/internal/usecase/confirm_booking"
)

// CreateBookingRequest HTTP запрос на создание записи
type CreateBookingRequest struct {
	SalonID        string    `json:"salonId"`
	ServiceID      string    `json:"serviceId"`
	ScheduledAt    time.Time `json:"scheduledAt"`
	PromoCode      string    `json:"promoCode,omitempty"`
	PolicyAccepted bool      `json:"policyAccepted"`
}

// CreateBookingResponse HTTP ответ с созданной записью
type CreateBookingResponse struct {
	ID               string    `json:"id"`
	SalonID          string    `json:"salonId"`
	ServiceID        string    `json:"serviceId"`
	ClientID         string    `json:"clientId"`
	ScheduledAt      time.Time `json:"scheduledAt"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"paymentStatus"`
	PaymentReference string    `json:"paymentReference"`
	ServiceName      string    `json:"serviceName"`
	ServicePrice     float64   `json:"servicePrice"`
	PromoApplied     bool      `json:"promoApplied"`
	TotalPrice       float64   `json:"totalPrice"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(session *domain.Session) *confirmBooking.Request {
	return &confirmBooking.Request{
		UserID:         session.UserID,
		ClientName:     session.DisplayName,
		SalonID:        r.SalonID,
		ServiceID:      r.ServiceID,
		ScheduledAt:    r.ScheduledAt,
		PromoCode:      r.PromoCode,
		PolicyAccepted: r.PolicyAccepted,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *confirmBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:               resp.ID,
		SalonID:          resp.SalonID,
		ServiceID:        resp.ServiceID,
		ClientID:         resp.ClientID,
		ScheduledAt:      resp.ScheduledAt,
		Status:           resp.Status,
		PaymentStatus:    resp.PaymentStatus,
		PaymentReference: resp.PaymentReference,
		ServiceName:      resp.ServiceName,
		ServicePrice:     resp.ServicePrice,
		PromoApplied:     resp.PromoApplied,
		TotalPrice:       resp.TotalPrice,
		CreatedAt:        resp.CreatedAt,
	}
}
