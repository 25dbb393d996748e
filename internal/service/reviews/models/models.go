package models

import (
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
)

// Request модели

// SubmitReviewRequest запрос на отправку отзыва
type SubmitReviewRequest struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	BookingID string `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

// Response модели

// ReviewResponse отзыв о салоне
type ReviewResponse struct {
	ID         string    `json:"id"`
	SalonID    string    `json:"salonId"`
	BookingID  string    `json:"bookingId"`
	ClientID   string    `json:"clientId"`
	ClientName string    `json:"clientName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse отзывы салона
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomainReview конвертирует доменную модель отзыва в response
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		SalonID:    r.SalonID,
		BookingID:  r.BookingID,
		ClientID:   r.ClientID,
		ClientName: r.ClientName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		IsVerified: r.IsVerified,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список отзывов в response
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, *FromDomainReview(r))
	}
	return &ReviewListResponse{Reviews: result}
}
