package domain

import "time"

// Review is a client rating tied to a completed booking
type Review struct {
	ID         string
	SalonID    string
	BookingID  string
	ClientID   string
	ClientName string
	Rating     int // [MinRating, MaxRating]
	Comment    string
	IsVerified bool
	CreatedAt  time.Time
}

// IsValidRating проверяет оценку на допустимый диапазон
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
