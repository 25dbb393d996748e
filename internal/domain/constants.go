package domain

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	MaxSalonRating = 5.0

	MaxMessageLength = 2000
	MaxCommentLength = 1000

	MaxDisplayNameLength = 100
)

// Quebec sales tax rates applied on receipts
const (
	TPSRate = 0.05
	TVQRate = 0.09975
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
