package domain

import "time"

// UserRole роль пользователя в сессии
type UserRole string

const (
	RoleClient   UserRole = "CLIENT"
	RoleProvider UserRole = "PROVIDER"
	RoleAdmin    UserRole = "ADMIN"
)

// IsValidRole проверяет, что строка является допустимой ролью
func IsValidRole(s string) bool {
	switch UserRole(s) {
	case RoleClient, RoleProvider, RoleAdmin:
		return true
	}
	return false
}

// Session is an explicit authenticated session: login creates it,
// logout destroys it, nothing is kept in ambient global state.
type Session struct {
	Token       string
	UserID      string
	Email       string
	DisplayName string
	Role        UserRole
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// IsExpired returns true if the session has passed its TTL
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
