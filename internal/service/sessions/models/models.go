package models

import (
	"time"

	"github.com/glameo/glameo-backend/internal/domain"
)

// Request модели

// LoginRequest запрос на вход
// Аутентификация демонстрационная: сервис доверяет заявленной роли
// и идентификатору, паролей нет
type LoginRequest struct {
	UserID      string `json:"userId,omitempty"` // Опционально, иначе генерируется
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Role        string `json:"role"`
}

// Response модели

// SessionResponse активная сессия
type SessionResponse struct {
	Token       string    `json:"token"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// FromDomainSession конвертирует доменную модель сессии в response
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		Token:       s.Token,
		UserID:      s.UserID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        string(s.Role),
		ExpiresAt:   s.ExpiresAt,
	}
}
