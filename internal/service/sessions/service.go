package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glameo/glameo-backend/internal/domain"
	sessionRepo "github.com/glameo/glameo-backend/internal/infra/storage/session"
	"github.com/glameo/glameo-backend/internal/service/sessions/models"
)

// Service сервис явного жизненного цикла сессий
// Login создает сессию, Logout удаляет, Resolve проверяет токен и TTL
type Service struct {
	sessionRepo  SessionRepository
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(sessionRepo SessionRepository, ttl time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		ttl:          ttl,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login создает новую сессию с uuid-токеном и TTL из конфигурации
// Пароли не проверяются - демонстрационная аутентификация доверяет
// заявленной роли и идентификатору
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !domain.IsValidRole(req.Role) {
		s.logger.Warn("Login: invalid role=%s for email=%s", req.Role, email)
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}

	userID := req.UserID
	if userID == "" {
		userID = "u-" + uuid.NewString()
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		// Имя по умолчанию - локальная часть email
		displayName = strings.SplitN(email, "@", 2)[0]
	}
	if len(displayName) > domain.MaxDisplayNameLength {
		return nil, fmt.Errorf("%w: displayName is too long", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	session := &domain.Session{
		Token:       uuid.NewString(),
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		Role:        domain.UserRole(req.Role),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: session created for user=%s role=%s", userID, req.Role)
	return models.FromDomainSession(session), nil
}

// Logout удаляет сессию по токену
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("Logout: session not found")
			return ErrSessionNotFound
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session destroyed")
	return nil
}

// Resolve возвращает сессию по токену, отклоняя истекшие
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Resolve: repository error: %v", err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	if session.IsExpired(s.timeProvider.Now()) {
		s.logger.Warn("Resolve: session expired for user=%s", session.UserID)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// CleanupExpired удаляет истекшие сессии, возвращает число удаленных
func (s *Service) CleanupExpired(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("CleanupExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: CleanupExpired - repository error: %v", ErrInternal, err)
	}

	if deleted > 0 {
		s.logger.Info("CleanupExpired: removed %d expired sessions", deleted)
	}
	return deleted, nil
}
