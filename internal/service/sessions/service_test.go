package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	sessionRepo "github.com/glameo/glameo-backend/internal/infra/storage/session"
	"github.com/glameo/glameo-backend/internal/service/sessions/models"
)

var testNow = time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

type movableTime struct{ now time.Time }

func (m *movableTime) Now() time.Time { return m.now }

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	copied := *s
	f.sessions[s.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	if _, ok := f.sessions[token]; !ok {
		return sessionRepo.ErrSessionNotFound
	}
	delete(f.sessions, token)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for token, s := range f.sessions {
		if s.IsExpired(now) {
			delete(f.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeSessionRepo, *movableTime) {
	repo := &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
	clock := &movableTime{now: testNow}
	return NewService(repo, 24*time.Hour, clock, noopLogger{}), repo, clock
}

func TestLogin_CreatesSession(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		UserID: "p1",
		Email:  "owner@atelier.ca",
		Role:   "PROVIDER",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "p1", resp.UserID)
	assert.Equal(t, "owner", resp.DisplayName) // локальная часть email
	assert.Equal(t, testNow.Add(24*time.Hour), resp.ExpiresAt)
	assert.Len(t, repo.sessions, 1)
}

func TestLogin_GeneratesUserID(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "marie@example.com",
		Role:  "CLIENT",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.UserID)
	assert.Contains(t, resp.UserID, "u-")
}

func TestLogin_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "", Role: "CLIENT"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "a@b.c", Role: "SUPERUSER"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolve_RoundTrip(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		UserID: "c1", Email: "marie@example.com", Role: "CLIENT",
	})
	require.NoError(t, err)

	session, err := svc.Resolve(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "c1", session.UserID)
	assert.Equal(t, domain.RoleClient, session.Role)
}

func TestResolve_ExpiredSession(t *testing.T) {
	svc, _, clock := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		UserID: "c1", Email: "marie@example.com", Role: "CLIENT",
	})
	require.NoError(t, err)

	clock.now = testNow.Add(25 * time.Hour)

	_, err = svc.Resolve(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestLogout_DestroysSession(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		UserID: "c1", Email: "marie@example.com", Role: "CLIENT",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	_, err = svc.Resolve(context.Background(), resp.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Повторный logout - громкая ошибка
	assert.ErrorIs(t, svc.Logout(context.Background(), resp.Token), ErrSessionNotFound)
}

func TestCleanupExpired(t *testing.T) {
	svc, repo, clock := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{UserID: "c1", Email: "a@b.c", Role: "CLIENT"})
	require.NoError(t, err)

	clock.now = testNow.Add(30 * time.Hour)
	_, err = svc.Login(context.Background(), &models.LoginRequest{UserID: "c2", Email: "d@e.f", Role: "CLIENT"})
	require.NoError(t, err)

	deleted, err := svc.CleanupExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Len(t, repo.sessions, 1)
}
