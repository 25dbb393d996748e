package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/domain"
	salonRepo "github.com/glameo/glameo-backend/internal/infra/storage/salon"
	"github.com/glameo/glameo-backend/internal/service/catalog/models"
	"github.com/glameo/glameo-backend/pkg/ptr"
)

type fakeSalonRepo struct {
	salons map[string]*domain.Salon
}

func newFakeSalonRepo() *fakeSalonRepo {
	return &fakeSalonRepo{salons: make(map[string]*domain.Salon)}
}

func (f *fakeSalonRepo) Create(_ context.Context, salon *domain.Salon) error {
	if _, ok := f.salons[salon.ID]; ok {
		return nil // идемпотентная вставка
	}
	copied := *salon
	f.salons[salon.ID] = &copied
	return nil
}

func (f *fakeSalonRepo) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	salon, ok := f.salons[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	copied := *salon
	return &copied, nil
}

func (f *fakeSalonRepo) List(_ context.Context, category *domain.SalonCategory) ([]*domain.Salon, error) {
	var result []*domain.Salon
	for _, salon := range f.salons {
		if category != nil && salon.Category != *category {
			continue
		}
		copied := *salon
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeSalonRepo) UpdateSettings(_ context.Context, id string, update domain.SalonSettingsUpdate) error {
	salon, ok := f.salons[id]
	if !ok {
		return salonRepo.ErrSalonNotFound
	}
	if update.Name != nil {
		salon.Name = *update.Name
	}
	if update.Description != nil {
		salon.Description = *update.Description
	}
	if update.Address != nil {
		salon.Address = *update.Address
	}
	if update.Specialties != nil {
		salon.Specialties = update.Specialties
	}
	if update.CancellationPolicy != nil {
		salon.CancellationPolicy = *update.CancellationPolicy
	}
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService() (*Service, *fakeSalonRepo) {
	repo := newFakeSalonRepo()
	return NewService(repo, passthroughTxManager{}, noopLogger{}), repo
}

func TestInitialize_SeedsCatalog(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Initialize(context.Background()))

	atelier, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "L’Atelier Coiffure Montréal", atelier.Name)
	assert.Equal(t, "p1", atelier.OwnerID)
	assert.Equal(t, domain.CategoryCoiffure, atelier.Category)
	assert.Len(t, atelier.Services, 4)
	assert.Equal(t, 24, atelier.CancellationPolicy.FreeUntilHours)
	assert.Equal(t, 50, atelier.CancellationPolicy.LateCancelFeePercent)

	barbier, err := repo.GetByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Le Barbier du Mile-End", barbier.Name)
	assert.Len(t, barbier.Services, 1)
	assert.Equal(t, "s2", barbier.Services[0].ID)
	assert.Equal(t, 30, barbier.CancellationPolicy.LateCancelFeePercent)
	assert.Equal(t, 100, barbier.CancellationPolicy.NoShowFeePercent)
}

func TestInitialize_Idempotent(t *testing.T) {
	svc, repo := newTestService()

	require.NoError(t, svc.Initialize(context.Background()))

	// Меняем настройку и сидим повторно - данные не перезаписываются
	repo.salons["1"].Name = "Renamed"
	require.NoError(t, svc.Initialize(context.Background()))

	assert.Equal(t, "Renamed", repo.salons["1"].Name)
	assert.Len(t, repo.salons, 2)
}

func TestList_FiltersByCategory(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.Initialize(context.Background()))

	all, err := svc.List(context.Background(), &models.ListSalonsRequest{})
	require.NoError(t, err)
	assert.Len(t, all.Salons, 2)

	barbiers, err := svc.List(context.Background(), &models.ListSalonsRequest{Category: ptr.Ptr("Barbier")})
	require.NoError(t, err)
	require.Len(t, barbiers.Salons, 1)
	assert.Equal(t, "2", barbiers.Salons[0].ID)
}

func TestList_InvalidCategory(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.List(context.Background(), &models.ListSalonsRequest{Category: ptr.Ptr("Plomberie")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestUpdateSettings_OwnerOnly(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		UserID:  "c1",
		SalonID: "1",
		Name:    ptr.Ptr("Hacked"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateSettings_PartialPolicyUpdate(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.Initialize(context.Background()))

	resp, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		UserID:         "p1",
		SalonID:        "1",
		FreeUntilHours: ptr.Ptr(48),
	})
	require.NoError(t, err)

	// Непереданные поля политики сохраняются
	assert.Equal(t, 48, resp.CancellationPolicy.FreeUntilHours)
	assert.Equal(t, 50, resp.CancellationPolicy.LateCancelFeePercent)
	assert.Equal(t, 100, resp.CancellationPolicy.NoShowFeePercent)
}

func TestUpdateSettings_ValidatesPercentRange(t *testing.T) {
	svc, _ := newTestService()
	require.NoError(t, svc.Initialize(context.Background()))

	_, err := svc.UpdateSettings(context.Background(), &models.UpdateSettingsRequest{
		UserID:               "p1",
		SalonID:              "1",
		LateCancelFeePercent: ptr.Ptr(150),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
