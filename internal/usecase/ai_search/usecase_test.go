package ai_search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glameo/glameo-backend/internal/integrations/aiservice"
)

type fakeBookingRepo struct {
	counts map[string]int
}

func (f *fakeBookingRepo) CountByClientID(_ context.Context, clientID string) (int, error) {
	return f.counts[clientID], nil
}

type fakeAIClient struct {
	searchResult *aiservice.SearchResult
	searchErr    error
	editResult   string
	editErr      error
}

func (f *fakeAIClient) SmartSearch(_ context.Context, _, _ string) (*aiservice.SearchResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeAIClient) EditImage(_ context.Context, _, _, _ string) (string, error) {
	if f.editErr != nil {
		return "", f.editErr
	}
	return f.editResult, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSearch_GatedOnFirstBooking(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{counts: map[string]int{}},
		&fakeAIClient{},
		noopLogger{},
	)

	_, err := uc.Search(context.Background(), &SearchRequest{UserID: "c1", Query: "balayage"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSearch_ReturnsModelResult(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{counts: map[string]int{"c1": 2}},
		&fakeAIClient{searchResult: &aiservice.SearchResult{
			Summary: "Le balayage domine la saison.",
			Trends:  []aiservice.Trend{{Name: "Peach Fuzz", Description: "Reflets subtils", Vibe: "doux"}},
			Advice:  []string{"Hydratez vos pointes."},
			Sources: []aiservice.Source{{Title: "Glameo Blog", URI: "https://glameo.ca/blog"}},
		}},
		noopLogger{},
	)

	resp, err := uc.Search(context.Background(), &SearchRequest{UserID: "c1", Query: "balayage", Location: "Montréal"})
	require.NoError(t, err)

	assert.False(t, resp.Unavailable)
	assert.Equal(t, "Le balayage domine la saison.", resp.Summary)
	require.Len(t, resp.Trends, 1)
	assert.Equal(t, "Peach Fuzz", resp.Trends[0].Name)
}

func TestSearch_UnavailableFallback(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{counts: map[string]int{"c1": 1}},
		&fakeAIClient{searchErr: errors.New("upstream 500")},
		noopLogger{},
	)

	resp, err := uc.Search(context.Background(), &SearchRequest{UserID: "c1", Query: "coloration"})
	// Недоступность модели - не ошибка HTTP-уровня
	require.NoError(t, err)

	assert.True(t, resp.Unavailable)
	assert.Equal(t, "L'expert IA est temporairement indisponible.", resp.Message)
	assert.NotNil(t, resp.Trends)
	assert.Empty(t, resp.Trends)
	assert.NotNil(t, resp.Advice)
	assert.NotNil(t, resp.Sources)
}

func TestSearch_EmptyQuery(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{"c1": 1}}, &fakeAIClient{}, noopLogger{})

	_, err := uc.Search(context.Background(), &SearchRequest{UserID: "c1", Query: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEditImage_ReturnsEditedImage(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{counts: map[string]int{}},
		&fakeAIClient{editResult: "ZWRpdGVk"},
		noopLogger{},
	)

	resp, err := uc.EditImage(context.Background(), &EditImageRequest{
		UserID:      "c1",
		ImageB64:    "aW1hZ2U=",
		Instruction: "couleur cuivrée",
	})
	require.NoError(t, err)
	assert.Equal(t, "ZWRpdGVk", resp.ImageB64)
}

func TestEditImage_FailurePropagates(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{counts: map[string]int{}},
		&fakeAIClient{editErr: aiservice.ErrNoImageGenerated},
		noopLogger{},
	)

	// В отличие от текстового поиска ошибка модели не маскируется
	_, err := uc.EditImage(context.Background(), &EditImageRequest{
		UserID:      "c1",
		ImageB64:    "aW1hZ2U=",
		Instruction: "frange",
	})
	assert.ErrorIs(t, err, ErrImageEditFailed)
}

func TestEditImage_Validation(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{counts: map[string]int{}}, &fakeAIClient{}, noopLogger{})

	_, err := uc.EditImage(context.Background(), &EditImageRequest{UserID: "c1", Instruction: "frange"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.EditImage(context.Background(), &EditImageRequest{UserID: "c1", ImageB64: "aW1hZ2U="})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
