package aiservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, "test-key", "text-model", "image-model", 5*time.Second, nopLogger{})
	return client, srv
}

func TestSmartSearch_ParsesStructuredResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "text-model")

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{
						// Модель обернула JSON в markdown - клиент обязан его срезать
						"text": "```json\n{\"summary\":\"Le balayage domine\",\"trends\":[{\"name\":\"Peach Fuzz\",\"description\":\"Reflets subtils\",\"vibe\":\"doux\"}],\"advice\":[\"Hydratez vos cheveux\"]}\n```",
					}},
				},
				"groundingMetadata": map[string]interface{}{
					"groundingChunks": []map[string]interface{}{
						{"web": map[string]interface{}{"title": "Tendances 2025", "uri": "https://example.com/t"}},
						{"web": map[string]interface{}{"title": "sans uri", "uri": ""}},
					},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	result, err := client.SmartSearch(context.Background(), "balayage", "Montréal")
	require.NoError(t, err)

	assert.Equal(t, "Le balayage domine", result.Summary)
	require.Len(t, result.Trends, 1)
	assert.Equal(t, "Peach Fuzz", result.Trends[0].Name)
	assert.Equal(t, []string{"Hydratez vos cheveux"}, result.Advice)
	// Источники без URI отбрасываются
	require.Len(t, result.Sources, 1)
	assert.Equal(t, "https://example.com/t", result.Sources[0].URI)
}

func TestSmartSearch_InvalidJSONFromModel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": "pas du json"}},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	_, err := client.SmartSearch(context.Background(), "balayage", "")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestSmartSearch_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.SmartSearch(context.Background(), "balayage", "")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestEditImage_ReturnsInlineData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "image-model")

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": "Voici votre nouvelle coupe"},
						{"inlineData": map[string]interface{}{"mimeType": "image/png", "data": "bW9kaWZpZWQ="}},
					},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	data, err := client.EditImage(context.Background(), "b3JpZ2luYWw=", "image/png", "cheveux roses")
	require.NoError(t, err)
	assert.Equal(t, "bW9kaWZpZWQ=", data)
}

func TestEditImage_NoImageInResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{{"text": "désolé"}},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})

	_, err := client.EditImage(context.Background(), "b3JpZ2luYWw=", "image/png", "cheveux roses")
	assert.ErrorIs(t, err, ErrNoImageGenerated)
}
