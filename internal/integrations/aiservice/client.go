package aiservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент генеративной модели (generateContent API)
type Client struct {
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр AI-клиента
func NewClient(baseURL, apiKey, textModel, imageModel string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		textModel:  textModel,
		imageModel: imageModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SmartSearch запрашивает у модели структурированную подборку: резюме,
// тенденции и советы по запросу клиента, плюс источники из поисковой выдачи
func (c *Client) SmartSearch(ctx context.Context, query string, location string) (*SearchResult, error) {
	locationContext := ""
	if location != "" {
		locationContext = fmt.Sprintf(" située à %s", location)
	}

	prompt := fmt.Sprintf(`Tu es l'expert beauté de la plateforme Glameo. Analyse cette tendance ou recherche : %q pour une personne%s.
Réponds exclusivement en FRANÇAIS.
Prends en compte les spécificités locales (climat, tendances de la région).
Structure ta réponse pour aider un client à choisir son prochain style.
Réponds avec un objet JSON {"summary": string, "trends": [{"name": string, "description": string, "vibe": string}], "advice": [string]}.`,
		query, locationContext)

	reqBody := generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
		},
	}

	resp, err := c.generateContent(ctx, c.textModel, &reqBody)
	if err != nil {
		return nil, err
	}

	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: no candidates in response", ErrInvalidResponse)
	}

	rawText := ""
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			rawText = p.Text
			break
		}
	}

	var payload searchPayload
	if err := json.Unmarshal([]byte(cleanJSONMarkdown(rawText)), &payload); err != nil {
		return nil, fmt.Errorf("%w: failed to parse model output: %v", ErrInvalidResponse, err)
	}

	result := &SearchResult{
		Summary: payload.Summary,
		Trends:  payload.Trends,
		Advice:  payload.Advice,
		Sources: make([]Source, 0),
	}
	if payload.Trends == nil {
		result.Trends = []Trend{}
	}
	if payload.Advice == nil {
		result.Advice = []string{}
	}

	// Собираем источники-цитаты, пропуская записи без URI
	if gm := resp.Candidates[0].GroundingMetadata; gm != nil {
		for _, chunk := range gm.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				result.Sources = append(result.Sources, Source{
					Title: chunk.Web.Title,
					URI:   chunk.Web.URI,
				})
			}
		}
	}

	return result, nil
}

// EditImage отправляет фото (base64) и текстовую инструкцию, возвращает
// отредактированное изображение в base64 (PNG)
// Отсутствие изображения в ответе - ошибка ErrNoImageGenerated
func (c *Client) EditImage(ctx context.Context, imageB64 string, mimeType string, instruction string) (string, error) {
	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: imageB64}},
				{Text: fmt.Sprintf("Apply the following change to this hairstyle: %s. Return only the modified image.", instruction)},
			},
		}},
	}

	resp, err := c.generateContent(ctx, c.imageModel, &reqBody)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return p.InlineData.Data, nil
			}
		}
	}

	return "", ErrNoImageGenerated
}

func (c *Client) generateContent(ctx context.Context, model string, reqBody *generateContentRequest) (*generateContentResponse, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// cleanJSONMarkdown срезает markdown-ограждения ```json ... ```,
// которые модели иногда добавляют вокруг JSON
func cleanJSONMarkdown(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
