package ai_search

import (
	"github.com/glameo/glameo-backend/internal/integrations/aiservice"
)

// unavailableMessage сообщение клиенту при недоступности модели
const unavailableMessage = "L'expert IA est temporairement indisponible."

// SearchRequest запрос текстового экспертного поиска
type SearchRequest struct {
	UserID   string `json:"userId"`
	Query    string `json:"query"`
	Location string `json:"location,omitempty"`
}

// SearchResponse результат экспертного поиска
// При недоступности модели Unavailable=true и поля данных пустые,
// чтобы клиентский маппинг не ломался
type SearchResponse struct {
	Unavailable bool               `json:"unavailable"`
	Message     string             `json:"message,omitempty"`
	Summary     string             `json:"summary"`
	Trends      []aiservice.Trend  `json:"trends"`
	Advice      []string           `json:"advice"`
	Sources     []aiservice.Source `json:"sources"`
}

// EditImageRequest запрос правки изображения прически
type EditImageRequest struct {
	UserID      string `json:"userId"`
	ImageB64    string `json:"imageBase64"`
	MimeType    string `json:"mimeType"`
	Instruction string `json:"instruction"`
}

// EditImageResponse результат правки изображения
type EditImageResponse struct {
	ImageB64 string `json:"imageBase64"` // PNG в base64
}

// unavailableResult структурированный пустой результат вместо ошибки
func unavailableResult() *SearchResponse {
	return &SearchResponse{
		Unavailable: true,
		Message:     unavailableMessage,
		Summary:     "",
		Trends:      []aiservice.Trend{},
		Advice:      []string{},
		Sources:     []aiservice.Source{},
	}
}
