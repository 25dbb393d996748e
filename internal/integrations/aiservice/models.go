package aiservice

// Wire-модели generateContent API

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	Tools            []tool            `json:"tools,omitempty"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type tool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type webSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// searchPayload структурированный JSON, который модель обязана вернуть
type searchPayload struct {
	Summary string  `json:"summary"`
	Trends  []Trend `json:"trends"`
	Advice  []string `json:"advice"`
}

// Модели результата для вызывающего кода

// Trend одна тенденция из AI-подборки
type Trend struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Vibe        string `json:"vibe"`
}

// Source источник-цитата из поисковой выдачи модели
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SearchResult результат текстового AI-поиска
type SearchResult struct {
	Summary string   `json:"summary"`
	Trends  []Trend  `json:"trends"`
	Advice  []string `json:"advice"`
	Sources []Source `json:"sources"`
}
