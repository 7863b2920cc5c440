package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Client абстрагирует провайдера генеративной модели
type Client interface {
	// GenerateContent отправляет промпт и возвращает текст ответа
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close освобождает ресурсы клиента
	Close() error
}

// GeminiClient реализует Client поверх Google Gemini
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiClient создает клиент Gemini
func NewGeminiClient(ctx context.Context, apiKey, model string, temperature float64) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента Gemini: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       model,
		temperature: float32(temperature),
	}, nil
}

// GenerateContent отправляет промпт в Gemini и возвращает текст ответа
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("ошибка генерации контента: %w", err)
	}

	return extractTextFromResponse(resp)
}

// Close освобождает ресурсы клиента
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Unavailable — заглушка на случай, когда ключ API не получен.
// Каждый вызов возвращает ошибку, и вызывающие деградируют по общей
// политике внешнего сервиса: пустой список вопросов, минимальный балл.
type Unavailable struct {
	reason error
}

// NewUnavailable создает заглушку с причиной недоступности
func NewUnavailable(reason error) *Unavailable {
	return &Unavailable{reason: reason}
}

func (u *Unavailable) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("клиент Gemini недоступен: %w", u.reason)
}

func (u *Unavailable) Close() error { return nil }

// extractTextFromResponse извлекает текст из ответа Gemini API
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("пустой ответ: нет candidates")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("пустой ответ: нет content")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("пустой ответ: нет текстовых частей")
	}

	return strings.Join(parts, ""), nil
}
