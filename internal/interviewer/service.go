package interviewer

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/llm"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/metrics"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/prompts"
)

const (
	minScore = 1
	maxScore = 10
)

// Service представляет сервис генерации и оценки вопросов
type Service struct {
	llm     llm.Client
	metrics *metrics.Metrics
}

// New создает новый сервис интервьюера
func New(client llm.Client, m *metrics.Metrics) *Service {
	return &Service{
		llm:     client,
		metrics: m,
	}
}

// GenerateQuestions запрашивает у модели вопросы по тех-стеку.
// Один запрос без ретраев: при любом сбое возвращается пустой список,
// ошибка нужна вызывающему только для предупреждения пользователю.
func (s *Service) GenerateQuestions(ctx context.Context, techStack []string) ([]string, error) {
	prompt := prompts.QuestionsPrompt(techStack)

	response, err := s.llm.GenerateContent(ctx, prompt)
	s.metrics.IncrementAPICall(err == nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации вопросов: %w", err)
	}

	questions := splitQuestions(response)
	s.metrics.AddQuestionsGenerated(len(questions))
	return questions, nil
}

// EvaluateAnswer оценивает ответ кандидата по шкале [1,10].
// Сбой модели или нечисловой ответ дают минимальный балл: одиночный
// плохой вызов не должен останавливать кандидата посреди интервью.
func (s *Service) EvaluateAnswer(ctx context.Context, question, answer string) int {
	prompt := prompts.EvaluationPrompt(question, answer)

	response, err := s.llm.GenerateContent(ctx, prompt)
	s.metrics.IncrementAPICall(err == nil)
	if err != nil {
		log.Printf("Оценка ответа не получена, выставляю минимальный балл: %v", err)
		return minScore
	}

	s.metrics.IncrementAnswersScored()
	return parseScore(response)
}

// splitQuestions разбивает ответ модели на вопросы построчно
func splitQuestions(response string) []string {
	var questions []string
	for _, line := range strings.Split(response, "\n") {
		question := strings.TrimSpace(line)
		if question != "" {
			questions = append(questions, question)
		}
	}
	return questions
}

// parseScore извлекает ведущее число из ответа модели.
// Модель иногда отвечает в форме "8/10" — берем часть до слэша.
func parseScore(response string) int {
	raw := strings.TrimSpace(response)
	raw = strings.TrimSpace(strings.SplitN(raw, "/", 2)[0])

	score, err := strconv.Atoi(raw)
	if err != nil {
		return minScore
	}

	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
