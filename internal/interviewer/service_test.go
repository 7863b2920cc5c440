package interviewer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/metrics"
)

// fakeLLM возвращает заранее заданный ответ или ошибку
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) Close() error { return nil }

func TestGenerateQuestions(t *testing.T) {
	response := "What is a primary key?\n\n  What does CSS stand for?  \nName a Git branching model.\n"
	svc := New(&fakeLLM{response: response}, metrics.NewMetrics())

	questions, err := svc.GenerateQuestions(context.Background(), []string{"PostgreSQL", "CSS", "Git"})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"What is a primary key?",
		"What does CSS stand for?",
		"Name a Git branching model.",
	}, questions)
}

func TestGenerateQuestionsFailure(t *testing.T) {
	svc := New(&fakeLLM{err: errors.New("network down")}, metrics.NewMetrics())

	questions, err := svc.GenerateQuestions(context.Background(), []string{"Go (Golang)"})
	assert.Error(t, err)
	assert.Empty(t, questions)
}

func TestEvaluateAnswer(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     int
	}{
		{"plain number", "8", nil, 8},
		{"slash suffix", "7/10", nil, 7},
		{"spaces around", "  9 / 10 ", nil, 9},
		{"above range clamped", "15", nil, 10},
		{"below range clamped", "0", nil, 1},
		{"non numeric", "excellent answer", nil, 1},
		{"empty response", "", nil, 1},
		{"api failure", "", errors.New("timeout"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&fakeLLM{response: tt.response, err: tt.err}, metrics.NewMetrics())
			got := svc.EvaluateAnswer(context.Background(), "What is Go?", "A language")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateAnswerCountsAPICalls(t *testing.T) {
	m := metrics.NewMetrics()
	svc := New(&fakeLLM{response: "6"}, m)

	svc.EvaluateAnswer(context.Background(), "q", "a")

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(1), snapshot.APICallsTotal)
	assert.Equal(t, int64(1), snapshot.APICallsSuccessful)
	assert.Equal(t, int64(1), snapshot.AnswersScored)
}
