package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/config"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/storage"
)

type fakeInterviewer struct {
	questions   []string
	generateErr error
	scores      []int
	scored      int
}

func (f *fakeInterviewer) GenerateQuestions(ctx context.Context, techStack []string) ([]string, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return f.questions, nil
}

func (f *fakeInterviewer) EvaluateAnswer(ctx context.Context, question, answer string) int {
	score := 1
	if f.scored < len(f.scores) {
		score = f.scores[f.scored]
	}
	f.scored++
	return score
}

type fakeRecorder struct {
	saved   []storage.CandidateRecord
	average float64
	err     error
}

func (f *fakeRecorder) SaveCandidate(record *storage.CandidateRecord, averageScore float64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, *record)
	f.average = averageScore
	return "candidate_data/Ada_Lovelace_20250101_120000.txt", nil
}

func testCatalog() *config.Catalog {
	return &config.Catalog{
		CountryCodes: []config.CountryCode{
			{Code: "+91", Country: "India"},
			{Code: "+1", Country: "United States"},
		},
		Positions: []string{"Software Engineer", "Data Scientist"},
		TechStack: []config.TechStackCategory{
			{Name: "backend", Title: "Backend", Options: []string{"Python (Django, Flask)"}},
		},
	}
}

func submitOK(t *testing.T, s *Session, in Input) Outcome {
	t.Helper()
	outcome, err := s.Submit(context.Background(), in)
	require.NoError(t, err)
	return outcome
}

func TestFullInterviewFlow(t *testing.T) {
	interviewer := &fakeInterviewer{
		questions: []string{"Q1?", "Q2?", "Q3?", "Q4?", "Q5?"},
		scores:    []int{7, 9, 4, 8, 6},
	}
	recorder := &fakeRecorder{}
	s := New(testCatalog(), interviewer, recorder)

	require.Equal(t, StepFullName, s.Step)
	require.NotEmpty(t, s.ID)

	submitOK(t, s, Input{Text: "Ada Lovelace"})
	assert.Equal(t, StepEmail, s.Step)

	submitOK(t, s, Input{Text: "ada@example.com"})
	assert.Equal(t, StepPhone, s.Step)

	submitOK(t, s, Input{Text: "9876543210", CountryCode: "+91"})
	assert.Equal(t, "+919876543210", s.Record.Phone)

	submitOK(t, s, Input{Text: "2"})
	assert.Equal(t, StepPosition, s.Step)

	submitOK(t, s, Input{Text: "Data Scientist"})
	assert.Equal(t, StepLocation, s.Step)

	submitOK(t, s, Input{Text: "Bengaluru, India"})
	assert.Equal(t, StepTechStack, s.Step)

	outcome := submitOK(t, s, Input{Text: "Python (Django, Flask)"})
	assert.Equal(t, StepQuestions, outcome.Step)
	assert.Equal(t, 5, s.TotalQuestions())

	// Отвечаем на все вопросы по очереди
	for i := 0; i < 4; i++ {
		outcome = submitOK(t, s, Input{Text: "answer"})
		assert.True(t, outcome.Scored)
		assert.False(t, outcome.Completed)
		assert.Equal(t, i+1, len(s.Answers))
	}

	outcome = submitOK(t, s, Input{Text: "final answer"})
	assert.True(t, outcome.Completed)
	assert.Equal(t, StepDone, s.Step)
	assert.InDelta(t, 6.8, outcome.Average, 0.001)
	assert.NotEmpty(t, outcome.SavedPath)
	require.Nil(t, outcome.SaveErr)

	// Анкета сохранена один раз и целиком
	require.Len(t, recorder.saved, 1)
	record := recorder.saved[0]
	assert.Equal(t, "Ada Lovelace", record.FullName)
	assert.Equal(t, "ada@example.com", record.Email)
	assert.Equal(t, "+919876543210", record.Phone)
	assert.Equal(t, 2, record.Experience)
	assert.Equal(t, "Data Scientist", record.DesiredPosition)
	assert.Equal(t, "Bengaluru, India", record.CurrentLocation)
	assert.Equal(t, []string{"Python (Django, Flask)"}, record.TechStack)
	assert.InDelta(t, 6.8, recorder.average, 0.001)

	// Журнал ответов не превышает исходного числа вопросов
	assert.Len(t, s.Answers, 5)
	assert.Len(t, s.Scores, 5)
	assert.Empty(t, s.Questions)
}

func TestValidationGatesDoNotAdvance(t *testing.T) {
	s := New(testCatalog(), &fakeInterviewer{}, &fakeRecorder{})

	_, err := s.Submit(context.Background(), Input{Text: "ada"})
	assert.Error(t, err)
	assert.Equal(t, StepFullName, s.Step)

	submitOK(t, s, Input{Text: "Ada Lovelace"})

	_, err = s.Submit(context.Background(), Input{Text: "not-an-email"})
	assert.Error(t, err)
	assert.Equal(t, StepEmail, s.Step)

	submitOK(t, s, Input{Text: "ada@example.com"})

	_, err = s.Submit(context.Background(), Input{Text: "", CountryCode: "+91"})
	assert.Error(t, err)
	_, err = s.Submit(context.Background(), Input{Text: "123", CountryCode: "+91"})
	assert.Error(t, err)
	_, err = s.Submit(context.Background(), Input{Text: "9876543210", CountryCode: "+999"})
	assert.Error(t, err)
	assert.Equal(t, StepPhone, s.Step)

	submitOK(t, s, Input{Text: "9876543210", CountryCode: "+91"})

	_, err = s.Submit(context.Background(), Input{Text: "-1"})
	assert.Error(t, err)
	_, err = s.Submit(context.Background(), Input{Text: "two"})
	assert.Error(t, err)
	assert.Equal(t, StepExperience, s.Step)
}

func TestPositionByNumber(t *testing.T) {
	s := New(testCatalog(), &fakeInterviewer{}, &fakeRecorder{})
	s.Step = StepPosition

	_, err := s.Submit(context.Background(), Input{Text: "99"})
	assert.Error(t, err)

	submitOK(t, s, Input{Text: "2"})
	assert.Equal(t, "Data Scientist", s.Record.DesiredPosition)
}

func TestTechStackGate(t *testing.T) {
	interviewer := &fakeInterviewer{questions: []string{"Q1?"}}
	s := New(testCatalog(), interviewer, &fakeRecorder{})
	s.Step = StepTechStack

	// Пустой список технологий
	_, err := s.Submit(context.Background(), Input{Text: " , ,, "})
	assert.Error(t, err)
	assert.Equal(t, StepTechStack, s.Step)

	// Сбой генерации вопросов: шаг не двигается, можно повторить
	interviewer.generateErr = errors.New("network down")
	_, err = s.Submit(context.Background(), Input{Text: "Python (Django, Flask)"})
	assert.Error(t, err)
	assert.Equal(t, StepTechStack, s.Step)
	assert.Empty(t, s.Record.TechStack)

	interviewer.generateErr = nil
	outcome := submitOK(t, s, Input{Text: "Python (Django, Flask), Git"})
	assert.Equal(t, StepQuestions, outcome.Step)
	assert.Equal(t, []string{"Python (Django, Flask)", "Git"}, s.Record.TechStack)
}

func TestAverageScore(t *testing.T) {
	s := New(testCatalog(), &fakeInterviewer{}, &fakeRecorder{})

	assert.Zero(t, s.AverageScore())

	s.Scores = []int{7, 9, 4}
	assert.InDelta(t, 6.67, s.AverageScore(), 0.005)
}

func TestEndChatSkipsRecord(t *testing.T) {
	recorder := &fakeRecorder{}
	s := New(testCatalog(), &fakeInterviewer{}, recorder)

	submitOK(t, s, Input{Text: "Ada Lovelace"})
	s.EndChat()

	assert.Equal(t, StepDone, s.Step)
	assert.Empty(t, recorder.saved)

	// Повторный EndChat ничего не меняет
	s.EndChat()
	assert.Equal(t, StepDone, s.Step)

	_, err := s.Submit(context.Background(), Input{Text: "anything"})
	assert.Error(t, err)
}

func TestResetClearsEverything(t *testing.T) {
	s := New(testCatalog(), &fakeInterviewer{questions: []string{"Q1?"}, scores: []int{5}}, &fakeRecorder{})
	oldID := s.ID

	submitOK(t, s, Input{Text: "Ada Lovelace"})
	s.Questions = []string{"Q1?"}
	s.Answers = []string{"a"}
	s.Scores = []int{5}
	s.EndChat()

	s.Reset()

	assert.Equal(t, StepFullName, s.Step)
	assert.NotEqual(t, oldID, s.ID)
	assert.Equal(t, storage.CandidateRecord{}, s.Record)
	assert.Empty(t, s.Questions)
	assert.Empty(t, s.Answers)
	assert.Empty(t, s.Scores)
}

func TestSaveFailureKeepsSession(t *testing.T) {
	interviewer := &fakeInterviewer{questions: []string{"Q1?"}, scores: []int{8}}
	recorder := &fakeRecorder{err: errors.New("disk full")}
	s := New(testCatalog(), interviewer, recorder)
	s.Step = StepTechStack

	submitOK(t, s, Input{Text: "Git"})
	outcome := submitOK(t, s, Input{Text: "an answer"})

	assert.True(t, outcome.Completed)
	assert.Error(t, outcome.SaveErr)
	assert.Empty(t, outcome.SavedPath)
	assert.InDelta(t, 8, outcome.Average, 0.001)

	// Данные в памяти не потеряны
	assert.Equal(t, []string{"an answer"}, s.Answers)
	assert.Equal(t, StepDone, s.Step)
}

func TestEmptyAnswerRejected(t *testing.T) {
	interviewer := &fakeInterviewer{questions: []string{"Q1?"}}
	s := New(testCatalog(), interviewer, &fakeRecorder{})
	s.Step = StepTechStack
	submitOK(t, s, Input{Text: "Git"})

	_, err := s.Submit(context.Background(), Input{Text: "   "})
	assert.Error(t, err)
	assert.Len(t, s.Questions, 1)
	assert.Empty(t, s.Answers)
}
