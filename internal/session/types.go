package session

import (
	"context"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/storage"
)

// Step представляет шаг анкеты. Переходы только вперед.
type Step int

const (
	StepFullName Step = iota
	StepEmail
	StepPhone
	StepExperience
	StepPosition
	StepLocation
	StepTechStack
	StepQuestions
	StepDone
)

// String возвращает человекочитаемое имя шага
func (s Step) String() string {
	switch s {
	case StepFullName:
		return "full_name"
	case StepEmail:
		return "email"
	case StepPhone:
		return "phone"
	case StepExperience:
		return "experience"
	case StepPosition:
		return "desired_position"
	case StepLocation:
		return "current_location"
	case StepTechStack:
		return "tech_stack"
	case StepQuestions:
		return "questions"
	case StepDone:
		return "done"
	}
	return "unknown"
}

// QuestionService генерирует вопросы по тех-стеку и оценивает ответы
type QuestionService interface {
	GenerateQuestions(ctx context.Context, techStack []string) ([]string, error)
	EvaluateAnswer(ctx context.Context, question, answer string) int
}

// Recorder сохраняет завершенную анкету
type Recorder interface {
	SaveCandidate(record *storage.CandidateRecord, averageScore float64) (string, error)
}

// Input представляет один ввод пользователя.
// CountryCode заполняется только на шаге телефона.
type Input struct {
	Text        string
	CountryCode string
}

// Outcome описывает результат успешной обработки одного ввода
type Outcome struct {
	Step      Step    // шаг после перехода
	Scored    bool    // ответ на вопрос был оценен
	Score     int     // балл за только что оцененный ответ
	Completed bool    // очередь вопросов исчерпана этим вводом
	Average   float64 // средний балл, заполняется при Completed
	SavedPath string  // путь к записи анкеты
	SaveErr   error   // сбой записи: warning, данные сессии не теряются
}
