package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/config"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/storage"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/validate"
)

// Session представляет одну сессию анкеты кандидата.
// Сессия не синхронизирована: вызывающий обязан подавать вводы
// последовательно (telegram.Handler держит мьютекс чата).
type Session struct {
	ID           string
	Step         Step
	Record       storage.CandidateRecord
	Questions    []string // очередь вопросов, потребляется с головы
	Answers      []string
	Scores       []int
	StartedAt    time.Time
	LastActivity time.Time

	catalog     *config.Catalog
	interviewer QuestionService
	recorder    Recorder
}

// New создает сессию на первом шаге анкеты
func New(catalog *config.Catalog, interviewer QuestionService, recorder Recorder) *Session {
	return &Session{
		ID:           uuid.New().String(),
		Step:         StepFullName,
		StartedAt:    time.Now(),
		LastActivity: time.Now(),
		catalog:      catalog,
		interviewer:  interviewer,
		recorder:     recorder,
	}
}

// Submit обрабатывает один ввод пользователя: проверяет гейт текущего
// шага и либо переходит вперед, либо возвращает ошибку с сообщением
// для повторного запроса. Шаг при ошибке не меняется.
func (s *Session) Submit(ctx context.Context, in Input) (Outcome, error) {
	s.LastActivity = time.Now()

	switch s.Step {
	case StepFullName:
		return s.submitFullName(in.Text)
	case StepEmail:
		return s.submitEmail(in.Text)
	case StepPhone:
		return s.submitPhone(in.Text, in.CountryCode)
	case StepExperience:
		return s.submitExperience(in.Text)
	case StepPosition:
		return s.submitPosition(in.Text)
	case StepLocation:
		return s.submitLocation(in.Text)
	case StepTechStack:
		return s.submitTechStack(ctx, in.Text)
	case StepQuestions:
		return s.submitAnswer(ctx, in.Text)
	case StepDone:
		return Outcome{Step: s.Step}, fmt.Errorf("the interview is over, send /restart to start over")
	}

	return Outcome{Step: s.Step}, fmt.Errorf("unknown step %d", s.Step)
}

// EndChat досрочно завершает сессию без записи анкеты
func (s *Session) EndChat() {
	if s.Step < StepDone {
		s.Step = StepDone
	}
}

// Reset полностью сбрасывает состояние и возвращает на первый шаг
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.Step = StepFullName
	s.Record = storage.CandidateRecord{}
	s.Questions = nil
	s.Answers = nil
	s.Scores = nil
	s.StartedAt = time.Now()
	s.LastActivity = time.Now()
}

// CurrentQuestion возвращает вопрос в голове очереди
func (s *Session) CurrentQuestion() (string, bool) {
	if len(s.Questions) == 0 {
		return "", false
	}
	return s.Questions[0], true
}

// QuestionNumber возвращает номер текущего вопроса (с 1)
func (s *Session) QuestionNumber() int {
	return len(s.Answers) + 1
}

// TotalQuestions возвращает исходное число сгенерированных вопросов
func (s *Session) TotalQuestions() int {
	return len(s.Answers) + len(s.Questions)
}

// AverageScore возвращает средний балл, 0 если ответов не было
func (s *Session) AverageScore() float64 {
	if len(s.Scores) == 0 {
		return 0
	}

	sum := 0
	for _, score := range s.Scores {
		sum += score
	}
	return float64(sum) / float64(len(s.Scores))
}

func (s *Session) submitFullName(text string) (Outcome, error) {
	fullName := strings.TrimSpace(text)
	if !validate.IsValidFullName(fullName) {
		return Outcome{Step: s.Step}, fmt.Errorf("please enter a valid full name (start with a capital letter, no numbers or special characters)")
	}

	s.Record.FullName = fullName
	s.Step = StepEmail
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitEmail(text string) (Outcome, error) {
	email := strings.TrimSpace(text)
	if !validate.IsValidEmail(email) {
		return Outcome{Step: s.Step}, fmt.Errorf("please enter a valid email address in the format username@example.com")
	}

	s.Record.Email = email
	s.Step = StepPhone
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitPhone(text, countryCode string) (Outcome, error) {
	phone := strings.TrimSpace(text)
	if phone == "" {
		return Outcome{Step: s.Step}, fmt.Errorf("please enter your phone number")
	}
	if !s.catalog.KnownCountryCode(countryCode) {
		return Outcome{Step: s.Step}, fmt.Errorf("please choose a country code from the list")
	}
	if !validate.IsValidPhoneNumber(phone, countryCode) {
		return Outcome{Step: s.Step}, fmt.Errorf("please enter a valid phone number")
	}

	s.Record.Phone = countryCode + phone
	s.Step = StepExperience
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitExperience(text string) (Outcome, error) {
	years, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || years < 0 {
		return Outcome{Step: s.Step}, fmt.Errorf("please enter your experience as a whole non-negative number of years")
	}

	s.Record.Experience = years
	s.Step = StepPosition
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitPosition(text string) (Outcome, error) {
	choice := strings.TrimSpace(text)

	// Принимаем либо номер пункта, либо точное название из списка
	position := ""
	if number, err := strconv.Atoi(choice); err == nil {
		if p, ok := s.catalog.Position(number); ok {
			position = p
		}
	} else if s.catalog.KnownPosition(choice) {
		position = choice
	}

	if position == "" {
		return Outcome{Step: s.Step}, fmt.Errorf("please choose a desired position from the list (send its number)")
	}

	s.Record.DesiredPosition = position
	s.Step = StepLocation
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitLocation(text string) (Outcome, error) {
	s.Record.CurrentLocation = strings.TrimSpace(text)
	s.Step = StepTechStack
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitTechStack(ctx context.Context, text string) (Outcome, error) {
	techStack := splitTechStack(text)
	if len(techStack) == 0 {
		return Outcome{Step: s.Step}, fmt.Errorf("please provide a valid tech stack, separated by commas")
	}

	questions, err := s.interviewer.GenerateQuestions(ctx, techStack)
	if err != nil || len(questions) == 0 {
		// Внешний сервис недоступен: гейт не пройден, предлагаем повторить
		return Outcome{Step: s.Step}, fmt.Errorf("could not generate interview questions right now, please send your tech stack again")
	}

	s.Record.TechStack = techStack
	s.Questions = questions
	s.Step = StepQuestions
	return Outcome{Step: s.Step}, nil
}

func (s *Session) submitAnswer(ctx context.Context, text string) (Outcome, error) {
	question, ok := s.CurrentQuestion()
	if !ok {
		// Очередь пуста — завершаем без оценки (недостижимо при
		// нормальной работе: гейт тех-стека требует хотя бы один вопрос)
		return s.complete()
	}

	answer := strings.TrimSpace(text)
	if answer == "" {
		return Outcome{Step: s.Step}, fmt.Errorf("please give an answer")
	}

	score := s.interviewer.EvaluateAnswer(ctx, question, answer)
	s.Answers = append(s.Answers, answer)
	s.Scores = append(s.Scores, score)
	s.Questions = s.Questions[1:]

	if len(s.Questions) > 0 {
		return Outcome{Step: s.Step, Scored: true, Score: score}, nil
	}

	outcome, err := s.complete()
	outcome.Scored = true
	outcome.Score = score
	return outcome, err
}

// complete подсчитывает средний балл, сохраняет анкету и закрывает сессию.
// Сбой записи не теряет данные в памяти и не считается ошибкой перехода.
func (s *Session) complete() (Outcome, error) {
	average := s.AverageScore()
	s.Step = StepDone

	outcome := Outcome{
		Step:      s.Step,
		Completed: true,
		Average:   average,
	}

	path, err := s.recorder.SaveCandidate(&s.Record, average)
	if err != nil {
		outcome.SaveErr = err
	} else {
		outcome.SavedPath = path
	}

	return outcome, nil
}

// splitTechStack разбирает список технологий через запятую или с новой строки
func splitTechStack(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	var techStack []string
	for _, field := range fields {
		tech := strings.TrimSpace(field)
		if tech != "" {
			techStack = append(techStack, tech)
		}
	}
	return techStack
}
