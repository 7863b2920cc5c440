package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/config"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/metrics"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/prompts"
	"github.com/tamaraiselva/TalentScout-Hiring-Chatbot/internal/session"
)

type RateLimiter struct {
	requests map[int64][]time.Time
	mutex    sync.RWMutex
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[int64][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) IsAllowed(userID int64) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	if requests, exists := rl.requests[userID]; exists {
		var valid []time.Time
		for _, t := range requests {
			if now.Sub(t) < rl.window {
				valid = append(valid, t)
			}
		}
		rl.requests[userID] = valid
	}

	if len(rl.requests[userID]) >= rl.limit {
		return false
	}

	rl.requests[userID] = append(rl.requests[userID], now)
	return true
}

// Archive дает доступ к списку сохраненных анкет (команда /records)
type Archive interface {
	ListRecords() ([]string, error)
}

type Handler struct {
	bot           *Bot
	catalog       *config.Catalog
	interviewer   session.QuestionService
	recorder      session.Recorder
	metrics       *metrics.Metrics
	adminChatID   int64
	sessions      map[int64]*session.Session
	locks         map[int64]*sync.Mutex
	sessionsMutex sync.RWMutex
	rateLimiter   *RateLimiter
}

func NewHandler(bot *Bot, catalog *config.Catalog, interviewer session.QuestionService, recorder session.Recorder, m *metrics.Metrics, adminChatID int64) *Handler {
	h := &Handler{
		bot:         bot,
		catalog:     catalog,
		interviewer: interviewer,
		recorder:    recorder,
		metrics:     m,
		adminChatID: adminChatID,
		sessions:    make(map[int64]*session.Session),
		locks:       make(map[int64]*sync.Mutex),
		rateLimiter: NewRateLimiter(10, time.Minute),
	}
	h.startSessionCleanup()
	return h
}

func (h *Handler) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			h.cleanupInactiveSessions()
		}
	}()
}

func (h *Handler) cleanupInactiveSessions() {
	cutoff := time.Now().Add(-24 * time.Hour)

	h.sessionsMutex.RLock()
	chatIDs := make([]int64, 0, len(h.sessions))
	for chatID := range h.sessions {
		chatIDs = append(chatIDs, chatID)
	}
	h.sessionsMutex.RUnlock()

	// LastActivity пишется под мьютексом чата, поэтому читаем его там же
	for _, chatID := range chatIDs {
		lock := h.chatLock(chatID)
		lock.Lock()
		h.sessionsMutex.Lock()
		if sess, ok := h.sessions[chatID]; ok && sess.LastActivity.Before(cutoff) {
			delete(h.sessions, chatID)
			delete(h.locks, chatID)
		}
		h.sessionsMutex.Unlock()
		lock.Unlock()
	}
}

// chatLock возвращает мьютекс чата, создавая его при первом обращении
func (h *Handler) chatLock(chatID int64) *sync.Mutex {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	lock, ok := h.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[chatID] = lock
	}
	return lock
}

// HandleUpdate обрабатывает одно обновление от Telegram
func (h *Handler) HandleUpdate(update Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if !h.rateLimiter.IsAllowed(userID) {
		h.bot.SendMessage(chatID, "⏳ Too many messages. Please wait a minute.")
		return
	}

	// Обновления одного чата обрабатываются строго по очереди:
	// состояние сессии меняется только под мьютексом чата
	lock := h.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	if strings.HasPrefix(text, "/") {
		h.handleCommand(chatID, text)
		return
	}
	h.handleUserInput(chatID, text)
}

// handleCommand обрабатывает команды бота
func (h *Handler) handleCommand(chatID int64, command string) {
	switch command {
	case "/start":
		h.handleStartCommand(chatID)
	case "/help":
		h.handleHelpCommand(chatID)
	case "/status":
		h.handleStatusCommand(chatID)
	case "/endchat":
		h.handleEndChatCommand(chatID)
	case "/restart":
		h.handleRestartCommand(chatID)
	case "/records":
		h.handleRecordsCommand(chatID)
	default:
		h.bot.SendMessage(chatID, "Unknown command. Use /help to see the list of commands.")
	}
}

// handleStartCommand начинает новую анкету или возобновляет текущую
func (h *Handler) handleStartCommand(chatID int64) {
	sess := h.lookupSession(chatID)
	if sess != nil && sess.Step < session.StepDone {
		h.bot.SendMessage(chatID, "Your interview is already in progress. Use /status to check it or /restart to start from scratch.")
		return
	}

	if sess != nil {
		sess.Reset()
	} else {
		sess = h.createSession(chatID)
	}
	h.metrics.IncrementSessionsStarted()

	welcomeText := fmt.Sprintf(`👋 *Hello! I'm the TalentScout Hiring Assistant.*

I will walk you through a short questionnaire and then a technical mini-interview:
• %d basic questions about you
• %d technical questions generated for your tech stack
• each answer is scored from 1 to 10

🆔 *Session ID:* `+"`%s`"+`

Use /endchat at any time to finish early.
Let's start with some basic information.`,
		int(session.StepQuestions), prompts.QuestionsCount, sess.ID)

	h.bot.SendMessage(chatID, welcomeText)
	h.bot.SendMessage(chatID, h.promptForStep(sess))
}

// handleHelpCommand показывает справку
func (h *Handler) handleHelpCommand(chatID int64) {
	helpText := `🤖 *TalentScout Hiring Assistant*

*Commands:*
/start - Start the interview
/status - Check your progress
/endchat - End the chat at any step
/restart - Discard everything and start over
/help - Show this message

*How it works:*
1. Answer a few questions about yourself (name, email, phone, experience, position, location)
2. Send your tech stack, separated by commas
3. Answer 5 short technical questions
4. Each answer is scored from 1 to 10; at the end you get the average score`

	h.bot.SendMessage(chatID, helpText)
}

// handleStatusCommand показывает прогресс анкеты
func (h *Handler) handleStatusCommand(chatID int64) {
	sess := h.lookupSession(chatID)
	if sess == nil {
		h.bot.SendMessage(chatID, "The interview has not started yet. Use /start to begin.")
		return
	}

	switch sess.Step {
	case session.StepDone:
		h.bot.SendFormattedMessage(chatID, "✅ The interview is over.\n🆔 Session ID: `%s`\n\n_Use /restart to start a new one._", sess.ID)
	case session.StepQuestions:
		h.bot.SendFormattedMessage(chatID, "📊 *Interview progress*\n\n🆔 Session ID: `%s`\n❓ Question: %d/%d",
			sess.ID, sess.QuestionNumber(), sess.TotalQuestions())
	default:
		h.bot.SendFormattedMessage(chatID, "📊 *Interview progress*\n\n🆔 Session ID: `%s`\n📋 Step: %d/%d (%s)",
			sess.ID, int(sess.Step)+1, int(session.StepDone)+1, sess.Step)
	}
}

// handleEndChatCommand досрочно завершает анкету
func (h *Handler) handleEndChatCommand(chatID int64) {
	sess := h.lookupSession(chatID)
	if sess == nil || sess.Step == session.StepDone {
		h.bot.SendMessage(chatID, "There is nothing to end. Use /start to begin an interview.")
		return
	}

	sess.EndChat()
	h.bot.SendMessage(chatID, "🛑 Chat ended. Thank you!\n\nUse /restart to start over.")
}

// handleRestartCommand полностью сбрасывает анкету
func (h *Handler) handleRestartCommand(chatID int64) {
	sess := h.lookupSession(chatID)
	if sess == nil {
		sess = h.createSession(chatID)
	} else {
		sess.Reset()
	}
	h.metrics.IncrementSessionsStarted()

	h.bot.SendMessage(chatID, "🔄 The interview has been reset. Let's start from the beginning.")
	h.bot.SendMessage(chatID, h.promptForStep(sess))
}

// handleRecordsCommand показывает рекрутеру список сохраненных анкет
func (h *Handler) handleRecordsCommand(chatID int64) {
	if h.adminChatID == 0 || chatID != h.adminChatID {
		h.bot.SendMessage(chatID, "Unknown command. Use /help to see the list of commands.")
		return
	}

	archive, ok := h.recorder.(Archive)
	if !ok {
		h.bot.SendMessage(chatID, "The candidate archive is not available.")
		return
	}

	records, err := archive.ListRecords()
	if err != nil {
		h.bot.SendMessage(chatID, "⚠️ Failed to read the candidate archive: "+err.Error())
		return
	}
	if len(records) == 0 {
		h.bot.SendMessage(chatID, "No saved candidate records yet.")
		return
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🗂 *Saved candidate records: %d*\n\n", len(records)))
	for _, name := range records {
		b.WriteString(fmt.Sprintf("• `%s`\n", name))
	}
	h.bot.SendMessage(chatID, b.String())
}

// Улучшенная валидация пользовательского ввода
func (h *Handler) validateUserInput(text string) error {
	if len(text) > 4000 {
		return fmt.Errorf("the message is too long (4000 characters max)")
	}

	// Проверка на спам из повторяющихся символов
	if len(text) > 10 && strings.Count(text, text[:1]) > len(text)*8/10 {
		return fmt.Errorf("the message contains too many repeated characters")
	}

	return nil
}

// handleUserInput прогоняет ввод пользователя через машину шагов
func (h *Handler) handleUserInput(chatID int64, text string) {
	sess := h.lookupSession(chatID)
	if sess == nil {
		h.bot.SendMessage(chatID, "Use /start to begin the interview or /help to see what I can do.")
		return
	}

	if err := h.validateUserInput(text); err != nil {
		h.bot.SendMessage(chatID, "❌ "+capitalize(err.Error()))
		return
	}

	input := session.Input{Text: text}
	if sess.Step == session.StepPhone {
		input = parsePhoneInput(text)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	outcome, err := sess.Submit(ctx, input)
	if err != nil {
		h.bot.SendMessage(chatID, "❌ "+capitalize(err.Error()))
		return
	}

	h.reportOutcome(chatID, sess, outcome)
}

// reportOutcome отправляет пользователю результат перехода
func (h *Handler) reportOutcome(chatID int64, sess *session.Session, outcome session.Outcome) {
	if outcome.Scored {
		h.bot.SendFormattedMessage(chatID,
			"Score based on your answer is: %d out of 10 (10 being the maximum score and 1 being the minimum score).",
			outcome.Score)
	}

	if outcome.Completed {
		h.reportCompletion(chatID, outcome)
		return
	}

	if outcome.Step == session.StepQuestions && !outcome.Scored {
		// Только что сгенерировали вопросы
		h.bot.SendFormattedMessage(chatID, "✅ I prepared %d questions for your tech stack. Let's begin!", sess.TotalQuestions())
	}

	h.bot.SendMessage(chatID, h.promptForStep(sess))
}

// reportCompletion завершает интервью: средний балл и судьба записи
func (h *Handler) reportCompletion(chatID int64, outcome session.Outcome) {
	h.metrics.IncrementSessionsCompleted()

	h.bot.SendFormattedMessage(chatID, "🎉 *Average Score of your performance is: %.2f out of 10*", outcome.Average)

	if outcome.SaveErr != nil {
		h.bot.SendMessage(chatID, "⚠️ Failed to save your details. Your answers are not lost, please contact the recruiter.")
	} else {
		h.metrics.IncrementRecordsSaved()
		h.bot.SendFormattedMessage(chatID, "💾 Your results were saved: `%s`", outcome.SavedPath)
	}

	h.bot.SendMessage(chatID, "Thanks, you have completed the test. Come again, because *consistency is the key of success!*\n\nUse /restart to start over.")
}

// promptForStep возвращает подсказку для текущего шага анкеты
func (h *Handler) promptForStep(sess *session.Session) string {
	switch sess.Step {
	case session.StepFullName:
		return "Enter your *full name*."
	case session.StepEmail:
		return "Enter your *email address*."
	case session.StepPhone:
		var b strings.Builder
		b.WriteString("Enter your *phone number* as `<country code> <number>`, for example `+91 9876543210`.\n\nSupported country codes:\n")
		for _, cc := range h.catalog.CountryCodes {
			b.WriteString(fmt.Sprintf("• %s — %s\n", cc.Code, cc.Country))
		}
		return b.String()
	case session.StepExperience:
		return "How many *years of experience* do you have? Send a whole number."
	case session.StepPosition:
		var b strings.Builder
		b.WriteString("Select your *desired position* (send its number):\n")
		for i, position := range h.catalog.Positions {
			b.WriteString(fmt.Sprintf("%d. %s\n", i+1, position))
		}
		return b.String()
	case session.StepLocation:
		return "Where are you *currently located*? Send city and country."
	case session.StepTechStack:
		var b strings.Builder
		b.WriteString("Send your *tech stack*, separated by commas. For example:\n`Python (Django, Flask), PostgreSQL, Git`\n")
		for _, category := range h.catalog.TechStack {
			b.WriteString(fmt.Sprintf("\n*%s:* %s\n", category.Title, strings.Join(category.Options, ", ")))
		}
		return b.String()
	case session.StepQuestions:
		question, ok := sess.CurrentQuestion()
		if !ok {
			return "You have answered all the questions."
		}
		return fmt.Sprintf("❓ *Question %d/%d:*\n\n%s", sess.QuestionNumber(), sess.TotalQuestions(), question)
	case session.StepDone:
		return "Thank you for participating! Use /restart to start over."
	}
	return ""
}

// parsePhoneInput разбирает ввод формата "<код страны> <номер>"
func parsePhoneInput(text string) session.Input {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "+") {
		// Код не указан: машина шагов отклонит пустой код с подсказкой
		return session.Input{Text: strings.Join(fields, "")}
	}
	return session.Input{
		CountryCode: fields[0],
		Text:        strings.Join(fields[1:], ""),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Вспомогательные методы работы с сессиями

func (h *Handler) lookupSession(chatID int64) *session.Session {
	h.sessionsMutex.RLock()
	defer h.sessionsMutex.RUnlock()
	return h.sessions[chatID]
}

func (h *Handler) createSession(chatID int64) *session.Session {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	if existing, ok := h.sessions[chatID]; ok {
		return existing
	}

	sess := session.New(h.catalog, h.interviewer, h.recorder)
	h.sessions[chatID] = sess
	return sess
}
