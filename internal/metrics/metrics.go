package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu                 sync.RWMutex
	SessionsStarted    int64
	SessionsCompleted  int64
	QuestionsGenerated int64
	AnswersScored      int64
	RecordsSaved       int64
	APICallsTotal      int64
	APICallsSuccessful int64
	LastUpdateTime     time.Time
}

func NewMetrics() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementSessionsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementSessionsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SessionsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) AddQuestionsGenerated(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.QuestionsGenerated += int64(n)
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAnswersScored() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AnswersScored++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementRecordsSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RecordsSaved++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementAPICall(success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.APICallsTotal++
	if success {
		m.APICallsSuccessful++
	}
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		SessionsStarted:    m.SessionsStarted,
		SessionsCompleted:  m.SessionsCompleted,
		QuestionsGenerated: m.QuestionsGenerated,
		AnswersScored:      m.AnswersScored,
		RecordsSaved:       m.RecordsSaved,
		APICallsTotal:      m.APICallsTotal,
		APICallsSuccessful: m.APICallsSuccessful,
		LastUpdateTime:     m.LastUpdateTime,
	}
}
