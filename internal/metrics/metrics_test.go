package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrementSessionsStarted()
	m.IncrementSessionsStarted()
	m.IncrementSessionsCompleted()
	m.AddQuestionsGenerated(5)
	m.IncrementAnswersScored()
	m.IncrementRecordsSaved()
	m.IncrementAPICall(true)
	m.IncrementAPICall(false)

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(2), snapshot.SessionsStarted)
	assert.Equal(t, int64(1), snapshot.SessionsCompleted)
	assert.Equal(t, int64(5), snapshot.QuestionsGenerated)
	assert.Equal(t, int64(1), snapshot.AnswersScored)
	assert.Equal(t, int64(1), snapshot.RecordsSaved)
	assert.Equal(t, int64(2), snapshot.APICallsTotal)
	assert.Equal(t, int64(1), snapshot.APICallsSuccessful)
	assert.False(t, snapshot.LastUpdateTime.IsZero())
}
