package planner

import (
	"testing"
	"time"

	"wanderlust/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedSession() *models.Session {
	s := models.NewSession("s1", time.Now())
	s.State = models.StateCollecting
	s.Started = true
	s.Pending = Fields()
	return s
}

func TestCollectZipsAnswersInOrder(t *testing.T) {
	s := startedSession()
	answers := []string{"Paris", "moderate", "sightseeing and food", "5", "mid-range hotel"}

	for i, a := range answers {
		field, ok := Collect(s, a)
		require.True(t, ok)
		assert.Equal(t, Fields()[i], field)
	}

	assert.Empty(t, s.Pending)
	assert.Equal(t, models.Answers{
		models.FieldDestination:   "Paris",
		models.FieldBudget:        "moderate",
		models.FieldActivities:    "sightseeing and food",
		models.FieldDuration:      "5",
		models.FieldAccommodation: "mid-range hotel",
	}, s.Answers)
}

func TestCollectAcceptsAnythingVerbatim(t *testing.T) {
	s := startedSession()

	_, ok := Collect(s, "")
	require.True(t, ok)
	_, ok = Collect(s, "  about 2k EUR, flexible ")
	require.True(t, ok)

	assert.Equal(t, "", s.Answers[models.FieldDestination])
	assert.Equal(t, "  about 2k EUR, flexible ", s.Answers[models.FieldBudget])
}

func TestCollectNoopWhenNothingPending(t *testing.T) {
	s := models.NewSession("s1", time.Now())

	field, ok := Collect(s, "Paris")

	assert.False(t, ok)
	assert.Empty(t, field)
	assert.Empty(t, s.Answers)
}
