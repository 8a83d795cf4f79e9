package ai

import (
	"strings"
	"testing"

	"wanderlust/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildItineraryPromptEmbedsPreferences(t *testing.T) {
	p := BuildItineraryPrompt(models.Answers{
		models.FieldDestination:   "Paris",
		models.FieldBudget:        "moderate",
		models.FieldActivities:    "mix of famous and offbeat",
		models.FieldDuration:      "5",
		models.FieldAccommodation: "mid-range hotel",
	}, "Louvre tips")

	for _, want := range []string{
		"expert travel planner",
		"- Destination: Paris",
		"- Duration: 5 days",
		"- Budget Description: 'moderate'",
		"- Preferred Activities Description: 'mix of famous and offbeat'",
		"- Preferred Accommodation Description: 'mid-range hotel'",
		"'Moderate' usually implies a balance of value, comfort, and experiences.",
		"A 'mix' should include popular landmarks and hidden gems.",
		"Do not blindly copy search results.",
		"day-by-day",
		"Engaging Tone",
		"must not exceed the stated budget",
		"Louvre tips",
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildItineraryPromptDefaults(t *testing.T) {
	p := BuildItineraryPrompt(models.Answers{models.FieldDestination: "Oslo"}, "")

	assert.Contains(t, p, "- Destination: Oslo")
	assert.Equal(t, 4, strings.Count(p, notSpecified))
	assert.Contains(t, p, NoSearchResults)
}
