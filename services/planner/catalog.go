package planner

import (
	"strings"

	"wanderlust/models"

	"github.com/samber/lo"
)

// Fixed assistant messages.
const (
	WelcomeMessage         = "👋 Welcome! Type `START` to begin planning your travel itinerary."
	RestartMessage         = "✅ Restarted! Type `START` to begin again."
	InvalidStartMessage    = "❗ Please type `START` to begin the travel itinerary process."
	CompleteMessage        = "Itinerary generated. Please click 'Start Over' to plan a new trip."
	UnexpectedStateMessage = "Something went wrong. Please type START to begin."

	startGreeting = "🚀 Great! Let's plan your trip. "

	// StartCommand is the text that starts a session awaiting start.
	StartCommand = "start"
)

type fieldPrompt struct {
	field  models.Field
	prompt string
}

// catalog is the canonical question order.
var catalog = []fieldPrompt{
	{models.FieldDestination, "🌍 Where would you like to travel?"},
	{models.FieldBudget, "💰 What is your budget for this trip?"},
	{models.FieldActivities, "🤸 What kind of activities do you prefer? (e.g., adventure, relaxation, sightseeing)"},
	{models.FieldDuration, "⏳ How many days do you plan to stay?"},
	{models.FieldAccommodation, "🏨 Do you prefer hotels, hostels, or Airbnbs?"},
}

// Fields returns a fresh copy of the canonical field order.
func Fields() []models.Field {
	return lo.Map(catalog, func(s fieldPrompt, _ int) models.Field { return s.field })
}

// Prompt returns the question asked for f, or "" for unknown fields.
func Prompt(f models.Field) string {
	entry, ok := lo.Find(catalog, func(s fieldPrompt) bool { return s.field == f })
	if !ok {
		return ""
	}
	return entry.prompt
}

// StartConfirmation is emitted when a session starts.
func StartConfirmation() string {
	return startGreeting + catalog[0].prompt
}

// IsSuffix reports whether pending is a suffix of the canonical order.
func IsSuffix(pending []models.Field) bool {
	if len(pending) > len(catalog) {
		return false
	}
	offset := len(catalog) - len(pending)
	for i, f := range pending {
		if catalog[offset+i].field != f {
			return false
		}
	}
	return true
}

// IsStartCommand matches the start command case-insensitively.
func IsStartCommand(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), StartCommand)
}
