package ai

import (
	"fmt"

	"wanderlust/models"
)

const notSpecified = "Not specified"

// NoSearchResults stands in for an absent or empty search result.
const NoSearchResults = "No search results available."

const itineraryPromptTemplate = `
You are an expert travel planner. Create a detailed and engaging travel itinerary based on the following user preferences:
NOTE :- Do not go over the user budget.

**User Preferences:**
- Destination: %s
- Duration: %s days
- Budget Description: '%s'
- Preferred Activities Description: '%s'
- Preferred Accommodation Description: '%s'

**Your Task:**
1.  **Interpret Preferences:** Carefully interpret the user's descriptions for budget, activities, and accommodation.
    * If the budget is descriptive (e.g., 'moderate', 'budget-friendly', 'a bit flexible', 'around $X'), tailor suggestions to match that level for the specific destination. Avoid extreme high-cost or only free options unless explicitly requested. 'Moderate' usually implies a balance of value, comfort, and experiences.
    * If activities are described generally (e.g., 'mix of famous and offbeat', 'relaxing', 'cultural immersion', 'adventure'), create an itinerary that reflects this. A 'mix' should include popular landmarks and hidden gems. 'Relaxing' should include downtime.
    * Interpret accommodation descriptions (e.g., 'mid-range', 'cheap but clean', 'boutique hotel') based on typical offerings at the destination.
2.  **Use Search Results:** Incorporate relevant and specific suggestions from the search results below, but *only* if they align with the interpreted user preferences. Do not blindly copy search results.
3.  **Create a Coherent Plan:** Structure the itinerary logically, day-by-day. Include suggestions for specific activities, potential dining spots (matching budget), and estimated timings where appropriate.
4.  **Engaging Tone:** Present the itinerary in an exciting and appealing way.
5.  **Stay Within Budget:** The total cost of the plan must not exceed the stated budget.

**Supporting Search Results:**
` + "```" + `
%s
` + "```" + `

**Generate the Itinerary:**
`

// BuildItineraryPrompt embeds the answers and search text into the planner
// instructions. Missing answers read "Not specified".
func BuildItineraryPrompt(answers models.Answers, searchText string) string {
	if searchText == "" {
		searchText = NoSearchResults
	}
	return fmt.Sprintf(itineraryPromptTemplate,
		answerOr(answers, models.FieldDestination),
		answerOr(answers, models.FieldDuration),
		answerOr(answers, models.FieldBudget),
		answerOr(answers, models.FieldActivities),
		answerOr(answers, models.FieldAccommodation),
		searchText,
	)
}

func answerOr(answers models.Answers, f models.Field) string {
	if v, ok := answers.Lookup(f); ok {
		return v
	}
	return notSpecified
}
