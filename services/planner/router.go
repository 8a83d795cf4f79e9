package planner

import "wanderlust/models"

// Decision is the outcome of Route.
type Decision string

const (
	DecisionAskNext    Decision = "ask_next_question"
	DecisionSynthesize Decision = "run_search"
)

// Route decides what follows a collected answer.
func Route(pending []models.Field) Decision {
	if len(pending) > 0 {
		return DecisionAskNext
	}
	return DecisionSynthesize
}
