package search

import (
	"fmt"
	"strings"

	"wanderlust/models"

	"github.com/samber/lo"
)

type clause struct {
	field  models.Field
	format string
}

// Optional query clauses, in the order they are appended.
var clauses = []clause{
	{models.FieldDuration, "for about %s days."},
	{models.FieldBudget, "User's budget is described as: '%s'."},
	{models.FieldActivities, "User is looking for activities like: '%s'."},
	{models.FieldAccommodation, "User's accommodation preference is: '%s'."},
}

// BuildQuery turns the collected answers into a single search query. Clauses
// for missing or empty answers are left out.
func BuildQuery(answers models.Answers) string {
	destination, ok := answers.Lookup(models.FieldDestination)
	if !ok {
		destination = "anywhere"
	}
	parts := []string{"Travel itinerary ideas for " + destination}
	parts = append(parts, lo.FilterMap(clauses, func(c clause, _ int) (string, bool) {
		v, ok := answers.Lookup(c.field)
		if !ok || v == "" {
			return "", false
		}
		return fmt.Sprintf(c.format, v), true
	})...)
	return strings.Join(parts, " ")
}
