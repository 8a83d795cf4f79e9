package models

// Field identifies one of the travel preferences collected from the user.
type Field string

const (
	FieldDestination   Field = "destination"
	FieldBudget        Field = "budget"
	FieldActivities    Field = "activities"
	FieldDuration      Field = "duration"
	FieldAccommodation Field = "accommodation"
)

// Answers maps each answered field to the raw text the user supplied.
type Answers map[Field]string

// Lookup returns the answer for f and whether one was recorded.
func (a Answers) Lookup(f Field) (string, bool) {
	v, ok := a[f]
	return v, ok
}
