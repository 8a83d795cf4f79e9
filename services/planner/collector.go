package planner

import "wanderlust/models"

// Collect binds text verbatim to the field at the head of the session's
// pending list and drops that field. It returns false and leaves the session
// untouched when nothing is pending.
func Collect(s *models.Session, text string) (models.Field, bool) {
	if len(s.Pending) == 0 {
		return "", false
	}
	field := s.Pending[0]
	if s.Answers == nil {
		s.Answers = models.Answers{}
	}
	s.Answers[field] = text
	s.Pending = s.Pending[1:]
	return field, true
}
