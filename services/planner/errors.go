package planner

import "fmt"

type PlannerError struct {
	Code    string
	Message string
}

func (e *PlannerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidSessionError(msg string) error {
	return &PlannerError{
		Code:    "invalidSession",
		Message: msg,
	}
}
