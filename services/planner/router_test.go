package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoute(t *testing.T) {
	assert.Equal(t, DecisionAskNext, Route(Fields()))
	assert.Equal(t, DecisionAskNext, Route(Fields()[4:]))
	assert.Equal(t, DecisionSynthesize, Route(nil))
}

func TestRouteIsIdempotent(t *testing.T) {
	pending := Fields()[3:]
	first := Route(pending)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Route(pending))
	}
	assert.Len(t, pending, 2)
}
