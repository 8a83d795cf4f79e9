package planner

import (
	"context"

	"wanderlust/models"
)

// RecommendationFetcher turns collected answers into search text. It never
// fails; failures are reported inside the returned text.
type RecommendationFetcher interface {
	Fetch(ctx context.Context, answers models.Answers) string
}

// ItinerarySynthesizer produces the final assistant message and records the
// raw itinerary on the session when generation succeeds.
type ItinerarySynthesizer interface {
	Synthesize(ctx context.Context, s *models.Session) string
}

// PlannerService drives conversations on behalf of a chat surface.
type PlannerService interface {
	CreateSession(ctx context.Context) (*models.ChatResponse, error)
	HandleMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error)
	Start(ctx context.Context, sessionID string) (*models.ChatResponse, error)
	Restart(ctx context.Context, sessionID string) (*models.ChatResponse, error)
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
