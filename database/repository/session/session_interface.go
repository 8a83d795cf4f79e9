package session

import (
	"context"

	"wanderlust/models"
)

// SessionRepository stores conversation sessions. Implementations hand out
// copies so callers never share a live record.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
}
