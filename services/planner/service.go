package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wanderlust/database/repository/session"
	"wanderlust/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPlannerService implements PlannerService on top of a session
// repository. Turns on the same session are serialized; different sessions
// proceed independently.
type DefaultPlannerService struct {
	Repo    session.SessionRepository
	Machine *Machine
	Logger  *zap.Logger

	locks sync.Map // session ID -> *sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewDefaultPlannerService(repo session.SessionRepository, machine *Machine, logger *zap.Logger) *DefaultPlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultPlannerService{
		Repo:    repo,
		Machine: machine,
		Logger:  logger,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// CreateSession opens a conversation and returns the welcome message.
func (p *DefaultPlannerService) CreateSession(ctx context.Context) (*models.ChatResponse, error) {
	sess := models.NewSession(p.newID(), p.now())
	sess.AddMessage(models.RoleAssistant, WelcomeMessage)
	if err := p.Repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	p.Logger.Info("Session created", zap.String("sessionID", sess.ID))
	return toResponse(sess, Reply{Messages: []string{WelcomeMessage}, State: sess.State}), nil
}

func (p *DefaultPlannerService) HandleMessage(ctx context.Context, sessionID, text string) (*models.ChatResponse, error) {
	return p.turn(ctx, sessionID, Text(text))
}

// Start sends the start command. On a session that is already collecting it
// is an ordinary answer.
func (p *DefaultPlannerService) Start(ctx context.Context, sessionID string) (*models.ChatResponse, error) {
	return p.turn(ctx, sessionID, Text(StartCommand))
}

func (p *DefaultPlannerService) Restart(ctx context.Context, sessionID string) (*models.ChatResponse, error) {
	return p.turn(ctx, sessionID, Restart())
}

func (p *DefaultPlannerService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewInvalidSessionError("session id is required")
	}
	return p.Repo.Get(ctx, sessionID)
}

func (p *DefaultPlannerService) DeleteSession(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return NewInvalidSessionError("session id is required")
	}
	unlock := p.lock(sessionID)
	defer unlock()
	if err := p.Repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	p.Logger.Info("Session deleted", zap.String("sessionID", sessionID))
	return nil
}

func (p *DefaultPlannerService) turn(ctx context.Context, sessionID string, in Input) (*models.ChatResponse, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewInvalidSessionError("session id is required")
	}
	unlock := p.lock(sessionID)
	defer unlock()

	sess, err := p.Repo.Get(ctx, sessionID)
	switch {
	case errors.Is(err, models.ErrSessionNotFound):
		// Unknown sessions start fresh, then the input is handled normally.
		p.Logger.Info("Initialising unknown session", zap.String("sessionID", sessionID))
		sess = models.NewSession(sessionID, p.now())
	case err != nil:
		return nil, fmt.Errorf("load session: %w", err)
	}

	reply := p.Machine.Step(ctx, sess, in)
	sess.UpdatedAt = p.now()

	if err := p.Repo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return toResponse(sess, reply), nil
}

func (p *DefaultPlannerService) lock(sessionID string) func() {
	v, _ := p.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func toResponse(s *models.Session, reply Reply) *models.ChatResponse {
	resp := &models.ChatResponse{
		SessionID: s.ID,
		State:     reply.State,
		Messages:  reply.Messages,
	}
	if s.Itinerary != nil {
		v := *s.Itinerary
		resp.Itinerary = &v
	}
	if len(s.Pending) > 0 {
		resp.Pending = append([]models.Field(nil), s.Pending...)
	}
	return resp
}
