package planner

import (
	"context"

	"wanderlust/models"

	"go.uber.org/zap"
)

// Signal distinguishes ordinary user text from the restart button.
type Signal int

const (
	SignalText Signal = iota
	SignalRestart
)

// Input is one incoming turn.
type Input struct {
	Signal Signal
	Text   string
}

// Text wraps a user utterance.
func Text(s string) Input { return Input{Signal: SignalText, Text: s} }

// Restart is the explicit restart signal.
func Restart() Input { return Input{Signal: SignalRestart} }

// Reply holds the assistant texts emitted by a turn, in order.
type Reply struct {
	Messages []string
	State    models.SessionState
}

// Machine is the per-turn state machine. It holds no session state itself, so
// a single Machine serves any number of sessions.
type Machine struct {
	fetcher RecommendationFetcher
	synth   ItinerarySynthesizer
	logger  *zap.Logger
}

func NewMachine(fetcher RecommendationFetcher, synth ItinerarySynthesizer, logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{fetcher: fetcher, synth: synth, logger: logger}
}

// Step applies one input to the session and returns what the assistant says.
// When the last answer arrives the search and completion run synchronously
// before Step returns.
func (m *Machine) Step(ctx context.Context, s *models.Session, in Input) Reply {
	log := m.logger.With(zap.String("sessionID", s.ID))

	if in.Signal == SignalRestart {
		log.Info("Starting over")
		s.Reset()
		return m.emit(s, RestartMessage)
	}

	if !consistent(s) {
		log.Warn("Unexpected session state, resetting",
			zap.String("state", string(s.State)),
			zap.Any("pending", s.Pending),
		)
		s.Reset()
		s.AddMessage(models.RoleUser, in.Text)
		return m.emit(s, UnexpectedStateMessage)
	}

	s.AddMessage(models.RoleUser, in.Text)

	switch s.State {
	case models.StateAwaitingStart:
		if !IsStartCommand(in.Text) {
			log.Debug("Waiting for START")
			return m.emit(s, InvalidStartMessage)
		}
		log.Info("Received START")
		s.State = models.StateCollecting
		s.Started = true
		s.Answers = models.Answers{}
		s.Pending = Fields()
		s.SearchResult = nil
		s.Itinerary = nil
		return m.emit(s, StartConfirmation())

	case models.StateCollecting:
		field, _ := Collect(s, in.Text)
		log.Debug("Processed input",
			zap.String("field", string(field)),
			zap.Any("remaining", s.Pending),
		)
		decision := Route(s.Pending)
		log.Debug("Routing", zap.String("decision", string(decision)))
		if decision == DecisionAskNext {
			return m.emit(s, Prompt(s.Pending[0]))
		}
		return m.synthesize(ctx, log, s)

	default: // models.StateComplete
		log.Debug("Itinerary already generated, waiting for restart")
		return m.emit(s, CompleteMessage)
	}
}

func (m *Machine) synthesize(ctx context.Context, log *zap.Logger, s *models.Session) Reply {
	s.State = models.StateSynthesizing
	log.Info("All preferences collected, running search")

	result := m.fetcher.Fetch(ctx, s.Answers)
	s.SearchResult = &result

	log.Info("Generating itinerary")
	msg := m.synth.Synthesize(ctx, s)
	s.State = models.StateComplete
	return m.emit(s, msg)
}

func (m *Machine) emit(s *models.Session, msgs ...string) Reply {
	for _, msg := range msgs {
		s.AddMessage(models.RoleAssistant, msg)
	}
	return Reply{Messages: msgs, State: s.State}
}

// consistent checks the rules a stored session must satisfy between turns.
func consistent(s *models.Session) bool {
	if !IsSuffix(s.Pending) {
		return false
	}
	switch s.State {
	case models.StateAwaitingStart:
		return !s.Started && len(s.Pending) == 0
	case models.StateCollecting:
		return s.Started && s.Answers != nil && len(s.Pending) > 0
	case models.StateComplete:
		return s.Started && len(s.Pending) == 0
	default:
		// SYNTHESIZING never survives a turn.
		return false
	}
}
