package models

import (
	"errors"
	"time"
)

// SessionState is the position of a session in the turn state machine.
type SessionState string

const (
	StateAwaitingStart SessionState = "AWAITING_START"
	StateCollecting    SessionState = "COLLECTING"
	StateSynthesizing  SessionState = "SYNTHESIZING"
	StateComplete      SessionState = "COMPLETE"
)

// ErrSessionNotFound is returned by session repositories for unknown IDs.
var ErrSessionNotFound = errors.New("session not found")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single transcript entry.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the per-conversation state of the planner.
type Session struct {
	ID           string        `json:"sessionId"`
	State        SessionState  `json:"state"`
	Started      bool          `json:"started"`
	Answers      Answers       `json:"answers"`
	Pending      []Field       `json:"pending"`
	SearchResult *string       `json:"searchResult,omitempty"`
	Itinerary    *string       `json:"itinerary,omitempty"`
	Messages     []ChatMessage `json:"messages"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// NewSession returns a session awaiting the start command.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		State:     StateAwaitingStart,
		Answers:   Answers{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset drops everything collected so far, including the transcript.
func (s *Session) Reset() {
	s.State = StateAwaitingStart
	s.Started = false
	s.Answers = Answers{}
	s.Pending = nil
	s.SearchResult = nil
	s.Itinerary = nil
	s.Messages = nil
}

// AddMessage appends an entry to the transcript.
func (s *Session) AddMessage(role, content string) {
	s.Messages = append(s.Messages, ChatMessage{Role: role, Content: content})
}

// Clone returns a deep copy so stored sessions never share mutable state
// with callers.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	if s.Answers != nil {
		c.Answers = make(Answers, len(s.Answers))
		for k, v := range s.Answers {
			c.Answers[k] = v
		}
	}
	if s.Pending != nil {
		c.Pending = append([]Field(nil), s.Pending...)
	}
	if s.Messages != nil {
		c.Messages = append([]ChatMessage(nil), s.Messages...)
	}
	if s.SearchResult != nil {
		v := *s.SearchResult
		c.SearchResult = &v
	}
	if s.Itinerary != nil {
		v := *s.Itinerary
		c.Itinerary = &v
	}
	return &c
}
