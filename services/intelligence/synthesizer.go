package ai

import (
	"context"
	"fmt"

	"wanderlust/models"

	"go.uber.org/zap"
)

// ItineraryReadyBanner prefixes every successfully generated itinerary.
const ItineraryReadyBanner = "✅ Your travel itinerary is ready!"

// GenerationFailedText is the assistant message for a failed completion.
func GenerationFailedText(err error) string {
	return fmt.Sprintf("Sorry, I encountered an error while generating the itinerary. Details: %v", err)
}

// Synthesizer turns collected answers and search text into an itinerary.
type Synthesizer struct {
	completer Completer
	logger    *zap.Logger
}

func NewSynthesizer(completer Completer, logger *zap.Logger) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synthesizer{completer: completer, logger: logger}
}

// Synthesize issues one completion. On success the raw text is stored on the
// session and the bannered message returned; on failure the session's
// itinerary stays nil and an apology carrying the error is returned.
func (s *Synthesizer) Synthesize(ctx context.Context, sess *models.Session) string {
	searchText := ""
	if sess.SearchResult != nil {
		searchText = *sess.SearchResult
	}
	prompt := BuildItineraryPrompt(sess.Answers, searchText)

	text, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Itinerary generation failed", zap.String("sessionID", sess.ID), zap.Error(err))
		sess.Itinerary = nil
		return GenerationFailedText(err)
	}

	s.logger.Info("Itinerary generated", zap.String("sessionID", sess.ID), zap.Int("chars", len(text)))
	sess.Itinerary = &text
	return ItineraryReadyBanner + "\n\n" + text
}
