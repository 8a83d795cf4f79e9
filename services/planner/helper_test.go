package planner

import (
	"context"
	"sync"

	"wanderlust/models"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	text  string
}

func (f *fakeFetcher) Fetch(_ context.Context, _ models.Answers) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text
}

type fakeSynth struct {
	mu       sync.Mutex
	calls    int
	searches []string
	fail     bool
}

func (f *fakeSynth) Synthesize(_ context.Context, s *models.Session) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if s.SearchResult != nil {
		f.searches = append(f.searches, *s.SearchResult)
	}
	if f.fail {
		s.Itinerary = nil
		return "Sorry, generation failed"
	}
	text := "Day 1 in " + s.Answers[models.FieldDestination]
	s.Itinerary = &text
	return "READY\n\n" + text
}

var tripAnswers = []string{"Paris", "moderate", "sightseeing and food", "5", "mid-range hotel"}
