package search

import (
	"context"
	"fmt"

	"wanderlust/models"

	"go.uber.org/zap"
)

// FailureText is what Fetch returns instead of an error.
func FailureText(err error) string {
	return fmt.Sprintf("Search failed or timed out. Details: %v", err)
}

// Fetcher builds the recommendation query and flattens whatever the search
// provider returns.
type Fetcher struct {
	searcher Searcher
	logger   *zap.Logger
}

func NewFetcher(searcher Searcher, logger *zap.Logger) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{searcher: searcher, logger: logger}
}

// Fetch runs exactly one search. A failed search degrades to FailureText so
// the itinerary can still be generated.
func (f *Fetcher) Fetch(ctx context.Context, answers models.Answers) string {
	query := BuildQuery(answers)
	f.logger.Info("Running search", zap.String("query", query))

	res, err := f.searcher.Search(ctx, query)
	if err != nil {
		f.logger.Warn("Search failed", zap.Error(err))
		return FailureText(err)
	}
	f.logger.Info("Search results found", zap.Stringer("kind", res.Kind), zap.Int("items", len(res.Items)))
	return res.Flatten()
}
