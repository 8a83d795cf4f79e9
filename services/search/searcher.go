package search

import "context"

// Searcher issues a single web search.
type Searcher interface {
	Search(ctx context.Context, query string) (Result, error)
}
