package services

import (
	"context"
	"fmt"
	"time"

	"wanderlust/config"
	"wanderlust/database/repository/session"
	ai "wanderlust/services/intelligence"
	"wanderlust/services/planner"
	"wanderlust/services/search"
	"wanderlust/utils"

	"go.uber.org/zap"
)

// NewCompleter builds the completion client selected by COMPLETION_PROVIDER.
// The returned func releases the client.
func NewCompleter(ctx context.Context, cfg config.Config) (ai.Completer, func(), error) {
	switch cfg.CompletionProvider {
	case config.ProviderGemini:
		gc, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return gc, func() { _ = gc.Close() }, nil
	case config.ProviderGroq:
		return ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown completion provider %q", cfg.CompletionProvider)
	}
}

// NewSearcher builds the Tavily client, wrapped by the Redis cache when
// SEARCH_CACHE_ENABLED is set.
func NewSearcher(ctx context.Context, cfg config.Config, logger *zap.Logger) (search.Searcher, func(), error) {
	var s search.Searcher = search.NewTavilyClient(cfg.TavilyAPIKey, cfg.TavilyBaseURL, cfg.SearchMaxResults)
	if !cfg.SearchCacheEnabled {
		return s, func() {}, nil
	}
	client, err := utils.NewCacheClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Search cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SearchCacheTTL))
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, client, time.Minute)
	return search.NewCachedSearcher(s, client, cfg.SearchCacheTTL, logger), func() {
		stopMonitor()
		_ = client.Close()
	}, nil
}

// NewPlannerService wires the planner with the configured providers and an
// in-memory session repository.
func NewPlannerService(ctx context.Context, cfg config.Config, logger *zap.Logger) (*planner.DefaultPlannerService, func(), error) {
	searcher, closeSearch, err := NewSearcher(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("search: %w", err)
	}
	completer, closeCompleter, err := NewCompleter(ctx, cfg)
	if err != nil {
		closeSearch()
		return nil, nil, fmt.Errorf("completion: %w", err)
	}

	machine := planner.NewMachine(
		search.NewFetcher(searcher, logger.Named("search")),
		ai.NewSynthesizer(completer, logger.Named("synthesizer")),
		logger.Named("machine"),
	)
	svc := planner.NewDefaultPlannerService(session.NewMemorySessionRepo(), machine, logger.Named("planner"))

	return svc, func() {
		closeCompleter()
		closeSearch()
	}, nil
}
