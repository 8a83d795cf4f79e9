package session

import (
	"context"
	"errors"

	"wanderlust/models"

	gocache "github.com/patrickmn/go-cache"
)

// MemorySessionRepo keeps sessions in process memory for the process
// lifetime. Entries never expire.
type MemorySessionRepo struct {
	cache *gocache.Cache
}

func NewMemorySessionRepo() *MemorySessionRepo {
	return &MemorySessionRepo{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (r *MemorySessionRepo) Get(_ context.Context, id string) (*models.Session, error) {
	v, ok := r.cache.Get(id)
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	sess, ok := v.(*models.Session)
	if !ok {
		return nil, errors.New("session repo: unexpected cache entry type")
	}
	return sess.Clone(), nil
}

func (r *MemorySessionRepo) Save(_ context.Context, s *models.Session) error {
	if s == nil || s.ID == "" {
		return errors.New("session repo: session id is required")
	}
	r.cache.Set(s.ID, s.Clone(), gocache.NoExpiration)
	return nil
}

func (r *MemorySessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.cache.Get(id); !ok {
		return models.ErrSessionNotFound
	}
	r.cache.Delete(id)
	return nil
}

func (r *MemorySessionRepo) Count(_ context.Context) int {
	return r.cache.ItemCount()
}
