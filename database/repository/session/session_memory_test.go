package session

import (
	"context"
	"testing"
	"time"

	"wanderlust/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrSessionNotFound)

	sess := models.NewSession("abc", time.Now())
	sess.Answers[models.FieldDestination] = "Paris"
	require.NoError(t, repo.Save(ctx, sess))
	assert.Equal(t, 1, repo.Count(ctx))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Paris", got.Answers[models.FieldDestination])
}

func TestMemorySessionRepoIsolatesCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo()

	sess := models.NewSession("abc", time.Now())
	require.NoError(t, repo.Save(ctx, sess))

	// Mutating the saved value or a fetched copy must not leak into the store.
	sess.Answers[models.FieldBudget] = "moderate"
	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	got.Pending = append(got.Pending, models.FieldDuration)

	again, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, again.Answers)
	assert.Empty(t, again.Pending)
}

func TestMemorySessionRepoDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepo()

	require.NoError(t, repo.Save(ctx, models.NewSession("abc", time.Now())))
	require.NoError(t, repo.Delete(ctx, "abc"))
	assert.ErrorIs(t, repo.Delete(ctx, "abc"), models.ErrSessionNotFound)
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestMemorySessionRepoRejectsEmptyID(t *testing.T) {
	assert.Error(t, NewMemorySessionRepo().Save(context.Background(), &models.Session{}))
}
