package customdict

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client)
}

func TestAddAndAll(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Add(ctx, "Blockchain"))
	require.NoError(t, s.Add(ctx, "kubernetes"))
	require.NoError(t, s.Add(ctx, "blockchain")) // duplicate after normalization

	words, err := s.All(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"blockchain", "kubernetes"}, words)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestContains(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Add(ctx, "gopher"))

	ok, err := s.Contains(ctx, "GOPHER")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Contains(ctx, "ferret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.Add(ctx, "gopher"))
	require.NoError(t, s.Remove(ctx, "Gopher"))

	ok, err := s.Contains(ctx, "gopher")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing an absent word is not an error
	require.NoError(t, s.Remove(ctx, "gopher"))
}

func TestInvalidWords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, w := range []string{"", "   ", "b4", "two words", "it's"} {
		assert.ErrorIs(t, s.Add(ctx, w), ErrInvalidWord, "word %q", w)
	}
}
