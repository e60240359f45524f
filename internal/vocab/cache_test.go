package vocab

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many times Load ran.
type countingSource struct {
	skills []string
	err    error
	loads  int
}

func (s *countingSource) Load(_ context.Context) ([]string, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.skills, nil
}

func TestCache_GetLoadsOnce(t *testing.T) {
	source := &countingSource{skills: []string{"Python", "Go"}}
	cache := NewCache(source)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	second, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Go"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, source.loads)
}

func TestCache_RefreshReloads(t *testing.T) {
	source := &countingSource{skills: []string{"Python"}}
	cache := NewCache(source)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	source.skills = []string{"Python", "Rust"}
	refreshed, err := cache.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Python", "Rust"}, refreshed)
	assert.Equal(t, 2, source.loads)

	cached, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Rust"}, cached)
	assert.Equal(t, 2, source.loads)
}

func TestCache_LoadErrorPropagates(t *testing.T) {
	source := &countingSource{err: errors.New("disk gone")}
	cache := NewCache(source)

	_, err := cache.Get(context.Background())

	assert.Error(t, err)
}

func TestCache_FailedRefreshKeepsOldVocabulary(t *testing.T) {
	source := &countingSource{skills: []string{"Python"}}
	cache := NewCache(source)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	source.err = errors.New("source unavailable")
	_, err = cache.Refresh(context.Background())
	assert.Error(t, err)

	skills, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Python"}, skills)
}

func TestCache_EmptyVocabularyIsCached(t *testing.T) {
	source := &countingSource{skills: []string{}}
	cache := NewCache(source)

	skills, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, skills)

	_, err = cache.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, source.loads)
}
