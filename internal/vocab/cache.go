// Package vocab loads the skill vocabulary the matching engine evaluates
// documents against.
package vocab

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache keeps the most recently loaded vocabulary in memory so request
// handling does not reread the source. The cached slice is read-only;
// callers must not modify it.
type Cache struct {
	source Source

	group  singleflight.Group
	mu     sync.RWMutex
	loaded bool
	skills []string
}

// NewCache wraps a source with a process-wide cache.
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Get returns the cached vocabulary, loading it from the source on first
// use.
func (c *Cache) Get(ctx context.Context) ([]string, error) {
	c.mu.RLock()
	if c.loaded {
		skills := c.skills
		c.mu.RUnlock()
		return skills, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh reloads the vocabulary from the source. Concurrent refreshes
// collapse into a single load; every caller receives that load's result.
// On failure the previously cached vocabulary is kept.
func (c *Cache) Refresh(ctx context.Context) ([]string, error) {
	v, err, _ := c.group.Do("vocabulary", func() (any, error) {
		skills, err := c.source.Load(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.skills = skills
		c.loaded = true
		c.mu.Unlock()
		return skills, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
