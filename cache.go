package playink

import (
	"sync"
	"time"
)

// DocCache keeps the loaded docs tree in memory for ttl, so the
// development server picks up edits without reloading on every request.
type DocCache struct {
	mu      sync.RWMutex
	docs    *DocSet
	fetched time.Time
	ttl     time.Duration
	load    func() (*DocSet, error)
}

// NewDocCache creates a DocCache backed by load.
func NewDocCache(load func() (*DocSet, error), ttl time.Duration) *DocCache {
	return &DocCache{load: load, ttl: ttl}
}

func (c *DocCache) valid() bool {
	return c.docs != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *DocCache) Invalidate() {
	c.mu.Lock()
	c.docs = nil
	c.mu.Unlock()
}

// Docs returns the cached tree, reloading it when stale. It tries a read
// lock first and only takes the write lock when a reload is needed.
func (c *DocCache) Docs() (*DocSet, error) {
	c.mu.RLock()
	if c.valid() {
		docs := c.docs
		c.mu.RUnlock()
		return docs, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid() {
		return c.docs, nil
	}
	docs, err := c.load()
	if err != nil {
		return nil, err
	}
	c.docs = docs
	c.fetched = time.Now()
	return docs, nil
}
