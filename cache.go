package algmat

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/consensys/algmat/algebra"
)

// projectionCache memoizes projection ideals and ranks per canonical subset
// key. Entries are exact mathematical facts about the fixed defining ideal,
// so the cache only grows and is never invalidated.
//
// Concurrent queries for the same subset are deduplicated: elimination can be
// very expensive, so a computation already in flight is joined rather than
// repeated. Failed computations never populate the cache.
type projectionCache struct {
	mu     sync.RWMutex
	ideals map[string]algebra.Ideal
	ranks  map[string]int

	flight singleflight.Group
}

func newProjectionCache() *projectionCache {
	return &projectionCache{
		ideals: make(map[string]algebra.Ideal),
		ranks:  make(map[string]int),
	}
}

// seed stores an ideal without going through a compute path.
func (c *projectionCache) seed(key string, i algebra.Ideal) {
	c.mu.Lock()
	c.ideals[key] = i
	c.mu.Unlock()
}

// ideal returns the cached ideal for key, computing and storing it on a miss.
func (c *projectionCache) ideal(key string, compute func() (algebra.Ideal, error)) (algebra.Ideal, error) {
	c.mu.RLock()
	if i, ok := c.ideals[key]; ok {
		c.mu.RUnlock()
		return i, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		// a flight that completed between our read and this call has
		// already stored the result
		c.mu.RLock()
		i, ok := c.ideals[key]
		c.mu.RUnlock()
		if ok {
			return i, nil
		}
		i, err := compute()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.ideals[key] = i
		c.mu.Unlock()
		return i, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(algebra.Ideal), nil
}

func (c *projectionCache) rank(key string) (int, bool) {
	c.mu.RLock()
	r, ok := c.ranks[key]
	c.mu.RUnlock()
	return r, ok
}

func (c *projectionCache) setRank(key string, r int) {
	c.mu.Lock()
	c.ranks[key] = r
	c.mu.Unlock()
}
