// Package cache provides the bounded, LRU-evicted result cache that
// memoizes classification outcomes by normalized input string.
package cache

import (
	"container/list"

	"github.com/nmrs/sotd-pipeline-sub011/internal/model"
)

// DefaultCapacity bounds the cache when no size is configured. A month
// of reports is typically low thousands of strings with heavy repeats.
const DefaultCapacity = 4096

type entry struct {
	key    string
	result model.Result
}

// LRU memoizes match outcomes, including explicit no-match sentinels:
// failed classification is as expensive to recompute as success. Not
// safe for concurrent use; the batch pipeline is single-threaded, and a
// parallel caller must wrap it with per-key atomic get-or-compute.
type LRU struct {
	items    map[string]*list.Element
	order    *list.List
	capacity int
	hits     int
	misses   int
}

// NewLRU creates a cache bounded to capacity entries. Non-positive
// capacities fall back to DefaultCapacity.
func NewLRU(capacity int) *LRU {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &LRU{
		items:    make(map[string]*list.Element, capacity),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the cached outcome for a normalized key. A hit refreshes
// the entry's recency.
func (c *LRU) Get(key string) (model.Result, bool) {
	el, ok := c.items[key]
	if !ok {
		c.misses++
		return model.NoMatch(), false
	}
	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry).result, true
}

// Put stores an outcome, evicting the least recently used entry when
// the cache is full.
func (c *LRU) Put(key string, result model.Result) {
	if el, ok := c.items[key]; ok {
		c.order.MoveToFront(el)
		el.Value.(*entry).result = result
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*entry).key)
		}
	}

	c.items[key] = c.order.PushFront(&entry{key: key, result: result})
}

// Len reports the number of cached entries.
func (c *LRU) Len() int {
	return c.order.Len()
}

// Stats reports hit and miss counts since construction.
func (c *LRU) Stats() (hits, misses int) {
	return c.hits, c.misses
}
