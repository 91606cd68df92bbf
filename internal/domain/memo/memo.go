// Package memo defines the interface for mapping-result memoization.
// Repeated form fields inside one batch carry identical labels; caching
// their mapping outcome avoids re-running the fuzzy scan per repeat.
package memo

import (
	"context"
	"sync"
	"sync/atomic"
)

// Cache stores mapping outcomes keyed by normalized lookup key.
type Cache interface {
	// Get returns the cached value for key and whether it was present.
	Get(ctx context.Context, key string) (any, bool)

	// Put records a value for key. Existing entries are overwritten in
	// place without disturbing eviction order.
	Put(ctx context.Context, key string, value any)

	Size() int64
}

// entry is a single cache slot chained into the eviction list.
type entry struct {
	key   string
	value any
	next  *entry
}

func (e *entry) reset() {
	e.key = ""
	e.value = nil
	e.next = nil
}

// inMemoryCache implements Cache with an in-memory linked list and LIFO
// eviction. Bounded mode (maxSize > 0) evicts the most recently inserted
// entry once full; unbounded mode (maxSize <= 0) is a plain map.
type inMemoryCache struct {
	mu        sync.RWMutex
	entries   map[string]*entry
	head      *entry
	maxSize   int
	size      atomic.Int64
	entryPool sync.Pool
}

// NewInMemoryCache creates a new in-memory cache with configuration options.
func NewInMemoryCache(opts ...Option) Cache {
	c := &inMemoryCache{
		maxSize: 10000, // default max size
	}
	for _, opt := range opts {
		opt(c)
	}
	c.entries = make(map[string]*entry)
	if c.maxSize > 0 {
		c.entryPool = sync.Pool{
			New: func() interface{} {
				return &entry{}
			},
		}
	}
	return c
}

func (c *inMemoryCache) Get(ctx context.Context, key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (c *inMemoryCache) Put(ctx context.Context, key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists := c.entries[key]; exists {
		e.value = value
		return
	}

	if c.maxSize > 0 {
		if len(c.entries) >= c.maxSize {
			c.evictLIFO()
		}
		e := c.entryPool.Get().(*entry)
		e.key = key
		e.value = value
		e.next = c.head
		c.head = e
		c.entries[key] = e
	} else {
		e := &entry{key: key, value: value}
		c.entries[key] = e
	}
	c.size.Add(1)
}

// evictLIFO removes the most recently inserted entry. Callers hold the
// write lock.
func (c *inMemoryCache) evictLIFO() {
	if c.head == nil {
		return
	}
	evicted := c.head
	c.head = evicted.next
	delete(c.entries, evicted.key)
	evicted.reset()
	c.entryPool.Put(evicted)
	c.size.Add(-1)
}

func (c *inMemoryCache) Size() int64 {
	return c.size.Load()
}
