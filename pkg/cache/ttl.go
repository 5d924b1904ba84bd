package cache

import (
	"container/list"
	"sync"
	"time"
)

type ttlEntry[K comparable, V any] struct {
	key      K
	value    V
	deadline time.Time // zero means the entry never expires
}

func (e *ttlEntry[K, V]) expired(now time.Time) bool {
	return !e.deadline.IsZero() && now.After(e.deadline)
}

// TTL is a thread-safe LRU cache whose entries additionally carry an expiry
// deadline. When the cache reaches capacity the least recently used entry is
// evicted; expired entries are evicted lazily on access.
type TTL[K comparable, V any] struct {
	capacity int
	items    map[K]*list.Element
	eviction *list.List
	mu       sync.Mutex
	now      func() time.Time
}

// NewTTL creates a TTL cache with the given capacity. Panics if capacity is
// not positive, following fail-fast initialization.
func NewTTL[K comparable, V any](capacity int) *TTL[K, V] {
	if capacity <= 0 {
		panic("cache capacity must be positive")
	}
	return &TTL[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		eviction: list.New(),
		now:      time.Now,
	}
}

// Put stores a value with the given time-to-live and marks it as most
// recently used. A non-positive ttl stores the entry without expiry.
func (c *TTL[K, V]) Put(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var deadline time.Time
	if ttl > 0 {
		deadline = c.now().Add(ttl)
	}

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		entry := elem.Value.(*ttlEntry[K, V])
		entry.value = value
		entry.deadline = deadline
		return
	}

	elem := c.eviction.PushFront(&ttlEntry[K, V]{key: key, value: value, deadline: deadline})
	c.items[key] = elem

	if c.eviction.Len() > c.capacity {
		c.removeElement(c.eviction.Back())
	}
}

// Get retrieves a value and marks it as recently used. Expired entries are
// evicted and reported as absent.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*ttlEntry[K, V])
		if entry.expired(c.now()) {
			c.removeElement(elem)
		} else {
			c.eviction.MoveToFront(elem)
			return entry.value, true
		}
	}

	var zero V
	return zero, false
}

// Remove deletes a key from the cache. Returns true if the key was present.
func (c *TTL[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if ok {
		c.removeElement(elem)
	}
	return ok
}

// Len reports the number of live entries, pruning any that have expired.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for elem := c.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*ttlEntry[K, V]).expired(now) {
			c.removeElement(elem)
		}
		elem = prev
	}
	return c.eviction.Len()
}

// Clear removes all entries.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.eviction.Init()
}

// removeElement must be called with the mutex held.
func (c *TTL[K, V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	entry := elem.Value.(*ttlEntry[K, V])
	delete(c.items, entry.key)
}
