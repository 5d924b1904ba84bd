// Package cache provides a generic, thread-safe LRU cache with per-entry
// time-to-live, used to memoize registry lookups without unbounded growth.
//
// Entries are evicted when capacity is exceeded (least recently used first)
// or lazily when their deadline has passed. All operations are safe for
// concurrent use.
//
//	c := cache.NewTTL[string, Result](1024)
//	c.Put("DE123456789", res, time.Hour)
//	res, ok := c.Get("DE123456789")
package cache
