// PersonalizedRecommendations - TF-IDF Movie Recommendation Service
// Copyright 2026 ShreyamPatel22
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ShreyamPatel22/PersonalizedRecommendations

package cache

import (
	"context"
	"sync"
	"time"

	"github.com/ShreyamPatel22/PersonalizedRecommendations/internal/metrics"
)

const (
	defaultCapacity = 1000
	defaultTTL      = 10 * time.Minute
)

type lruEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
	prev      *lruEntry
	next      *lruEntry
}

// LRUCache is a thread-safe least recently used cache with per-entry TTL.
// Expired entries are dropped lazily on Get or by CleanupExpired.
//
// A doubly-linked list orders entries by recency; head.next is the most
// recently used and tail.prev the next to evict.
type LRUCache struct {
	mu sync.Mutex

	capacity int
	ttl      time.Duration
	items    map[string]*lruEntry
	head     *lruEntry
	tail     *lruEntry

	hits   int64
	misses int64

	now func() time.Time
}

// NewLRUCache creates a cache holding at most capacity entries.
// Non-positive arguments fall back to 1000 entries and 10 minutes.
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	c := &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*lruEntry, capacity),
		head:     &lruEntry{},
		tail:     &lruEntry{},
		now:      time.Now,
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c
}

// Get returns a copy of the cached value.
func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		metrics.RecordCacheMiss(BackendMemory)
		return nil, false, nil
	}
	if c.now().After(entry.expiresAt) {
		c.removeEntry(entry)
		c.misses++
		metrics.RecordCacheMiss(BackendMemory)
		return nil, false, nil
	}

	c.moveToFront(entry)
	c.hits++
	metrics.RecordCacheHit(BackendMemory)
	return append([]byte(nil), entry.value...), true, nil
}

// Set stores a copy of value, evicting the least recently used entry when full.
func (c *LRUCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	stored := append([]byte(nil), value...)

	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	if entry, ok := c.items[key]; ok {
		entry.value = stored
		entry.expiresAt = expiresAt
		c.moveToFront(entry)
		return nil
	}

	entry := &lruEntry{key: key, value: stored, expiresAt: expiresAt}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
	return nil
}

// Delete removes key.
func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
	}
	return nil
}

// Close empties the cache.
func (c *LRUCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*lruEntry)
	c.head.next = c.tail
	c.tail.prev = c.head
	return nil
}

// Len returns the number of stored entries, including expired ones not yet swept.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CleanupExpired removes all expired entries and returns how many were removed.
func (c *LRUCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for entry := c.tail.prev; entry != c.head; {
		prev := entry.prev
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			removed++
		}
		entry = prev
	}
	return removed
}

// Stats returns hit and miss counts and the current size.
func (c *LRUCache) Stats() (hits, misses int64, size int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, len(c.items)
}

// Internal methods (must be called with lock held)

func (c *LRUCache) addToFront(entry *lruEntry) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRUCache) moveToFront(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRUCache) removeEntry(entry *lruEntry) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	delete(c.items, entry.key)
}

func (c *LRUCache) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
	metrics.RecordCacheEviction(BackendMemory)
}
