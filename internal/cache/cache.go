/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides the bounded, time-limited cache used to avoid redundant upstream fetches.
package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

// options holds the optional settings of a cache.
type options struct {
	clock func() time.Time
}

// Option configures a Cache.
type Option func(*options)

// WithClock overrides the time source of the cache.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// cacheElement is a resident entry together with its position in the access order.
type cacheElement[T Cacheable] struct {
	*CacheEntry[T]
	listElement *list.Element
}

// Cache is a bounded store of items keyed by identity. Entries are evicted least recently
// accessed first once the capacity is reached, and expire once their age reaches the ttl.
//
// The access order list holds identities ordered by last access, most recent at the front.
// Get does not move an entry, and Touch and Update reset both timestamps together, so the
// list is ordered by store time as well and expired entries are always found at the back.
type Cache[T Cacheable] struct {
	enabled     bool
	name        string
	capacity    int
	ttl         time.Duration
	entries     map[string]*cacheElement[T]
	accessOrder *list.List
	clock       func() time.Time
	mu          sync.Mutex
	hitCount    int64
	missCount   int64
	evictCount  int64
	expireCount int64
}

// NewCache creates a new cache holding at most capacity items, each for less than ttl.
func NewCache[T Cacheable](name string, capacity int, ttl time.Duration, opts ...Option) (*Cache[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: ttl must be positive, got %s", ErrInvalidArgument, ttl)
	}

	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"), log.String("name", name))
	logger.Debug("Initializing cache", log.Int("capacity", capacity), log.Duration("ttl", ttl))

	return &Cache[T]{
		enabled:     true,
		name:        name,
		capacity:    capacity,
		ttl:         ttl,
		entries:     make(map[string]*cacheElement[T]),
		accessOrder: list.New(),
		clock:       o.clock,
	}, nil
}

// NewDisabledCache returns a cache that stores nothing. Every lookup misses.
func NewDisabledCache[T Cacheable](name string) *Cache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"), log.String("name", name))
	logger.Warn("Cache is disabled, returning empty cache")

	return &Cache[T]{
		name:  name,
		clock: time.Now,
	}
}

// Put inserts a new item. It returns false, leaving the cache unchanged, when an item with the
// same identity is already resident. A full cache evicts its least recently accessed entry first.
func (c *Cache[T]) Put(item T) bool {
	if !c.enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	c.expire(now)

	id := item.ID()
	if _, exists := c.entries[id]; exists {
		return false
	}
	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.entries[id] = &cacheElement[T]{
		CacheEntry: &CacheEntry[T]{
			Item:           item,
			StoredAt:       now,
			LastAccessedAt: now,
		},
		listElement: c.accessOrder.PushFront(id),
	}
	return true
}

// Get returns the live item with the given identity, or ErrNotFound.
// A lookup does not count as an access for eviction purposes.
func (c *Cache[T]) Get(id string) (T, error) {
	var zero T
	if !c.enabled {
		return zero, ErrNotFound
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.expire(c.clock())

	entry, exists := c.entries[id]
	if !exists {
		c.missCount++
		metrics.RecordCacheResult(c.name, metrics.CacheResultMiss)
		return zero, ErrNotFound
	}

	c.hitCount++
	metrics.RecordCacheResult(c.name, metrics.CacheResultHit)
	return entry.Item, nil
}

// Touch marks the entry with the given identity as freshly stored and accessed.
func (c *Cache[T]) Touch(id string) bool {
	if !c.enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	c.expire(now)

	entry, exists := c.entries[id]
	if !exists {
		return false
	}
	c.refresh(entry, now)
	return true
}

// Update replaces the resident item with the same identity and refreshes it as Touch does.
func (c *Cache[T]) Update(item T) bool {
	if !c.enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	c.expire(now)

	entry, exists := c.entries[item.ID()]
	if !exists {
		return false
	}
	entry.Item = item
	c.refresh(entry, now)
	return true
}

// Delete removes the entry with the given identity.
func (c *Cache[T]) Delete(id string) bool {
	if !c.enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[id]
	if !exists {
		return false
	}
	c.deleteEntry(id, entry)
	return true
}

// Clear removes all entries from the cache and resets its statistics.
func (c *Cache[T]) Clear() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*cacheElement[T])
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0
	c.expireCount = 0
}

// Len returns the number of live entries.
func (c *Cache[T]) Len() int {
	if !c.enabled {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.expire(c.clock())
	return len(c.entries)
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.name
}

// GetStats returns cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Name: c.name, Enabled: false}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps)
	}

	return CacheStat{
		Name:        c.name,
		Enabled:     true,
		Size:        len(c.entries),
		MaxSize:     c.capacity,
		TTL:         c.ttl.String(),
		HitCount:    c.hitCount,
		MissCount:   c.missCount,
		HitRate:     hitRate,
		EvictCount:  c.evictCount,
		ExpireCount: c.expireCount,
	}
}

// refresh resets both timestamps and moves the entry to the front of the access order.
func (c *Cache[T]) refresh(entry *cacheElement[T], now time.Time) {
	entry.StoredAt = now
	entry.LastAccessedAt = now
	c.accessOrder.MoveToFront(entry.listElement)
}

// expire removes every entry whose age has reached the ttl.
func (c *Cache[T]) expire(now time.Time) {
	for back := c.accessOrder.Back(); back != nil; back = c.accessOrder.Back() {
		id := back.Value.(string)
		entry := c.entries[id]
		if now.Sub(entry.StoredAt) < c.ttl {
			return
		}
		c.deleteEntry(id, entry)
		c.expireCount++
		metrics.RecordCacheResult(c.name, metrics.CacheResultExpired)
	}
}

// evictOldest removes the least recently accessed entry.
func (c *Cache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}

	id := oldest.Value.(string)
	c.deleteEntry(id, c.entries[id])
	c.evictCount++
	metrics.RecordCacheResult(c.name, metrics.CacheResultEvicted)

	if logger := log.GetLogger(); logger.IsDebugEnabled() {
		logger.With(log.String(log.LoggerKeyComponentName, "Cache"), log.String("name", c.name)).
			Debug("Cache entry evicted", log.String("id", id))
	}
}

// deleteEntry removes an entry from both the map and the access order list.
func (c *Cache[T]) deleteEntry(id string, entry *cacheElement[T]) {
	delete(c.entries, id)
	c.accessOrder.Remove(entry.listElement)
}
