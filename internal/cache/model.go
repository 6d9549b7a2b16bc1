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

package cache

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when no live entry exists for an identity.
	ErrNotFound = errors.New("cache entry not found")
	// ErrInvalidArgument is returned when a cache is constructed with a non-positive capacity or ttl.
	ErrInvalidArgument = errors.New("invalid cache argument")
)

// Cacheable is implemented by every item that can be stored in a Cache.
// ID must be stable for the lifetime of the item.
type Cacheable interface {
	ID() string
}

// CacheEntry represents a cache entry.
type CacheEntry[T Cacheable] struct {
	Item           T
	StoredAt       time.Time
	LastAccessedAt time.Time
}

// CacheStat represents cache statistics.
type CacheStat struct {
	Name        string  `json:"name"`
	Enabled     bool    `json:"enabled"`
	Size        int     `json:"size"`
	MaxSize     int     `json:"maxSize"`
	TTL         string  `json:"ttl"`
	HitCount    int64   `json:"hitCount"`
	MissCount   int64   `json:"missCount"`
	HitRate     float64 `json:"hitRate"`
	EvictCount  int64   `json:"evictCount"`
	ExpireCount int64   `json:"expireCount"`
}

// Page is a cached page body keyed by its title.
type Page struct {
	Title string
	Text  string
}

// ID returns the page title.
func (p Page) ID() string {
	return p.Title
}

// Links is a cached list of outbound links keyed by the source page title.
type Links struct {
	Title   string
	Targets []string
}

// ID returns the source page title.
func (l Links) ID() string {
	return l.Title
}
