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

// Package mediator provides the shared façade that serves page, graph and statistics requests.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/asgardeo/wikimediator/internal/analytics"
	"github.com/asgardeo/wikimediator/internal/cache"
	"github.com/asgardeo/wikimediator/internal/graph"
	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

const loggerComponentName = "WikiMediator"

// WikiMediatorInterface defines the operations served to clients.
type WikiMediatorInterface interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
	GetPage(ctx context.Context, title string) (string, error)
	GetConnectedPages(ctx context.Context, title string, hops int) ([]string, error)
	GetPath(ctx context.Context, start, stop string) ([]string, error)
	Zeitgeist(limit int) []string
	Trending(limit int) []string
	PeakLoad() int
	TrendingSubjects(limit int) []string
	TopSubjects(limit int) []analytics.SubjectCount
	RequestCount() int
	CacheStats() []cache.CacheStat
}

type options struct {
	pageCache   *cache.Cache[cache.Page]
	linkCache   *cache.Cache[cache.Links]
	window      time.Duration
	pathTimeout time.Duration
	clock       func() time.Time
}

// Option configures a WikiMediator.
type Option func(*options)

// WithPageCache sets the cache holding page text.
func WithPageCache(c *cache.Cache[cache.Page]) Option {
	return func(o *options) {
		o.pageCache = c
	}
}

// WithLinkCache sets the cache holding outbound links used by graph operations.
func WithLinkCache(c *cache.Cache[cache.Links]) Option {
	return func(o *options) {
		o.linkCache = c
	}
}

// WithWindow sets the trailing window of trending and peak load queries.
func WithWindow(window time.Duration) Option {
	return func(o *options) {
		o.window = window
	}
}

// WithPathTimeout sets how long GetPath searches before giving up.
func WithPathTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.pathTimeout = timeout
	}
}

// WithClock overrides the time source of the mediator and the stores it creates.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WikiMediator is safe for concurrent use and is meant to be shared by every client connection.
type WikiMediator struct {
	source      pagesource.PageSourceInterface
	pageCache   *cache.Cache[cache.Page]
	linkCache   *cache.Cache[cache.Links]
	explorer    *graph.Explorer
	subjects    *analytics.Store
	requests    *analytics.Store
	fetches     singleflight.Group
	window      time.Duration
	pathTimeout time.Duration
	clock       func() time.Time
	logger      *log.Logger
}

var _ WikiMediatorInterface = (*WikiMediator)(nil)

// NewWikiMediator creates a mediator over the given page source.
func NewWikiMediator(source pagesource.PageSourceInterface, opts ...Option) *WikiMediator {
	o := options{
		window:      analytics.DefaultWindow,
		pathTimeout: DefaultPathTimeout,
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if o.pageCache == nil {
		pageCache, err := cache.NewCache[cache.Page]("page", DefaultPageCacheSize, DefaultPageCacheTTL,
			cache.WithClock(o.clock))
		if err != nil {
			logger.Error("Failed to create the default page cache", log.Error(err))
			pageCache = cache.NewDisabledCache[cache.Page]("page")
		}
		o.pageCache = pageCache
	}
	if o.linkCache == nil {
		linkCache, err := cache.NewCache[cache.Links]("links", DefaultLinkCacheSize, DefaultLinkCacheTTL,
			cache.WithClock(o.clock))
		if err != nil {
			logger.Error("Failed to create the default link cache", log.Error(err))
			linkCache = cache.NewDisabledCache[cache.Links]("links")
		}
		o.linkCache = linkCache
	}

	m := &WikiMediator{
		source:      source,
		pageCache:   o.pageCache,
		linkCache:   o.linkCache,
		subjects:    analytics.NewStore(analytics.WithClock(o.clock)),
		requests:    analytics.NewStore(analytics.WithClock(o.clock)),
		window:      o.window,
		pathTimeout: o.pathTimeout,
		clock:       o.clock,
		logger:      logger,
	}
	m.explorer = graph.NewExplorer(m.links, graph.WithClock(o.clock))

	logger.Debug("Mediator initialized", log.String("source", source.Name()),
		log.Duration("window", o.window), log.Duration("pathTimeout", o.pathTimeout))
	return m
}

// Search returns up to limit page titles matching query.
func (m *WikiMediator) Search(ctx context.Context, query string, limit int) (titles []string, err error) {
	defer m.observe(OperationSearch, time.Now(), &err)

	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidArgument, limit)
	}
	m.subjects.Record(query)
	m.requests.Record(OperationSearch)

	if limit == 0 {
		return []string{}, nil
	}
	return m.source.SearchTitles(ctx, query, limit)
}

// GetPage returns the text of the page, from the cache when it holds a live copy.
// Concurrent misses for the same title share a single upstream fetch.
func (m *WikiMediator) GetPage(ctx context.Context, title string) (text string, err error) {
	defer m.observe(OperationGetPage, time.Now(), &err)

	m.subjects.Record(title)
	m.requests.Record(OperationGetPage)

	if page, err := m.pageCache.Get(title); err == nil {
		return page.Text, nil
	}

	// The shared fetch outlives any single caller; each caller stops waiting on its own context.
	fetchCtx := context.WithoutCancel(ctx)
	ch := m.fetches.DoChan(title, func() (interface{}, error) {
		text, err := m.source.FetchPageText(fetchCtx, title)
		if err != nil {
			return "", err
		}
		m.pageCache.Put(cache.Page{Title: title, Text: text})
		return text, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared && m.logger.IsDebugEnabled() {
			m.logger.Debug("Page fetch shared with a concurrent request", log.String("title", title))
		}
		return res.Val.(string), nil
	}
}

// GetConnectedPages returns the pages reachable from title by following at most hops links.
func (m *WikiMediator) GetConnectedPages(ctx context.Context, title string, hops int) (pages []string, err error) {
	defer m.observe(OperationGetConnectedPages, time.Now(), &err)

	if hops < 0 {
		return nil, fmt.Errorf("%w: hops must not be negative, got %d", ErrInvalidArgument, hops)
	}
	m.requests.Record(OperationGetConnectedPages)

	return m.explorer.Reachable(ctx, title, hops)
}

// GetPath returns a shortest chain of links from start to stop, or an empty list when none is
// found before the path timeout.
func (m *WikiMediator) GetPath(ctx context.Context, start, stop string) (path []string, err error) {
	defer m.observe(OperationGetPath, time.Now(), &err)

	m.requests.Record(OperationGetPath)

	deadline := m.clock().Add(m.pathTimeout)
	path, err = m.explorer.ShortestPath(ctx, start, stop, deadline)
	if err == nil && len(path) == 0 {
		m.logger.Debug("No path found", log.String("start", start), log.String("stop", stop))
	}
	return path, err
}

// Zeitgeist returns up to limit of the most requested queries and page titles.
func (m *WikiMediator) Zeitgeist(limit int) []string {
	defer m.observe(OperationZeitgeist, time.Now(), nil)

	m.requests.Record(OperationZeitgeist)
	return m.subjects.Zeitgeist(limit)
}

// Trending returns up to limit of the most requested queries and page titles among those
// requested within the trailing window.
func (m *WikiMediator) Trending(limit int) []string {
	defer m.observe(OperationTrending, time.Now(), nil)

	m.requests.Record(OperationTrending)
	return m.subjects.Trending(limit, m.clock(), m.window)
}

// PeakLoad returns the largest number of requests served within any window. It is not itself
// counted as a request.
func (m *WikiMediator) PeakLoad() int {
	defer m.observe(OperationPeakLoad, time.Now(), nil)

	return m.requests.PeakLoad(m.window)
}

// TrendingSubjects returns the same subjects as Trending without counting the call as a request.
func (m *WikiMediator) TrendingSubjects(limit int) []string {
	return m.subjects.Trending(limit, m.clock(), m.window)
}

// TopSubjects returns up to limit of the most requested queries and page titles with their counts.
// It is a read-only view and is not counted as a request.
func (m *WikiMediator) TopSubjects(limit int) []analytics.SubjectCount {
	return m.subjects.TopCounts(limit)
}

// RequestCount returns the number of requests recorded since start.
func (m *WikiMediator) RequestCount() int {
	return m.requests.Len()
}

// CacheStats returns the statistics of the page and link caches.
func (m *WikiMediator) CacheStats() []cache.CacheStat {
	return []cache.CacheStat{m.pageCache.GetStats(), m.linkCache.GetStats()}
}

// links is the neighbor lookup of the graph explorer, memoised in the link cache.
func (m *WikiMediator) links(ctx context.Context, title string) ([]string, error) {
	if cached, err := m.linkCache.Get(title); err == nil {
		return cached.Targets, nil
	}

	targets, err := m.source.FetchLinks(ctx, title)
	if err != nil {
		if errors.Is(err, pagesource.ErrPageNotFound) {
			return []string{}, nil
		}
		return nil, err
	}
	m.linkCache.Put(cache.Links{Title: title, Targets: targets})
	return targets, nil
}

func (m *WikiMediator) observe(operation string, started time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	metrics.ObserveRequest(operation, started, err)
	if err != nil {
		m.logger.Debug("Operation failed", log.String("operation", operation), log.Error(err))
	}
}
