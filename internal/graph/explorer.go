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

// Package graph explores the implicit link graph between pages under hop and time bounds.
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

// ErrInvalidArgument is returned for a negative hop count.
var ErrInvalidArgument = errors.New("invalid graph argument")

// NeighborFunc returns the pages directly linked from pageID. Each call may reach the upstream source.
type NeighborFunc func(ctx context.Context, pageID string) ([]string, error)

type options struct {
	clock func() time.Time
}

// Option configures an Explorer.
type Option func(*options)

// WithClock overrides the time source used for deadline checks.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Explorer runs breadth-first searches over the graph exposed by a NeighborFunc.
// All traversal state is local to a single call, so an Explorer is safe for concurrent use.
type Explorer struct {
	neighbors NeighborFunc
	clock     func() time.Time
	logger    *log.Logger
}

// NewExplorer creates an explorer over the given neighbor lookup.
func NewExplorer(neighbors NeighborFunc, opts ...Option) *Explorer {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Explorer{
		neighbors: neighbors,
		clock:     o.clock,
		logger:    log.GetLogger().With(log.String(log.LoggerKeyComponentName, "GraphExplorer")),
	}
}

type frontierNode struct {
	id    string
	depth int
}

// Reachable returns every page reachable from start within maxHops links, in discovery order.
// start itself is never part of the result and each page is expanded at most once.
func (e *Explorer) Reachable(ctx context.Context, start string, maxHops int) ([]string, error) {
	if maxHops < 0 {
		return nil, fmt.Errorf("%w: hops must not be negative, got %d", ErrInvalidArgument, maxHops)
	}

	result := []string{}
	visited := map[string]struct{}{start: {}}
	queue := []frontierNode{{id: start, depth: 0}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current.depth >= maxHops {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		links, err := e.neighbors(ctx, current.id)
		if err != nil {
			return nil, fmt.Errorf("failed to expand page %q: %w", current.id, err)
		}
		for _, link := range links {
			if _, seen := visited[link]; seen {
				continue
			}
			visited[link] = struct{}{}
			result = append(result, link)
			queue = append(queue, frontierNode{id: link, depth: current.depth + 1})
		}
	}

	e.logger.Debug("Reachability search completed", log.String("start", start),
		log.Int("hops", maxHops), log.Int("reached", len(result)))
	return result, nil
}

// ShortestPath returns a minimal chain of pages leading from start to stop, both included.
// An empty path is returned when stop is unreachable or when the deadline passes before stop is
// found; the deadline is checked before each page is expanded. A zero deadline means no limit.
func (e *Explorer) ShortestPath(ctx context.Context, start, stop string, deadline time.Time) ([]string, error) {
	if start == stop {
		metrics.RecordPathSearch(metrics.PathOutcomeFound)
		return []string{start}, nil
	}

	parent := map[string]string{}
	visited := map[string]struct{}{start: {}}
	queue := []string{start}
	expanded := 0

	for len(queue) > 0 {
		if !deadline.IsZero() && e.clock().After(deadline) {
			e.logger.Debug("Path search deadline exceeded", log.String("start", start),
				log.String("stop", stop), log.Int("expanded", expanded))
			metrics.RecordPathSearch(metrics.PathOutcomeDeadline)
			return []string{}, nil
		}
		if err := ctx.Err(); err != nil {
			metrics.RecordPathSearch(metrics.PathOutcomeError)
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]

		links, err := e.neighbors(ctx, current)
		if err != nil {
			metrics.RecordPathSearch(metrics.PathOutcomeError)
			return nil, fmt.Errorf("failed to expand page %q: %w", current, err)
		}
		expanded++

		for _, link := range links {
			if _, seen := visited[link]; seen {
				continue
			}
			visited[link] = struct{}{}
			parent[link] = current

			if link == stop {
				path := buildPath(parent, start, stop)
				e.logger.Debug("Path found", log.String("start", start), log.String("stop", stop),
					log.Int("length", len(path)), log.Int("expanded", expanded))
				metrics.RecordPathSearch(metrics.PathOutcomeFound)
				return path, nil
			}
			queue = append(queue, link)
		}
	}

	metrics.RecordPathSearch(metrics.PathOutcomeNotFound)
	return []string{}, nil
}

// buildPath follows parent pointers back from stop and returns the path in forward order.
func buildPath(parent map[string]string, start, stop string) []string {
	path := []string{stop}
	for node := stop; node != start; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
