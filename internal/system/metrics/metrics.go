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

// Package metrics defines the Prometheus collectors exported by the mediator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wikimediator"

// Request outcome labels.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Cache result labels.
const (
	CacheResultHit     = "hit"
	CacheResultMiss    = "miss"
	CacheResultExpired = "expired"
	CacheResultEvicted = "evicted"
)

// Path search outcome labels.
const (
	PathOutcomeFound    = "found"
	PathOutcomeNotFound = "not_found"
	PathOutcomeDeadline = "deadline"
	PathOutcomeError    = "error"
)

var (
	// requestsTotal counts mediator operations.
	// Labels: operation, status (success, failure)
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "mediator",
		Name:      "requests_total",
		Help:      "Total mediator operations by operation and status",
	}, []string{"operation", "status"})

	// requestDuration measures mediator operation latency.
	// Labels: operation
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "mediator",
		Name:      "request_duration_seconds",
		Help:      "Mediator operation latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
	}, []string{"operation"})

	// cacheOperations counts cache lookups and removals.
	// Labels: cache, result (hit, miss, expired, evicted)
	cacheOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "operations_total",
		Help:      "Cache lookups and removals by result",
	}, []string{"cache", "result"})

	// pathSearches counts shortest path searches by outcome.
	// Labels: outcome (found, not_found, deadline, error)
	pathSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "graph",
		Name:      "path_searches_total",
		Help:      "Shortest path searches by outcome",
	}, []string{"outcome"})

	// pageSourceRequests counts calls to the upstream page source.
	// Labels: source, operation, status (success, failure)
	pageSourceRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "page_source",
		Name:      "requests_total",
		Help:      "Upstream page source calls by source, operation and status",
	}, []string{"source", "operation", "status"})

	// activeConnections tracks open client connections on the request server.
	activeConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "server",
		Name:      "active_connections",
		Help:      "Open client connections on the request server",
	})
)

func statusLabel(err error) string {
	if err != nil {
		return StatusFailure
	}
	return StatusSuccess
}

// ObserveRequest records a completed mediator operation.
func ObserveRequest(operation string, started time.Time, err error) {
	requestsTotal.WithLabelValues(operation, statusLabel(err)).Inc()
	requestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// RecordCacheResult records a cache lookup or removal.
func RecordCacheResult(cacheName, result string) {
	cacheOperations.WithLabelValues(cacheName, result).Inc()
}

// RecordPathSearch records the outcome of a shortest path search.
func RecordPathSearch(outcome string) {
	pathSearches.WithLabelValues(outcome).Inc()
}

// RecordPageSourceRequest records a call to the upstream page source.
func RecordPageSourceRequest(source, operation string, err error) {
	pageSourceRequests.WithLabelValues(source, operation, statusLabel(err)).Inc()
}

// ConnectionOpened increments the active connection gauge.
func ConnectionOpened() {
	activeConnections.Inc()
}

// ConnectionClosed decrements the active connection gauge.
func ConnectionClosed() {
	activeConnections.Dec()
}
