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

// Package stats provides the HTTP handlers exposing request statistics on the management server.
package stats

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/asgardeo/wikimediator/internal/analytics"
	"github.com/asgardeo/wikimediator/internal/cache"
	"github.com/asgardeo/wikimediator/internal/mediator"
	"github.com/asgardeo/wikimediator/internal/stats/constants"
	sysconstants "github.com/asgardeo/wikimediator/internal/system/constants"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/middleware"
)

const loggerComponentName = "StatsHandler"

// ZeitgeistResponse is the response of the zeitgeist endpoint.
type ZeitgeistResponse struct {
	Subjects []analytics.SubjectCount `json:"subjects"`
}

// TrendingResponse is the response of the trending endpoint.
type TrendingResponse struct {
	Window   string   `json:"window"`
	Subjects []string `json:"subjects"`
}

// PeakLoadResponse is the response of the peak load endpoint.
type PeakLoadResponse struct {
	Window   string `json:"window"`
	PeakLoad int    `json:"peakLoad"`
	Requests int    `json:"requests"`
}

// CacheStatsResponse is the response of the cache statistics endpoint.
type CacheStatsResponse struct {
	Caches []cache.CacheStat `json:"caches"`
}

// StatsHandler serves the statistics endpoints.
type StatsHandler struct {
	mediator mediator.WikiMediatorInterface
	window   time.Duration
}

// NewStatsHandler creates a statistics handler for the given mediator. The window is reported
// alongside the windowed statistics.
func NewStatsHandler(m mediator.WikiMediatorInterface, window time.Duration) *StatsHandler {
	return &StatsHandler{
		mediator: m,
		window:   window,
	}
}

// RegisterRoutes registers the statistics routes on the multiplexer.
func (h *StatsHandler) RegisterRoutes(mux *http.ServeMux, corsOpts middleware.CORSOptions) {
	routes := map[string]http.HandlerFunc{
		"/stats/zeitgeist": h.HandleZeitgeistRequest,
		"/stats/trending":  h.HandleTrendingRequest,
		"/stats/peak-load": h.HandlePeakLoadRequest,
		"/stats/cache":     h.HandleCacheStatsRequest,
	}
	for path, handler := range routes {
		mux.HandleFunc(middleware.WithCORS("OPTIONS "+path, middleware.Preflight, corsOpts))
		mux.HandleFunc(middleware.WithCORS("GET "+path, handler, corsOpts))
	}
}

// HandleZeitgeistRequest returns the most requested subjects with their counts.
func (h *StatsHandler) HandleZeitgeistRequest(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	subjects := h.mediator.TopSubjects(limit)
	if subjects == nil {
		subjects = []analytics.SubjectCount{}
	}
	writeJSON(w, http.StatusOK, ZeitgeistResponse{Subjects: subjects})
}

// HandleTrendingRequest returns the most requested subjects in the trailing window. Reading the
// statistics does not count as a request.
func (h *StatsHandler) HandleTrendingRequest(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	subjects := h.mediator.TrendingSubjects(limit)
	if subjects == nil {
		subjects = []string{}
	}
	writeJSON(w, http.StatusOK, TrendingResponse{Window: h.window.String(), Subjects: subjects})
}

// HandlePeakLoadRequest returns the highest number of requests seen in any window, together with
// the number of requests recorded so far.
func (h *StatsHandler) HandlePeakLoadRequest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PeakLoadResponse{
		Window:   h.window.String(),
		PeakLoad: h.mediator.PeakLoad(),
		Requests: h.mediator.RequestCount(),
	})
}

// HandleCacheStatsRequest returns the statistics of the mediator caches.
func (h *StatsHandler) HandleCacheStatsRequest(w http.ResponseWriter, r *http.Request) {
	caches := h.mediator.CacheStats()
	if caches == nil {
		caches = []cache.CacheStat{}
	}
	writeJSON(w, http.StatusOK, CacheStatsResponse{Caches: caches})
}

func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return sysconstants.DefaultPageSize, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 || limit > sysconstants.MaxPageSize {
		writeJSON(w, http.StatusBadRequest, constants.ErrorInvalidLimit)
		return 0, false
	}
	return limit, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	w.Header().Set(sysconstants.ContentTypeHeaderName, sysconstants.ContentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}
