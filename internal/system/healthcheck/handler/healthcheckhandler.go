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

// Package handler provides HTTP handlers for the health check endpoints.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/asgardeo/wikimediator/internal/system/constants"
	"github.com/asgardeo/wikimediator/internal/system/healthcheck/model"
	"github.com/asgardeo/wikimediator/internal/system/healthcheck/service"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/middleware"
)

// HealthCheckHandler defines the handler for health check requests.
type HealthCheckHandler struct {
	service service.HealthCheckServiceInterface
}

// NewHealthCheckHandler creates a new instance of HealthCheckHandler.
func NewHealthCheckHandler(healthCheckService service.HealthCheckServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{
		service: healthCheckService,
	}
}

// RegisterRoutes registers the health check routes on the multiplexer.
func (hch *HealthCheckHandler) RegisterRoutes(mux *http.ServeMux, corsOpts middleware.CORSOptions) {
	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/liveness", middleware.Preflight, corsOpts))
	mux.HandleFunc(middleware.WithCORS("GET /health/liveness", hch.HandleLivenessRequest, corsOpts))

	mux.HandleFunc(middleware.WithCORS("OPTIONS /health/readiness", middleware.Preflight, corsOpts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness", hch.HandleReadinessRequest, corsOpts))
}

// HandleLivenessRequest handles the health check liveness request.
func (hch *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))
	w.WriteHeader(http.StatusOK)
	logger.Debug("Health Check Liveness response sent")
}

// HandleReadinessRequest handles the health check readiness request.
func (hch *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckHandler"))

	serverStatus := hch.service.CheckReadiness(r.Context())

	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)
	if serverStatus.Status != model.StatusUp {
		logger.Error("Readiness check failed", log.String("serverStatus", string(serverStatus.Status)))
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(serverStatus); err != nil {
		logger.Error("Error while encoding readiness response", log.Error(err))
		return
	}

	logger.Debug("Health Check Readiness response sent")
}
