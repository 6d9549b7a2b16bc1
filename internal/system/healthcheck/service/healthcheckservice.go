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

// Package service provides the readiness checks of the server dependencies.
package service

import (
	"context"
	"time"

	"github.com/asgardeo/wikimediator/internal/system/database/provider"
	"github.com/asgardeo/wikimediator/internal/system/healthcheck/model"
	"github.com/asgardeo/wikimediator/internal/system/log"
)

const checkTimeout = 5 * time.Second

// DependencyCheck probes a single dependency. A nil error means the dependency is up.
type DependencyCheck struct {
	Name  string
	Probe func(ctx context.Context) error
}

// HealthCheckServiceInterface defines the interface for the health check service.
type HealthCheckServiceInterface interface {
	CheckReadiness(ctx context.Context) model.ServerStatus
}

// HealthCheckService runs the registered dependency checks.
type HealthCheckService struct {
	checks []DependencyCheck
}

// NewHealthCheckService creates a health check service with the given dependency checks.
func NewHealthCheckService(checks ...DependencyCheck) *HealthCheckService {
	return &HealthCheckService{checks: checks}
}

// DatabaseCheck returns a check that pings the database behind the provider.
func DatabaseCheck(name string, dbProvider provider.DBProviderInterface) DependencyCheck {
	return DependencyCheck{
		Name: name,
		Probe: func(ctx context.Context) error {
			dbClient, err := dbProvider.GetDBClient(ctx)
			if err != nil {
				return err
			}
			return dbClient.Ping(ctx)
		},
	}
}

// CheckReadiness checks the readiness of the server and its dependencies.
func (hcs *HealthCheckService) CheckReadiness(ctx context.Context) model.ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "HealthCheckService"))

	status := model.StatusUp
	statuses := make([]model.ServiceStatus, 0, len(hcs.checks))
	for _, check := range hcs.checks {
		checkCtx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := check.Probe(checkCtx)
		cancel()

		serviceStatus := model.ServiceStatus{ServiceName: check.Name, Status: model.StatusUp}
		if err != nil {
			logger.Error("Dependency check failed", log.String("service", check.Name), log.Error(err))
			serviceStatus.Status = model.StatusDown
			status = model.StatusDown
		}
		statuses = append(statuses, serviceStatus)
	}

	return model.ServerStatus{
		Status:        status,
		ServiceStatus: statuses,
	}
}
