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

package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/asgardeo/wikimediator/internal/cache"
	"github.com/asgardeo/wikimediator/internal/mediator"
	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/pagesource/dbsource"
	"github.com/asgardeo/wikimediator/internal/pagesource/wikipedia"
	"github.com/asgardeo/wikimediator/internal/stats"
	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/internal/system/database/provider"
	healthhandler "github.com/asgardeo/wikimediator/internal/system/healthcheck/handler"
	healthservice "github.com/asgardeo/wikimediator/internal/system/healthcheck/service"
	"github.com/asgardeo/wikimediator/internal/system/middleware"
)

// serviceManager owns the long lived components shared by the request and management servers.
type serviceManager struct {
	cfg          *config.Config
	source       pagesource.PageSourceInterface
	mediator     *mediator.WikiMediator
	healthChecks []healthservice.DependencyCheck
	dbProvider   provider.DBProviderInterface
}

// newServiceManager builds the page source, caches and mediator from the configuration.
func newServiceManager(cfg *config.Config, serverHome string) (*serviceManager, error) {
	sm := &serviceManager{cfg: cfg}

	switch cfg.PageSource.Type {
	case config.PageSourceTypeWikipedia:
		sm.source = wikipedia.NewClientFromConfig(cfg.PageSource.Wikipedia)
	case config.PageSourceTypeDatabase:
		sm.dbProvider = provider.NewDBProvider(cfg.PageSource.Database, serverHome)
		sm.source = dbsource.NewStore(sm.dbProvider)
		sm.healthChecks = append(sm.healthChecks, healthservice.DatabaseCheck("PageDB", sm.dbProvider))
	default:
		return nil, fmt.Errorf("%w: unsupported page source type %q", config.ErrInvalidConfig, cfg.PageSource.Type)
	}

	pageCache, err := newCache[cache.Page]("page", cfg.Cache.Page)
	if err != nil {
		return nil, err
	}
	linkCache, err := newCache[cache.Links]("links", cfg.Cache.Links)
	if err != nil {
		return nil, err
	}

	sm.mediator = mediator.NewWikiMediator(sm.source,
		mediator.WithPageCache(pageCache),
		mediator.WithLinkCache(linkCache),
		mediator.WithWindow(time.Duration(cfg.Analytics.Window)*time.Second),
		mediator.WithPathTimeout(time.Duration(cfg.Graph.PathTimeout)*time.Second),
	)
	return sm, nil
}

func newCache[T cache.Cacheable](name string, property config.CacheProperty) (*cache.Cache[T], error) {
	if property.Disabled {
		return cache.NewDisabledCache[T](name), nil
	}
	c, err := cache.NewCache[T](name, property.Size, time.Duration(property.TTL)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cache: %w", name, err)
	}
	return c, nil
}

// managementMux registers the health, statistics and metrics routes.
func (sm *serviceManager) managementMux() *http.ServeMux {
	mux := http.NewServeMux()
	corsOpts := middleware.CORSOptions{
		AllowedOrigins: sm.cfg.Management.AllowedOrigins,
		AllowedMethods: "GET",
		AllowedHeaders: "Content-Type",
	}

	healthService := healthservice.NewHealthCheckService(sm.healthChecks...)
	healthhandler.NewHealthCheckHandler(healthService).RegisterRoutes(mux, corsOpts)
	stats.NewStatsHandler(sm.mediator, time.Duration(sm.cfg.Analytics.Window)*time.Second).
		RegisterRoutes(mux, corsOpts)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// Close releases the resources held by the services.
func (sm *serviceManager) Close() error {
	if sm.dbProvider != nil {
		return sm.dbProvider.Close()
	}
	return nil
}
