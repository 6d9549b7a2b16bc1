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

// Package main is the entry point for starting the WikiMediator server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/asgardeo/wikimediator/internal/cert"
	"github.com/asgardeo/wikimediator/internal/server"
	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/internal/system/constants"
	"github.com/asgardeo/wikimediator/internal/system/log"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := log.GetLogger()
	defer logger.Sync()

	serverHome := getServerHome(logger)

	cfg := initServerConfigurations(logger, serverHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	services, err := newServiceManager(cfg, config.GetServerRuntime().ServerHome)
	if err != nil {
		logger.Fatal("Failed to initialize services", log.Error(err))
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Error("Failed to release service resources", log.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, logger, cfg, services)
}

// getServerHome retrieves and returns the server home directory.
func getServerHome(logger *log.Logger) string {
	projectHome := ""
	projectHomeFlag := flag.String("home", "", "Path to the WikiMediator home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		logger.Info("Using server home from command line argument", log.String("home", *projectHomeFlag))
		projectHome = *projectHomeFlag
	} else if envHome := os.Getenv(constants.ServerHomeEnvironmentVariable); envHome != "" {
		logger.Info("Using server home from environment", log.String("home", envHome))
		projectHome = envHome
	} else {
		// If no home is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		projectHome = dir
	}

	return projectHome
}

// initServerConfigurations loads the deployment configuration and initializes the runtime.
func initServerConfigurations(logger *log.Logger, serverHome string) *config.Config {
	configFilePath := path.Join(serverHome, constants.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeServerRuntime(serverHome, cfg); err != nil {
		logger.Fatal("Failed to initialize server runtime", log.Error(err))
	}

	return cfg
}

// run starts the request and management servers and blocks until the context ends or a
// server fails.
func run(ctx context.Context, logger *log.Logger, cfg *config.Config, services *serviceManager) {
	errCh := make(chan error, 2)

	var serverOpts []server.Option
	if cfg.Server.TLS.Enabled {
		tlsConfig, err := cert.GetTLSConfig(cfg.Server.TLS, config.GetServerRuntime().ServerHome)
		if err != nil {
			logger.Fatal("Failed to load TLS configuration", log.Error(err))
		}
		serverOpts = append(serverOpts, server.WithTLSConfig(tlsConfig))
	}

	requestServer := server.NewServer(cfg.Server, services.mediator, serverOpts...)
	go func() {
		if err := requestServer.Start(); err != nil && !errors.Is(err, server.ErrServerClosed) {
			errCh <- fmt.Errorf("request server: %w", err)
		}
	}()

	var managementServer *http.Server
	if !cfg.Management.Disabled {
		managementServer = createManagementServer(logger, cfg, services.managementMux())
		go func() {
			logger.Info("Management server started", log.String("address", managementServer.Addr))
			if err := managementServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("management server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errCh:
		logger.Error("Server failed", log.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := requestServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down request server", log.Error(err))
	}
	if managementServer != nil {
		if err := managementServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down management server", log.Error(err))
		}
	}
	logger.Info("WikiMediator stopped")
}

// createManagementServer creates the HTTP server for health, statistics and metrics.
func createManagementServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) *http.Server {
	// Wrap the multiplexer with AccessLogHandler.
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Management.Hostname, cfg.Management.Port)

	return &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
