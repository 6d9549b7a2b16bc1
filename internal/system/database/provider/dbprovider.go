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

// Package provider provides functionality for managing database connections and clients.
package provider

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/internal/system/database/client"
	"github.com/asgardeo/wikimediator/internal/system/database/model"
	"github.com/asgardeo/wikimediator/internal/system/log"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	dataSourceTypePostgres = "postgres"
	dataSourceTypeSQLite   = "sqlite"
)

// dbConfig represents the local database configuration.
type dbConfig struct {
	dsn        string
	driverName string
}

// DBProviderInterface defines the interface for getting database clients.
type DBProviderInterface interface {
	GetDBClient(ctx context.Context) (client.DBClientInterface, error)
	Close() error
}

// DBProvider lazily opens a single database client for the configured data source.
type DBProvider struct {
	dataSource config.DataSource
	serverHome string
	dbClient   client.DBClientInterface
	mu         sync.RWMutex
	openFunc   func(driverName, dsn string) (*sql.DB, error)
}

// NewDBProvider creates a provider for the given data source. Relative SQLite paths are
// resolved against serverHome.
func NewDBProvider(dataSource config.DataSource, serverHome string) *DBProvider {
	return &DBProvider{
		dataSource: dataSource,
		serverHome: serverHome,
		openFunc:   sql.Open,
	}
}

// GetDBClient returns the database client, opening the connection on first use.
// Not required to close the returned client manually since the provider owns it.
func (d *DBProvider) GetDBClient(ctx context.Context) (client.DBClientInterface, error) {
	d.mu.RLock()
	if d.dbClient != nil {
		dbClient := d.dbClient
		d.mu.RUnlock()
		return dbClient, nil
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.dbClient != nil {
		return d.dbClient, nil
	}

	dbClient, err := d.initializeClient(ctx)
	if err != nil {
		return nil, err
	}
	d.dbClient = dbClient
	return dbClient, nil
}

// initializeClient opens the connection pool and verifies it.
func (d *DBProvider) initializeClient(ctx context.Context) (client.DBClientInterface, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBProvider"))

	dbConfig, err := d.getDBConfig()
	if err != nil {
		return nil, err
	}
	dbName := d.dataSource.Name

	db, err := d.openFunc(dbConfig.driverName, dbConfig.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database %s: %w", dbName, err)
	}

	if d.dataSource.MaxOpenConns > 0 {
		db.SetMaxOpenConns(d.dataSource.MaxOpenConns)
	}
	if d.dataSource.MaxIdleConns > 0 {
		db.SetMaxIdleConns(d.dataSource.MaxIdleConns)
	}
	db.SetConnMaxLifetime(time.Duration(d.dataSource.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to ping database %s: %w (close error: %w)", dbName, err, closeErr)
		}
		return nil, fmt.Errorf("failed to ping database %s: %w", dbName, err)
	}

	logger.Debug("Database client initialized", log.String("driver", dbConfig.driverName))
	return client.NewDBClient(model.NewDB(db), dbConfig.driverName), nil
}

// getDBConfig returns the database configuration based on the provided data source.
func (d *DBProvider) getDBConfig() (dbConfig, error) {
	var cfg dbConfig
	dataSource := d.dataSource

	switch dataSource.Type {
	case dataSourceTypePostgres:
		cfg.driverName = dataSourceTypePostgres
		cfg.dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dataSource.Hostname, dataSource.Port, dataSource.Username, dataSource.Password,
			dataSource.Name, dataSource.SSLMode)
	case dataSourceTypeSQLite:
		cfg.driverName = dataSourceTypeSQLite
		options := dataSource.Options
		if options != "" && options[0] != '?' {
			options = "?" + options
		}
		cfg.dsn = config.ResolvePath(d.serverHome, dataSource.Path) + options
	default:
		return cfg, fmt.Errorf("unsupported database type: %s", dataSource.Type)
	}

	return cfg, nil
}

// Close closes the database connection if it was opened.
func (d *DBProvider) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.dbClient == nil {
		return nil
	}
	err := d.dbClient.Close()
	d.dbClient = nil
	if err != nil {
		return fmt.Errorf("failed to close database client: %w", err)
	}
	return nil
}
