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

package provider

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/wikimediator/internal/system/config"
)

type DBProviderTestSuite struct {
	suite.Suite
}

func TestDBProviderSuite(t *testing.T) {
	suite.Run(t, new(DBProviderTestSuite))
}

func (suite *DBProviderTestSuite) TestGetDBConfigPostgres() {
	provider := NewDBProvider(config.DataSource{
		Type:     "postgres",
		Hostname: "db",
		Port:     5432,
		Name:     "pages",
		Username: "wiki",
		Password: "secret",
		SSLMode:  "disable",
	}, "/home")

	cfg, err := provider.getDBConfig()

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "postgres", cfg.driverName)
	assert.Equal(suite.T(), "host=db port=5432 user=wiki password=secret dbname=pages sslmode=disable", cfg.dsn)
}

func (suite *DBProviderTestSuite) TestGetDBConfigSQLite() {
	testCases := []struct {
		name     string
		path     string
		options  string
		expected string
	}{
		{"RelativePath", "repository/database/pages.db", "", "/home/repository/database/pages.db"},
		{"AbsolutePath", "/var/pages.db", "", "/var/pages.db"},
		{"OptionsWithoutPrefix", "pages.db", "_pragma=foreign_keys(1)", "/home/pages.db?_pragma=foreign_keys(1)"},
		{"OptionsWithPrefix", "pages.db", "?mode=ro", "/home/pages.db?mode=ro"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			provider := NewDBProvider(config.DataSource{Type: "sqlite", Path: tc.path, Options: tc.options}, "/home")
			cfg, err := provider.getDBConfig()

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), "sqlite", cfg.driverName)
			assert.Equal(suite.T(), tc.expected, cfg.dsn)
		})
	}
}

func (suite *DBProviderTestSuite) TestGetDBClientUnsupportedType() {
	provider := NewDBProvider(config.DataSource{Type: "oracle"}, "/home")

	dbClient, err := provider.GetDBClient(context.Background())

	assert.Nil(suite.T(), dbClient)
	assert.ErrorContains(suite.T(), err, "unsupported database type")
}

func (suite *DBProviderTestSuite) TestGetDBClientReusesConnection() {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(suite.T(), err)
	mock.ExpectPing()
	mock.ExpectClose()

	opened := 0
	provider := NewDBProvider(config.DataSource{Type: "sqlite", Path: "pages.db"}, "/home")
	provider.openFunc = func(driverName, dsn string) (*sql.DB, error) {
		opened++
		assert.Equal(suite.T(), "sqlite", driverName)
		return mockDB, nil
	}

	first, err := provider.GetDBClient(context.Background())
	assert.NoError(suite.T(), err)
	second, err := provider.GetDBClient(context.Background())
	assert.NoError(suite.T(), err)

	assert.Same(suite.T(), first, second)
	assert.Equal(suite.T(), 1, opened)
	assert.NoError(suite.T(), provider.Close())
	assert.NoError(suite.T(), mock.ExpectationsWereMet())
}

func (suite *DBProviderTestSuite) TestGetDBClientPingFailure() {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	assert.NoError(suite.T(), err)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectClose()

	provider := NewDBProvider(config.DataSource{Type: "sqlite", Path: "pages.db", Name: "pages"}, "/home")
	provider.openFunc = func(driverName, dsn string) (*sql.DB, error) {
		return mockDB, nil
	}

	dbClient, err := provider.GetDBClient(context.Background())

	assert.Nil(suite.T(), dbClient)
	assert.ErrorContains(suite.T(), err, "failed to ping database pages")
	assert.NoError(suite.T(), mock.ExpectationsWereMet())
}

func (suite *DBProviderTestSuite) TestCloseWithoutClient() {
	provider := NewDBProvider(config.DataSource{Type: "sqlite"}, "/home")
	assert.NoError(suite.T(), provider.Close())
}
