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

package config

import (
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) BeforeTest(suiteName, testName string) {
	runtimeConfig = nil
	once = sync.Once{}
}

func (suite *RuntimeConfigTestSuite) TestInitializeServerRuntime() {
	config := &Config{
		Server: ServerConfig{Hostname: "testhost", Port: 9000},
		Cache:  CacheConfig{Page: CacheProperty{Size: 10, TTL: 60}},
	}

	err := InitializeServerRuntime("/test/wikimediator/home", config)
	assert.NoError(suite.T(), err)

	runtime := GetServerRuntime()
	assert.Equal(suite.T(), "/test/wikimediator/home", runtime.ServerHome)
	assert.Equal(suite.T(), "testhost", runtime.Config.Server.Hostname)
	assert.Equal(suite.T(), 10, runtime.Config.Cache.Page.Size)
}

func (suite *RuntimeConfigTestSuite) TestInitializeServerRuntimeOnlyOnce() {
	_ = InitializeServerRuntime("/first/path", &Config{Server: ServerConfig{Port: 8000}})
	_ = InitializeServerRuntime("/second/path", &Config{Server: ServerConfig{Port: 9000}})

	runtime := GetServerRuntime()
	assert.Equal(suite.T(), "/first/path", runtime.ServerHome)
	assert.Equal(suite.T(), 8000, runtime.Config.Server.Port)
}

func (suite *RuntimeConfigTestSuite) TestInitializeServerRuntimeMakesHomeAbsolute() {
	err := InitializeServerRuntime("relative/home", &Config{})
	assert.NoError(suite.T(), err)

	home := GetServerRuntime().ServerHome
	assert.True(suite.T(), filepath.IsAbs(home))
	assert.True(suite.T(), strings.HasSuffix(home, filepath.Join("relative", "home")))
}

func (suite *RuntimeConfigTestSuite) TestInitializeServerRuntimeRejectsMissingInput() {
	err := InitializeServerRuntime("/home", nil)
	assert.ErrorIs(suite.T(), err, ErrInvalidConfig)

	err = InitializeServerRuntime("", &Config{})
	assert.ErrorIs(suite.T(), err, ErrInvalidConfig)

	assert.Nil(suite.T(), runtimeConfig)
}

func (suite *RuntimeConfigTestSuite) TestResolvePath() {
	testCases := []struct {
		name     string
		file     string
		expected string
	}{
		{"Relative", "repository/resources/security/server.cert", "/srv/wiki/repository/resources/security/server.cert"},
		{"Absolute", "/etc/wiki/server.key", "/etc/wiki/server.key"},
		{"Empty", "", ""},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, ResolvePath("/srv/wiki", tc.file))
		})
	}
}

func (suite *RuntimeConfigTestSuite) TestGetServerRuntimePanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		GetServerRuntime()
	})
}

func (suite *RuntimeConfigTestSuite) TestResetServerRuntime() {
	_ = InitializeServerRuntime("/path", &Config{})
	ResetServerRuntime()

	assert.Nil(suite.T(), runtimeConfig)
	_ = InitializeServerRuntime("/other", &Config{})
	assert.Equal(suite.T(), "/other", GetServerRuntime().ServerHome)
}
