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

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// HTTPClientTestSuite defines the test suite for HTTP client service.
type HTTPClientTestSuite struct {
	suite.Suite
}

// TestHTTPClientSuite runs the HTTP client test suite.
func TestHTTPClientSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithDefaultSettings() {
	client := NewHTTPClient()
	assert.NotNil(suite.T(), client)
	assert.Implements(suite.T(), (*HTTPClientInterface)(nil), client)
	assert.Equal(suite.T(), 30*time.Second, client.client.Timeout)
	assert.Nil(suite.T(), client.limiter)
}

func (suite *HTTPClientTestSuite) TestNewHTTPClientWithOptions() {
	client := NewHTTPClient(WithTimeout(5*time.Second), WithRateLimit(2, 0), WithUserAgent("agent"))

	assert.Equal(suite.T(), 5*time.Second, client.client.Timeout)
	assert.NotNil(suite.T(), client.limiter)
	assert.Equal(suite.T(), 1, client.limiter.Burst())
	assert.Equal(suite.T(), "agent", client.userAgent)
}

func (suite *HTTPClientTestSuite) TestWithRateLimitDisabled() {
	client := NewHTTPClient(WithRateLimit(5, 5), WithRateLimit(0, 5))
	assert.Nil(suite.T(), client.limiter)
}

func (suite *HTTPClientTestSuite) TestDoSetsUserAgent() {
	var received string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("test response"))
	}))
	defer testServer.Close()

	client := NewHTTPClient(WithUserAgent("WikiMediator/test"))
	req, err := http.NewRequest(http.MethodGet, testServer.URL, nil)
	assert.NoError(suite.T(), err)

	resp, err := client.Do(req)
	assert.NoError(suite.T(), err)
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "test response", string(body))
	assert.Equal(suite.T(), "WikiMediator/test", received)
}

func (suite *HTTPClientTestSuite) TestDoKeepsExplicitUserAgent() {
	var received string
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Header.Get("User-Agent")
	}))
	defer testServer.Close()

	client := NewHTTPClient(WithUserAgent("WikiMediator/test"))
	req, _ := http.NewRequest(http.MethodGet, testServer.URL, nil)
	req.Header.Set("User-Agent", "custom")

	resp, err := client.Do(req)
	assert.NoError(suite.T(), err)
	_ = resp.Body.Close()
	assert.Equal(suite.T(), "custom", received)
}

func (suite *HTTPClientTestSuite) TestDoRateLimitHonorsContext() {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer testServer.Close()

	client := NewHTTPClient(WithRateLimit(0.001, 1))
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, testServer.URL, nil)
	resp, err := client.Do(req)
	assert.NoError(suite.T(), err)
	_ = resp.Body.Close()

	// The single token is spent; the next wait cannot complete before the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req, _ = http.NewRequestWithContext(ctx, http.MethodGet, testServer.URL, nil)
	_, err = client.Do(req)
	assert.Error(suite.T(), err)
}
