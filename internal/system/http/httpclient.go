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

// Package http provides a centralized HTTP client for making outbound requests to page sources.
package http

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/asgardeo/wikimediator/internal/system/constants"
)

const defaultTimeout = 30 * time.Second

// HTTPClientInterface defines the interface for HTTP client operations.
type HTTPClientInterface interface {
	// Do executes an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// HTTPClient implements HTTPClientInterface. Every request waits on the limiter, when one is
// configured, and carries the configured User-Agent unless the request already sets one.
type HTTPClient struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout sets the overall request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = timeout
	}
}

// WithRateLimit bounds the outbound request rate. A non-positive limit disables limiting.
func WithRateLimit(limit float64, burst int) Option {
	return func(c *HTTPClient) {
		if limit <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *HTTPClient) {
		c.userAgent = userAgent
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *HTTPClient) {
		c.client.Transport = transport
	}
}

// NewHTTPClient creates a new HTTPClient with the given options applied over the defaults.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes an HTTP request and returns an HTTP response.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	if c.userAgent != "" && req.Header.Get(constants.UserAgentHeaderName) == "" {
		req.Header.Set(constants.UserAgentHeaderName, c.userAgent)
	}
	return c.client.Do(req)
}
