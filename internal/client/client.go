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

// Package client provides a client for the request server.
package client

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asgardeo/wikimediator/internal/server"
)

// ErrRequestFailed is returned when the server answers a request with a failed status.
var ErrRequestFailed = errors.New("request failed")

// Client sends requests over a single connection. Requests are serialized.
type Client struct {
	conn    net.Conn
	reader  *bufio.Reader
	encoder *json.Encoder
	mu      sync.Mutex
}

type dialOptions struct {
	tlsConfig *tls.Config
}

// DialOption configures Dial.
type DialOption func(*dialOptions)

// WithTLS connects over TLS with the given configuration.
func WithTLS(tlsConfig *tls.Config) DialOption {
	return func(o *dialOptions) {
		o.tlsConfig = tlsConfig
	}
}

// Dial connects to the request server at the given address.
func Dial(ctx context.Context, address string, opts ...DialOption) (*Client, error) {
	o := dialOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	var conn net.Conn
	var err error
	if o.tlsConfig != nil {
		dialer := tls.Dialer{Config: o.tlsConfig}
		conn, err = dialer.DialContext(ctx, "tcp", address)
	} else {
		var dialer net.Dialer
		conn, err = dialer.DialContext(ctx, "tcp", address)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	return NewClient(conn), nil
}

// NewClient creates a client over an established connection.
func NewClient(conn net.Conn) *Client {
	return &Client{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		encoder: json.NewEncoder(conn),
	}
}

// Do sends the request and waits for its response. A request without an id is given a
// random one. The context deadline, if any, bounds the whole exchange.
func (c *Client) Do(ctx context.Context, req server.Request) (*server.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.ID.IsZero() {
		req.ID = server.NewRequestID(uuid.NewString())
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Time{}
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set connection deadline: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.SetDeadline(time.Now())
	})
	defer stop()

	if err := c.encoder.Encode(req); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", c.contextError(ctx, err))
	}

	line, err := c.reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", c.contextError(ctx, err))
	}

	var resp server.Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.Status != server.StatusSuccess {
		return &resp, fmt.Errorf("%w: %s: %v", ErrRequestFailed, resp.Code, resp.Response)
	}
	return &resp, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) contextError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
