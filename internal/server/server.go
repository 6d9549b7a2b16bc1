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

// Package server provides the TCP front-end that serves newline delimited JSON requests.
package server

import (
	"bufio"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/asgardeo/wikimediator/internal/mediator"
	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

const (
	loggerComponentName = "RequestServer"
	maxRequestSize      = 1024 * 1024

	defaultMaxConnections = 32
	defaultRequestTimeout = 10 * time.Minute
)

// ErrServerClosed is returned by Serve after Shutdown has been called.
var ErrServerClosed = errors.New("server: server closed")

// Server accepts client connections and serves each of them on its own goroutine.
type Server struct {
	cfg            config.ServerConfig
	handler        *RequestHandler
	slots          chan struct{}
	requestTimeout time.Duration
	tlsConfig      *tls.Config

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closed   bool
	wg       sync.WaitGroup
}

// Option configures a Server.
type Option func(*Server)

// WithTLSConfig makes Start serve connections over TLS.
func WithTLSConfig(tlsConfig *tls.Config) Option {
	return func(s *Server) {
		s.tlsConfig = tlsConfig
	}
}

// NewServer creates a request server backed by the given mediator.
func NewServer(cfg config.ServerConfig, m mediator.WikiMediatorInterface, opts ...Option) *Server {
	maxConnections := cfg.MaxConnections
	if maxConnections <= 0 {
		maxConnections = defaultMaxConnections
	}
	requestTimeout := time.Duration(cfg.RequestTimeout) * time.Second
	if cfg.RequestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	s := &Server{
		cfg:            cfg,
		handler:        NewRequestHandler(m),
		slots:          make(chan struct{}, maxConnections),
		requestTimeout: requestTimeout,
		conns:          make(map[net.Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start listens on the configured address and serves connections until Shutdown is called.
func (s *Server) Start() error {
	address := net.JoinHostPort(s.cfg.Hostname, strconv.Itoa(s.cfg.Port))
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	if s.tlsConfig != nil {
		ln = tls.NewListener(ln, s.tlsConfig)
	}
	return s.Serve(ln)
}

// Serve accepts connections on the listener. It blocks until the listener fails or the
// server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrServerClosed
	}
	s.listener = ln
	s.mu.Unlock()

	logger.Info("Request server started", log.String("address", ln.Addr().String()),
		log.Int("maxConnections", cap(s.slots)))

	for {
		// A slot is taken before accepting so that excess clients wait in the listen backlog.
		s.slots <- struct{}{}

		conn, err := ln.Accept()
		if err != nil {
			<-s.slots
			if s.isClosed() {
				return ErrServerClosed
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				logger.Warn("Temporary error while accepting a connection", log.Error(err))
				continue
			}
			return fmt.Errorf("failed to accept connection: %w", err)
		}

		if !s.track(conn) {
			_ = conn.Close()
			<-s.slots
			return ErrServerClosed
		}

		go func() {
			defer func() {
				s.untrack(conn)
				<-s.slots
			}()
			s.serveConn(conn)
		}()
	}
}

// Addr returns the address the server is listening on, or nil before Serve is called.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting connections, closes the open ones and waits for their
// goroutines to finish or for the context to end.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) serveConn(conn net.Conn) {
	connectionID := uuid.NewString()
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyConnectionID, connectionID))

	metrics.ConnectionOpened()
	defer metrics.ConnectionClosed()
	defer func() {
		if err := conn.Close(); err != nil && !s.isClosed() {
			logger.Debug("Failed to close connection", log.Error(err))
		}
	}()

	logger.Debug("Connection accepted", log.String("remoteAddress", conn.RemoteAddr().String()))

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestSize)
	writer := bufio.NewWriter(conn)
	encoder := json.NewEncoder(writer)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.requestTimeout)
		resp := s.handler.HandleLine(ctx, line)
		cancel()

		if err := encoder.Encode(resp); err != nil {
			logger.Debug("Failed to encode response", log.Error(err))
			return
		}
		if err := writer.Flush(); err != nil {
			logger.Debug("Failed to write response", log.Error(err))
			return
		}
	}

	if err := scanner.Err(); err != nil && !s.isClosed() {
		logger.Debug("Connection closed with error", log.Error(err))
		return
	}
	logger.Debug("Connection closed by client")
}

func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	s.wg.Done()
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
