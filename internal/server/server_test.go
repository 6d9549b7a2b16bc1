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

package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/tests/mocks/mediatormock"
)

type ServerTestSuite struct {
	suite.Suite
	mockMediator *mediatormock.WikiMediatorInterfaceMock
	server       *Server
	address      string
	served       chan error
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (suite *ServerTestSuite) SetupTest() {
	suite.mockMediator = mediatormock.NewWikiMediatorInterfaceMock(suite.T())
}

func (suite *ServerTestSuite) TearDownTest() {
	if suite.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = suite.server.Shutdown(ctx)
	suite.server = nil
}

func (suite *ServerTestSuite) start(maxConnections int) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	suite.Require().NoError(err)

	suite.server = NewServer(config.ServerConfig{MaxConnections: maxConnections, RequestTimeout: 5},
		suite.mockMediator)
	suite.address = ln.Addr().String()
	suite.served = make(chan error, 1)
	go func() {
		suite.served <- suite.server.Serve(ln)
	}()
}

func (suite *ServerTestSuite) dial() (net.Conn, *bufio.Reader) {
	conn, err := net.DialTimeout("tcp", suite.address, 2*time.Second)
	suite.Require().NoError(err)
	return conn, bufio.NewReader(conn)
}

func (suite *ServerTestSuite) roundTrip(conn net.Conn, reader *bufio.Reader, line string) map[string]interface{} {
	_, err := conn.Write([]byte(line + "\n"))
	suite.Require().NoError(err)
	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	data, err := reader.ReadBytes('\n')
	suite.Require().NoError(err)

	var resp map[string]interface{}
	suite.Require().NoError(json.Unmarshal(data, &resp))
	return resp
}

func (suite *ServerTestSuite) TestServesSequentialRequestsOnOneConnection() {
	suite.mockMediator.EXPECT().Search(mock.Anything, "Go", 2).Return([]string{"Go", "Gopher"}, nil).Once()
	suite.mockMediator.EXPECT().PeakLoad().Return(1).Once()
	suite.start(4)

	conn, reader := suite.dial()
	defer func() { _ = conn.Close() }()

	first := suite.roundTrip(conn, reader, `{"id":"1","type":"search","query":"Go","limit":2}`)
	second := suite.roundTrip(conn, reader, `{"id":"2","type":"peakLoad"}`)

	assert.Equal(suite.T(), "1", first["id"])
	assert.Equal(suite.T(), "success", first["status"])
	assert.Equal(suite.T(), []interface{}{"Go", "Gopher"}, first["response"])
	assert.Equal(suite.T(), "2", second["id"])
	assert.Equal(suite.T(), float64(1), second["response"])
}

func (suite *ServerTestSuite) TestMalformedLineKeepsConnectionOpen() {
	suite.mockMediator.EXPECT().PeakLoad().Return(0).Once()
	suite.start(4)

	conn, reader := suite.dial()
	defer func() { _ = conn.Close() }()

	bad := suite.roundTrip(conn, reader, `not json`)
	good := suite.roundTrip(conn, reader, `{"id":"2","type":"peakLoad"}`)

	assert.Equal(suite.T(), "failed", bad["status"])
	assert.Equal(suite.T(), "WM-1001", bad["code"])
	assert.Equal(suite.T(), "success", good["status"])
}

func (suite *ServerTestSuite) TestConnectionsBeyondLimitWait() {
	suite.mockMediator.EXPECT().PeakLoad().Return(0)
	suite.start(1)

	first, firstReader := suite.dial()
	suite.roundTrip(first, firstReader, `{"id":"1","type":"peakLoad"}`)

	second, secondReader := suite.dial()
	defer func() { _ = second.Close() }()
	_, err := second.Write([]byte(`{"id":"2","type":"peakLoad"}` + "\n"))
	suite.Require().NoError(err)

	suite.Require().NoError(second.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, err = secondReader.ReadBytes('\n')
	assert.Error(suite.T(), err)

	_ = first.Close()

	suite.Require().NoError(second.SetReadDeadline(time.Now().Add(2 * time.Second)))
	data, err := secondReader.ReadBytes('\n')
	suite.Require().NoError(err)
	assert.Contains(suite.T(), string(data), `"id":"2"`)
}

func (suite *ServerTestSuite) TestShutdownClosesConnections() {
	suite.start(4)

	conn, reader := suite.dial()
	defer func() { _ = conn.Close() }()

	// Wait until the connection has been accepted and tracked.
	suite.Require().Eventually(func() bool {
		suite.server.mu.Lock()
		defer suite.server.mu.Unlock()
		return len(suite.server.conns) == 1
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	suite.Require().NoError(suite.server.Shutdown(ctx))

	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, err := reader.ReadBytes('\n')
	assert.Error(suite.T(), err)

	select {
	case err := <-suite.served:
		assert.ErrorIs(suite.T(), err, ErrServerClosed)
	case <-time.After(2 * time.Second):
		suite.Fail("Serve did not return after shutdown")
	}
	suite.server = nil
}

func (suite *ServerTestSuite) TestServeAfterShutdown() {
	srv := NewServer(config.ServerConfig{}, suite.mockMediator)
	suite.Require().NoError(srv.Shutdown(context.Background()))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	suite.Require().NoError(err)

	assert.ErrorIs(suite.T(), srv.Serve(ln), ErrServerClosed)
	assert.Nil(suite.T(), srv.Addr())
}
