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
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/wikimediator/internal/client"
	"github.com/asgardeo/wikimediator/internal/server"
	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/tests/mocks/mediatormock"
)

type CommandsTestSuite struct {
	suite.Suite
	mockMediator *mediatormock.WikiMediatorInterfaceMock
	server       *server.Server
	address      string
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}

func (suite *CommandsTestSuite) SetupTest() {
	suite.mockMediator = mediatormock.NewWikiMediatorInterfaceMock(suite.T())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	suite.Require().NoError(err)
	suite.address = ln.Addr().String()
	suite.server = server.NewServer(config.ServerConfig{MaxConnections: 2, RequestTimeout: 5}, suite.mockMediator)
	go func() {
		_ = suite.server.Serve(ln)
	}()
}

func (suite *CommandsTestSuite) TearDownTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = suite.server.Shutdown(ctx)
}

func (suite *CommandsTestSuite) execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--address", suite.address}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (suite *CommandsTestSuite) TestSearch() {
	suite.mockMediator.EXPECT().Search(mock.Anything, "Go", 2).Return([]string{"Go", "Gopher"}, nil).Once()

	out, err := suite.execute("search", "Go", "--limit", "2")

	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `["Go","Gopher"]`, out)
}

func (suite *CommandsTestSuite) TestConnected() {
	suite.mockMediator.EXPECT().GetConnectedPages(mock.Anything, "A", 1).Return([]string{"A", "B"}, nil).Once()

	out, err := suite.execute("connected", "A", "1")

	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `["A","B"]`, out)
}

func (suite *CommandsTestSuite) TestConnectedRejectsNonNumericHops() {
	_, err := suite.execute("connected", "A", "many")

	assert.Error(suite.T(), err)
}

func (suite *CommandsTestSuite) TestPath() {
	suite.mockMediator.EXPECT().GetPath(mock.Anything, "A", "C").Return([]string{"A", "B", "C"}, nil).Once()

	out, err := suite.execute("path", "A", "C")

	suite.Require().NoError(err)
	assert.JSONEq(suite.T(), `["A","B","C"]`, out)
}

func (suite *CommandsTestSuite) TestStatistics() {
	suite.mockMediator.EXPECT().Zeitgeist(10).Return([]string{"A"}).Once()
	suite.mockMediator.EXPECT().Trending(1).Return([]string{"B"}).Once()
	suite.mockMediator.EXPECT().PeakLoad().Return(3).Once()

	zeitgeist, err := suite.execute("zeitgeist")
	suite.Require().NoError(err)
	trending, err := suite.execute("trending", "-l", "1")
	suite.Require().NoError(err)
	peak, err := suite.execute("peak-load")
	suite.Require().NoError(err)

	assert.JSONEq(suite.T(), `["A"]`, zeitgeist)
	assert.JSONEq(suite.T(), `["B"]`, trending)
	assert.JSONEq(suite.T(), `3`, peak)
}

func (suite *CommandsTestSuite) TestFailedRequest() {
	suite.mockMediator.EXPECT().GetPage(mock.Anything, "Nowhere").Return("", assert.AnError).Once()

	_, err := suite.execute("page", "Nowhere")

	assert.ErrorIs(suite.T(), err, client.ErrRequestFailed)
}
