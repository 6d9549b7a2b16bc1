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

package wikipedia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/system/config"
	httpservice "github.com/asgardeo/wikimediator/internal/system/http"
)

type ClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	client  *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	suite.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		suite.handler(w, r)
	}))
	suite.client = NewClient(config.WikipediaConfig{
		Endpoint:       suite.server.URL,
		MaxSearchLimit: 50,
	}, httpservice.NewHTTPClient(httpservice.WithUserAgent("WikiMediator/test")))
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *ClientTestSuite) respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func (suite *ClientTestSuite) TestName() {
	assert.Equal(suite.T(), "wikipedia", suite.client.Name())
}

func (suite *ClientTestSuite) TestSearchTitles() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(suite.T(), "query", q.Get("action"))
		assert.Equal(suite.T(), "allpages", q.Get("list"))
		assert.Equal(suite.T(), "Barack", q.Get("apprefix"))
		assert.Equal(suite.T(), "0", q.Get("apnamespace"))
		assert.Equal(suite.T(), "2", q.Get("aplimit"))
		assert.Equal(suite.T(), "2", q.Get("formatversion"))
		assert.Equal(suite.T(), "WikiMediator/test", r.Header.Get("User-Agent"))
		suite.respond(`{"query":{"allpages":[{"title":"Barack"},{"title":"Barack Obama"}]}}`)(w, r)
	}

	titles, err := suite.client.SearchTitles(context.Background(), "Barack", 2)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"Barack", "Barack Obama"}, titles)
}

func (suite *ClientTestSuite) TestSearchTitlesClampsLimit() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(suite.T(), "50", r.URL.Query().Get("aplimit"))
		suite.respond(`{"query":{"allpages":[]}}`)(w, r)
	}

	titles, err := suite.client.SearchTitles(context.Background(), "A", 1000)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), titles)
}

func (suite *ClientTestSuite) TestSearchTitlesZeroLimitSkipsRequest() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		assert.Fail(suite.T(), "no request expected")
	}

	titles, err := suite.client.SearchTitles(context.Background(), "A", 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{}, titles)
}

func (suite *ClientTestSuite) TestSearchTitlesAPIError() {
	suite.handler = suite.respond(`{"error":{"code":"badvalue","info":"Bad value"}}`)

	titles, err := suite.client.SearchTitles(context.Background(), "A", 5)

	assert.Nil(suite.T(), titles)
	assert.ErrorIs(suite.T(), err, errUpstream)
	assert.ErrorContains(suite.T(), err, "badvalue")
}

func (suite *ClientTestSuite) TestFetchPageText() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(suite.T(), "revisions", q.Get("prop"))
		assert.Equal(suite.T(), "Go (programming language)", q.Get("titles"))
		suite.respond(`{"query":{"pages":[{"title":"Go (programming language)",` +
			`"revisions":[{"slots":{"main":{"content":"'''Go''' is a language."}}}]}]}}`)(w, r)
	}

	text, err := suite.client.FetchPageText(context.Background(), "Go (programming language)")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "'''Go''' is a language.", text)
}

func (suite *ClientTestSuite) TestFetchPageTextMissing() {
	testCases := []struct {
		name string
		body string
	}{
		{"Missing", `{"query":{"pages":[{"title":"Nope","missing":true}]}}`},
		{"Invalid", `{"query":{"pages":[{"title":"<>","invalid":true}]}}`},
		{"NoPages", `{"query":{"pages":[]}}`},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.handler = suite.respond(tc.body)

			text, err := suite.client.FetchPageText(context.Background(), "Nope")

			assert.Empty(suite.T(), text)
			assert.True(suite.T(), errors.Is(err, pagesource.ErrPageNotFound))
		})
	}
}

func (suite *ClientTestSuite) TestFetchLinksFollowsContinuation() {
	requests := 0
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		q := r.URL.Query()
		assert.Equal(suite.T(), "links", q.Get("prop"))
		assert.Equal(suite.T(), "max", q.Get("pllimit"))
		if q.Get("plcontinue") == "" {
			suite.respond(`{"continue":{"plcontinue":"123|0|C"},` +
				`"query":{"pages":[{"title":"A","links":[{"title":"B"}]}]}}`)(w, r)
			return
		}
		assert.Equal(suite.T(), "123|0|C", q.Get("plcontinue"))
		suite.respond(`{"query":{"pages":[{"title":"A","links":[{"title":"C"},{"title":"D"}]}]}}`)(w, r)
	}

	links, err := suite.client.FetchLinks(context.Background(), "A")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"B", "C", "D"}, links)
	assert.Equal(suite.T(), 2, requests)
}

func (suite *ClientTestSuite) TestFetchLinksMissingPage() {
	suite.handler = suite.respond(`{"query":{"pages":[{"title":"Nope","missing":true}]}}`)

	links, err := suite.client.FetchLinks(context.Background(), "Nope")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{}, links)
}

func (suite *ClientTestSuite) TestUnexpectedStatus() {
	suite.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	_, err := suite.client.FetchLinks(context.Background(), "A")

	assert.ErrorIs(suite.T(), err, errUpstream)
	assert.ErrorContains(suite.T(), err, "503")
}

func (suite *ClientTestSuite) TestMalformedBody() {
	suite.handler = suite.respond(`{not json`)

	_, err := suite.client.FetchPageText(context.Background(), "A")

	assert.ErrorContains(suite.T(), err, "failed to decode response")
}

func (suite *ClientTestSuite) TestNewClientFromConfig() {
	client := NewClientFromConfig(config.WikipediaConfig{
		Endpoint:  "https://example.org/w/api.php",
		Timeout:   5,
		RateLimit: 2,
		Burst:     1,
		UserAgent: "agent",
	})

	assert.Equal(suite.T(), "https://example.org/w/api.php", client.endpoint)
	assert.NotNil(suite.T(), client.httpClient)
}
