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

// Package wikipedia implements the page source over the MediaWiki Action API.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/system/config"
	"github.com/asgardeo/wikimediator/internal/system/constants"
	httpservice "github.com/asgardeo/wikimediator/internal/system/http"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

const (
	sourceName = "wikipedia"
	// mainNamespace restricts results to articles.
	mainNamespace = "0"
	// maxLinkBatches bounds the number of continuation requests for a single page.
	maxLinkBatches = 50
)

// errUpstream is wrapped by every failure reported by the MediaWiki API itself.
var errUpstream = errors.New("mediawiki api error")

// Client fetches pages from a MediaWiki installation.
type Client struct {
	httpClient     httpservice.HTTPClientInterface
	endpoint       string
	maxSearchLimit int
	logger         *log.Logger
}

var _ pagesource.PageSourceInterface = (*Client)(nil)

// NewClient creates a client that issues requests through the given HTTP client.
func NewClient(cfg config.WikipediaConfig, httpClient httpservice.HTTPClientInterface) *Client {
	return &Client{
		httpClient:     httpClient,
		endpoint:       cfg.Endpoint,
		maxSearchLimit: cfg.MaxSearchLimit,
		logger:         log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WikipediaClient")),
	}
}

// NewClientFromConfig creates a client with a rate limited HTTP client built from the configuration.
func NewClientFromConfig(cfg config.WikipediaConfig) *Client {
	httpClient := httpservice.NewHTTPClient(
		httpservice.WithTimeout(time.Duration(cfg.Timeout)*time.Second),
		httpservice.WithRateLimit(cfg.RateLimit, cfg.Burst),
		httpservice.WithUserAgent(cfg.UserAgent),
	)
	return NewClient(cfg, httpClient)
}

// Name returns the page source name.
func (c *Client) Name() string {
	return sourceName
}

// SearchTitles returns up to limit article titles starting with query.
func (c *Client) SearchTitles(ctx context.Context, query string, limit int) (titles []string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "search", err) }()

	if limit <= 0 {
		return []string{}, nil
	}
	if c.maxSearchLimit > 0 && limit > c.maxSearchLimit {
		limit = c.maxSearchLimit
	}

	params := url.Values{}
	params.Set("list", "allpages")
	params.Set("apprefix", query)
	params.Set("apnamespace", mainNamespace)
	params.Set("aplimit", strconv.Itoa(limit))

	var resp allPagesResponse
	if err := c.query(ctx, params, &resp); err != nil {
		return nil, err
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("%w: %s: %s", errUpstream, resp.Error.Code, resp.Error.Info)
	}

	titles = make([]string, 0, len(resp.Query.AllPages))
	for _, p := range resp.Query.AllPages {
		titles = append(titles, p.Title)
	}
	return titles, nil
}

// FetchPageText returns the wikitext of the latest revision of the page.
func (c *Client) FetchPageText(ctx context.Context, title string) (text string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "page", err) }()

	params := url.Values{}
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")
	params.Set("titles", title)

	var resp revisionsResponse
	if err := c.query(ctx, params, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%w: %s: %s", errUpstream, resp.Error.Code, resp.Error.Info)
	}
	if len(resp.Query.Pages) == 0 {
		return "", fmt.Errorf("%w: %s", pagesource.ErrPageNotFound, title)
	}

	p := resp.Query.Pages[0]
	if p.Missing || p.Invalid || len(p.Revisions) == 0 {
		return "", fmt.Errorf("%w: %s", pagesource.ErrPageNotFound, title)
	}
	return p.Revisions[0].Slots.Main.Content, nil
}

// FetchLinks returns the article titles linked from the page, following API continuation.
func (c *Client) FetchLinks(ctx context.Context, title string) (links []string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "links", err) }()

	params := url.Values{}
	params.Set("prop", "links")
	params.Set("titles", title)
	params.Set("plnamespace", mainNamespace)
	params.Set("pllimit", "max")

	links = []string{}
	for batch := 0; batch < maxLinkBatches; batch++ {
		var resp linksResponse
		if err := c.query(ctx, params, &resp); err != nil {
			return nil, err
		}
		if resp.Error != nil {
			return nil, fmt.Errorf("%w: %s: %s", errUpstream, resp.Error.Code, resp.Error.Info)
		}

		for _, p := range resp.Query.Pages {
			if p.Missing {
				continue
			}
			for _, link := range p.Links {
				links = append(links, link.Title)
			}
		}

		if resp.Continue == nil || resp.Continue.PLContinue == "" {
			return links, nil
		}
		params.Set("plcontinue", resp.Continue.PLContinue)
	}

	c.logger.Warn("Link continuation limit reached, returning partial links",
		log.String("title", title), log.Int("links", len(links)))
	return links, nil
}

// query issues a GET query request against the API endpoint and decodes the JSON body into out.
func (c *Client) query(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set(constants.AcceptHeaderName, constants.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach %s: %w", c.endpoint, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Error("Failed to close response body", log.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", errUpstream, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
