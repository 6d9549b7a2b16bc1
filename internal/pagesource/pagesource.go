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

// Package pagesource defines the contract of the upstream page source consumed by the mediator.
package pagesource

import (
	"context"
	"errors"
)

// ErrPageNotFound is returned when the page source has no page with the requested title.
var ErrPageNotFound = errors.New("page not found")

// PageSourceInterface is the upstream capability the mediator consumes.
type PageSourceInterface interface {
	// SearchTitles returns at most limit page titles matching query.
	SearchTitles(ctx context.Context, query string, limit int) ([]string, error)
	// FetchPageText returns the text of the page, or ErrPageNotFound.
	FetchPageText(ctx context.Context, title string) (string, error)
	// FetchLinks returns the titles of the pages the page links to. A missing page has no links.
	FetchLinks(ctx context.Context, title string) ([]string, error)
	// Name identifies the page source in logs and metrics.
	Name() string
}
