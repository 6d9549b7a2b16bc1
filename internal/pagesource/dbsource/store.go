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

// Package dbsource implements the page source over a local page corpus held in a SQL database.
package dbsource

import (
	"context"
	"fmt"
	"strings"

	"github.com/asgardeo/wikimediator/internal/pagesource"
	"github.com/asgardeo/wikimediator/internal/system/database/provider"
	"github.com/asgardeo/wikimediator/internal/system/log"
	"github.com/asgardeo/wikimediator/internal/system/metrics"
)

const (
	sourceName               = "database"
	storeLoggerComponentName = "PageStore"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Store serves pages and links from the PAGE and PAGE_LINK tables.
type Store struct {
	dbProvider provider.DBProviderInterface
}

var _ pagesource.PageSourceInterface = (*Store)(nil)

// NewStore creates a page store backed by the given database provider.
func NewStore(dbProvider provider.DBProviderInterface) *Store {
	return &Store{
		dbProvider: dbProvider,
	}
}

// Name returns the page source name.
func (s *Store) Name() string {
	return sourceName
}

// SearchTitles returns up to limit page titles starting with query, in title order.
func (s *Store) SearchTitles(ctx context.Context, query string, limit int) (titles []string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "search", err) }()

	if limit <= 0 {
		return []string{}, nil
	}

	dbClient, err := s.dbProvider.GetDBClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, querySearchTitles, likeEscaper.Replace(query)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return columnValues(results, "title")
}

// FetchPageText returns the stored content of the page, or ErrPageNotFound.
func (s *Store) FetchPageText(ctx context.Context, title string) (text string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "page", err) }()

	dbClient, err := s.dbProvider.GetDBClient(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetPageContent, title)
	if err != nil {
		return "", fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("%w: %s", pagesource.ErrPageNotFound, title)
	}

	content, err := stringValue(results[0]["content"])
	if err != nil {
		return "", fmt.Errorf("failed to read content of %s: %w", title, err)
	}
	return content, nil
}

// FetchLinks returns the titles linked from the page in their stored order.
func (s *Store) FetchLinks(ctx context.Context, title string) (links []string, err error) {
	defer func() { metrics.RecordPageSourceRequest(sourceName, "links", err) }()

	dbClient, err := s.dbProvider.GetDBClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetPageLinks, title)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return columnValues(results, "target_title")
}

// SavePage stores a page and replaces its outbound links in a single transaction.
func (s *Store) SavePage(ctx context.Context, title, content string, links []string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, storeLoggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	rollback := func(cause error) error {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.Error("Failed to rollback transaction", log.Error(rollbackErr))
			return fmt.Errorf("%w (rollback error: %w)", cause, rollbackErr)
		}
		return cause
	}

	if _, err := dbClient.ExecuteTx(ctx, tx, queryUpsertPage, title, content); err != nil {
		return rollback(fmt.Errorf("failed to store page %s: %w", title, err))
	}
	if _, err := dbClient.ExecuteTx(ctx, tx, queryDeletePageLinks, title); err != nil {
		return rollback(fmt.Errorf("failed to clear links of %s: %w", title, err))
	}
	for i, target := range links {
		if _, err := dbClient.ExecuteTx(ctx, tx, queryInsertPageLink, title, target, i); err != nil {
			return rollback(fmt.Errorf("failed to store link %s -> %s: %w", title, target, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("Page stored", log.String("title", title), log.Int("links", len(links)))
	return nil
}

func columnValues(results []map[string]interface{}, column string) ([]string, error) {
	values := make([]string, 0, len(results))
	for _, row := range results {
		value, err := stringValue(row[column])
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", column, err)
		}
		values = append(values, value)
	}
	return values, nil
}

func stringValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unexpected type %T", value)
	}
}
