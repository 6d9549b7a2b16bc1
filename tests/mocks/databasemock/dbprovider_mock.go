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

// Package databasemock provides hand written mocks of the database provider.
package databasemock

import (
	"context"

	"github.com/asgardeo/wikimediator/internal/system/database/client"
)

// MockDBProvider is a mock implementation of the DBProviderInterface.
type MockDBProvider struct {
	// MockGetDBClient defines the behavior for the GetDBClient method.
	MockGetDBClient func(ctx context.Context) (client.DBClientInterface, error)
	// MockClose defines the behavior for the Close method.
	MockClose func() error

	// GetDBClientCalls counts the calls to GetDBClient.
	GetDBClientCalls int
}

// GetDBClient mocks the GetDBClient method of the DBProviderInterface.
func (m *MockDBProvider) GetDBClient(ctx context.Context) (client.DBClientInterface, error) {
	m.GetDBClientCalls++

	if m.MockGetDBClient != nil {
		return m.MockGetDBClient(ctx)
	}
	return nil, nil
}

// Close mocks the Close method of the DBProviderInterface.
func (m *MockDBProvider) Close() error {
	if m.MockClose != nil {
		return m.MockClose()
	}
	return nil
}
