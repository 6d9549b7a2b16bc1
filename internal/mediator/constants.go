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

package mediator

import (
	"errors"
	"time"
)

// Operation kinds recorded in the request log.
const (
	OperationSearch            = "search"
	OperationGetPage           = "getPage"
	OperationGetConnectedPages = "getConnectedPages"
	OperationGetPath           = "getPath"
	OperationZeitgeist         = "zeitgeist"
	OperationTrending          = "trending"
	OperationPeakLoad          = "peakLoad"
)

const (
	// DefaultPageCacheSize is the number of pages cached when no page cache is configured.
	DefaultPageCacheSize = 256
	// DefaultPageCacheTTL is how long a page stays cached when no page cache is configured.
	DefaultPageCacheTTL = 12 * time.Hour
	// DefaultLinkCacheSize is the number of link lists cached when no link cache is configured.
	DefaultLinkCacheSize = 1024
	// DefaultLinkCacheTTL is how long a link list stays cached when no link cache is configured.
	DefaultLinkCacheTTL = time.Hour
	// DefaultPathTimeout bounds the time spent searching for a path.
	DefaultPathTimeout = 5 * time.Minute
)

// ErrInvalidArgument is returned for a negative limit or hop count.
var ErrInvalidArgument = errors.New("invalid argument")
