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
	"bytes"
	"encoding/json"
	"errors"
)

// Request types accepted by the server.
const (
	RequestTypeSimpleSearch      = "simpleSearch"
	RequestTypeSearch            = "search"
	RequestTypeGetPage           = "getPage"
	RequestTypeGetConnectedPages = "getConnectedPages"
	RequestTypeGetPath           = "getPath"
	RequestTypeZeitgeist         = "zeitgeist"
	RequestTypeTrending          = "trending"
	RequestTypePeakLoad30s       = "peakLoad30s"
	RequestTypePeakLoad          = "peakLoad"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

var errInvalidRequestID = errors.New("request id must be a string or a number")

// RequestID is a client supplied identifier echoed back in the response. Clients may send
// it as a JSON string or a JSON number.
type RequestID struct {
	raw json.RawMessage
}

// NewRequestID creates a string request id.
func NewRequestID(id string) RequestID {
	raw, _ := json.Marshal(id)
	return RequestID{raw: raw}
}

// UnmarshalJSON accepts a JSON string or number.
func (r *RequestID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errInvalidRequestID
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
	case 'n':
		r.raw = nil
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return errInvalidRequestID
		}
	}
	r.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// MarshalJSON writes the id exactly as it was received.
func (r RequestID) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// IsZero reports whether no id was supplied.
func (r RequestID) IsZero() bool {
	return len(r.raw) == 0
}

// String returns the id for logging.
func (r RequestID) String() string {
	var s string
	if err := json.Unmarshal(r.raw, &s); err == nil {
		return s
	}
	return string(r.raw)
}

// Request is a single newline terminated JSON request.
type Request struct {
	ID        RequestID `json:"id"`
	Type      string    `json:"type" validate:"required"`
	Query     *string   `json:"query,omitempty"`
	PageTitle *string   `json:"pageTitle,omitempty"`
	StartPage string    `json:"startPage,omitempty"`
	StopPage  string    `json:"stopPage,omitempty"`
	Limit     *int      `json:"limit,omitempty" validate:"omitempty,gte=0"`
	Hops      *int      `json:"hops,omitempty" validate:"omitempty,gte=0"`
}

// title returns the page title of a page or graph request.
func (r *Request) title() string {
	if r.PageTitle != nil {
		return *r.PageTitle
	}
	if r.Query != nil {
		return *r.Query
	}
	return ""
}

// Response is written back for every request.
type Response struct {
	ID       RequestID   `json:"id"`
	Status   string      `json:"status"`
	Response interface{} `json:"response"`
	Code     string      `json:"code,omitempty"`
}
