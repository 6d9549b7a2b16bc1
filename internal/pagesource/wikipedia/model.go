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

// apiError is the error object of a MediaWiki API response.
type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

// allPagesResponse is the response of a list=allpages query.
type allPagesResponse struct {
	Error *apiError `json:"error,omitempty"`
	Query struct {
		AllPages []struct {
			Title string `json:"title"`
		} `json:"allpages"`
	} `json:"query"`
}

// revisionsResponse is the response of a prop=revisions query.
type revisionsResponse struct {
	Error *apiError `json:"error,omitempty"`
	Query struct {
		Pages []struct {
			Title     string `json:"title"`
			Missing   bool   `json:"missing,omitempty"`
			Invalid   bool   `json:"invalid,omitempty"`
			Revisions []struct {
				Slots struct {
					Main struct {
						Content string `json:"content"`
					} `json:"main"`
				} `json:"slots"`
			} `json:"revisions"`
		} `json:"pages"`
	} `json:"query"`
}

// linksResponse is one batch of a prop=links query.
type linksResponse struct {
	Error    *apiError `json:"error,omitempty"`
	Continue *struct {
		PLContinue string `json:"plcontinue"`
	} `json:"continue,omitempty"`
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing,omitempty"`
			Links   []struct {
				Title string `json:"title"`
			} `json:"links"`
		} `json:"pages"`
	} `json:"query"`
}
