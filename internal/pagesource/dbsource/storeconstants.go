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

package dbsource

import dbmodel "github.com/asgardeo/wikimediator/internal/system/database/model"

var (
	// querySearchTitles is the query to list page titles starting with a prefix.
	querySearchTitles = dbmodel.DBQuery{
		ID: "WMQ-PAGE_SRC-01",
		Query: `SELECT TITLE FROM PAGE WHERE TITLE LIKE $1 ESCAPE '\' ` +
			`ORDER BY TITLE LIMIT $2`,
	}

	// queryGetPageContent is the query to get the content of a page.
	queryGetPageContent = dbmodel.DBQuery{
		ID:    "WMQ-PAGE_SRC-02",
		Query: `SELECT CONTENT FROM PAGE WHERE TITLE = $1`,
	}

	// queryGetPageLinks is the query to get the outbound links of a page.
	queryGetPageLinks = dbmodel.DBQuery{
		ID:    "WMQ-PAGE_SRC-03",
		Query: `SELECT TARGET_TITLE FROM PAGE_LINK WHERE SOURCE_TITLE = $1 ORDER BY LINK_ORDER`,
	}

	// queryDeletePageLinks is the query to delete the outbound links of a page.
	queryDeletePageLinks = dbmodel.DBQuery{
		ID:    "WMQ-PAGE_SRC-04",
		Query: `DELETE FROM PAGE_LINK WHERE SOURCE_TITLE = $1`,
	}

	// queryUpsertPage is the query to insert or replace a page.
	queryUpsertPage = dbmodel.DBQuery{
		ID: "WMQ-PAGE_SRC-05",
		Query: `INSERT INTO PAGE (TITLE, CONTENT) VALUES ($1, $2) ` +
			`ON CONFLICT (TITLE) DO UPDATE SET CONTENT = EXCLUDED.CONTENT`,
	}

	// queryInsertPageLink is the query to insert an outbound link of a page.
	queryInsertPageLink = dbmodel.DBQuery{
		ID:    "WMQ-PAGE_SRC-06",
		Query: `INSERT INTO PAGE_LINK (SOURCE_TITLE, TARGET_TITLE, LINK_ORDER) VALUES ($1, $2, $3)`,
	}
)
