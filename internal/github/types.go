// Copyright 2026 ShippedHQ, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

import "time"

// PullRequest represents one merged pull request from a search response.
// Instances are constructed from the API response and never mutated.
type PullRequest struct {
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	MergedAt   time.Time  `json:"merged_at"`
	Repository Repository `json:"repository"`
}

// Repository identifies the repository a pull request belongs to.
type Repository struct {
	Name string `json:"name"`
}

// SearchResult holds one page of merged pull requests.
//
// TotalCount is the number of pull requests actually returned, so
// TotalCount == len(PullRequests) always holds. Matches carries the
// server-reported total match count, which can exceed TotalCount when the
// search matched more pull requests than the requested limit.
type SearchResult struct {
	PullRequests []PullRequest `json:"pull_requests"`
	TotalCount   int           `json:"total_count"`
	Matches      int           `json:"matches"`
}

// SearchOptions configures a merged pull request search.
type SearchOptions struct {
	// Author is the GitHub login whose merged pull requests are fetched.
	// Required.
	Author string

	// Organization scopes the search. Empty selects the client's
	// configured default organization.
	Organization string

	// MergedAfter is an inclusive lower bound on the merge date. Only the
	// calendar date is used. The zero value disables the filter.
	MergedAfter time.Time

	// Limit bounds how many results the search requests. Values <= 0
	// select the default. The server may cap the effective maximum.
	Limit int
}

// defaultSearchLimit is the number of results requested when the caller
// does not specify a limit.
const defaultSearchLimit = 100
