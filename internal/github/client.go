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

import "context"

// Client defines the interface for searching GitHub pull requests.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchMergedPullRequests retrieves merged pull requests matching the
	// given options. It performs exactly one search request and returns
	// the first page of results.
	FetchMergedPullRequests(ctx context.Context, opts SearchOptions) (*SearchResult, error)
}

// TokenProvider supplies the bearer token used to authenticate API calls.
// credential.Resolver satisfies this interface.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}
