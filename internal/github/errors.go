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

import (
	"fmt"
	"net/http"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
)

// RequestError reports a non-success HTTP status from the GraphQL
// endpoint. Status carries the full status line (for example
// "401 Unauthorized"), so the message always includes the status code.
type RequestError struct {
	StatusCode int
	Status     string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("github request failed: %s", e.Status)
}

// Unwrap maps the error to a sentinel for exit-code handling.
// Authentication and authorization statuses map to ErrInvalidToken.
func (e *RequestError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden {
		return shippederrors.ErrInvalidToken
	}
	return shippederrors.ErrRequestFailed
}

// ResponseShapeError reports a success status whose JSON body lacks the
// expected nested search-result structure.
type ResponseShapeError struct {
	// Missing names the absent JSON path, such as "data.search".
	Missing string

	// Detail carries the first server-reported GraphQL error message,
	// when one was present.
	Detail string
}

// Error implements the error interface.
func (e *ResponseShapeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid response structure: missing %s (%s)", e.Missing, e.Detail)
	}
	return fmt.Sprintf("invalid response structure: missing %s", e.Missing)
}

// Unwrap maps the error to the ErrBadResponse sentinel.
func (e *ResponseShapeError) Unwrap() error {
	return shippederrors.ErrBadResponse
}

// FetchError is the single externally visible failure type of
// FetchMergedPullRequests. It wraps whatever went wrong inside the fetch,
// from credential resolution through response validation, and preserves
// the underlying error chain.
type FetchError struct {
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch pull requests: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *FetchError) Unwrap() error {
	return e.Err
}
