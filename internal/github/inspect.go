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

import "strings"

// Inspector classifies errors coming back from the GitHub API and the
// transport underneath it. The HTTP client and the GraphQL error list both
// surface failures as strings, so classification is necessarily pattern
// based; it lives here so the rest of the package never does string
// matching on errors.
type Inspector interface {
	// IsAuthError returns true for authentication or authorization failures.
	IsAuthError(err error) bool

	// IsNetworkError returns true for network connectivity failures.
	IsNetworkError(err error) bool
}

// apiErrorInspector implements Inspector for GitHub API errors.
type apiErrorInspector struct{}

// NewInspector returns the default Inspector.
func NewInspector() Inspector {
	return apiErrorInspector{}
}

// IsAuthError checks if the error is an authentication or authorization error.
func (apiErrorInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "401") ||
		strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "bad credentials") ||
		strings.Contains(errStr, "authentication")
}

// IsNetworkError checks if the error is a network connectivity error.
func (apiErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}
