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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrNoToken indicates no GitHub token could be resolved from any source.
	// Maps to exit code 2.
	ErrNoToken = errors.New("no github token available")

	// ErrInvalidToken indicates GitHub rejected the resolved token.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrRequestFailed indicates the GraphQL endpoint returned a non-success status.
	// Maps to exit code 1.
	ErrRequestFailed = errors.New("github request failed")

	// ErrBadResponse indicates the GraphQL endpoint returned a success status
	// with an unexpected JSON structure.
	// Maps to exit code 1.
	ErrBadResponse = errors.New("unexpected github response structure")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")
)
