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

// Package main implements the shipped command-line interface.
// This tool reports merged pull requests authored by a GitHub user within
// an organization, outputting NDJSON for downstream processing.
//
// The CLI supports:
//   - Fetching merged pull requests filtered by author, organization, and
//     merge date (single page, no pagination)
//   - Customizable output destinations (stdout or file)
//   - GitHub token resolution via the gh CLI or an environment variable
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	shipped fetch <author> [flags]
//	shipped auth
//
// Example:
//
//	shipped fetch alice --org acme --merged-after 2024-01-01
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication/authorization error
//   - 3: Network error
package main
