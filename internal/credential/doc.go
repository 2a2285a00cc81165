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

// Package credential resolves GitHub bearer tokens for API calls.
// It consults the GitHub CLI's cached token first and falls back to an
// environment variable, reporting which source supplied the active token.
// Both sources implement a common interface so tests can substitute
// scripted behavior for subprocess execution and environment access.
package credential
