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

// Package github queries merged pull requests through GitHub's GraphQL
// search endpoint. Each fetch resolves a bearer token, issues exactly one
// POST, and returns the matched pull requests. There is no pagination
// beyond the first page, no retry logic, and no rate-limit handling.
package github
