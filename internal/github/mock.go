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
	"context"
	"fmt"
	"time"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// PullRequests to return
	PullRequests []PullRequest

	// Matches overrides the server-reported match count. Zero means
	// "same as the number of pull requests".
	Matches int

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth    bool
	ShouldFailNetwork bool

	// Track calls for verification
	CallCount int
	LastOpts  SearchOptions
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		PullRequests: generateTestPRs(),
	}
}

// FetchMergedPullRequests implements the Client interface
func (m *MockClient) FetchMergedPullRequests(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	m.CallCount++
	m.LastOpts = opts

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, &FetchError{Err: fmt.Errorf("authentication failed: %w", shippederrors.ErrInvalidToken)}
	}

	if m.ShouldFailNetwork {
		return nil, &FetchError{Err: fmt.Errorf("network timeout: %w", shippederrors.ErrNetworkFailure)}
	}

	if m.Error != nil {
		return nil, m.Error
	}

	matches := m.Matches
	if matches == 0 {
		matches = len(m.PullRequests)
	}

	return &SearchResult{
		PullRequests: m.PullRequests,
		TotalCount:   len(m.PullRequests),
		Matches:      matches,
	}, nil
}

// generateTestPRs creates sample merged pull request data for testing
func generateTestPRs() []PullRequest {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	lastWeek := now.Add(-7 * 24 * time.Hour)

	return []PullRequest{
		{
			Title:      "Add new feature for data processing",
			URL:        "https://github.com/acme/pipeline/pull/1234",
			MergedAt:   yesterday,
			Repository: Repository{Name: "pipeline"},
		},
		{
			Title:      "Fix memory leak in parser",
			URL:        "https://github.com/acme/parser/pull/87",
			MergedAt:   lastWeek,
			Repository: Repository{Name: "parser"},
		},
		{
			Title:      "Update documentation",
			URL:        "https://github.com/acme/docs/pull/19",
			MergedAt:   lastWeek,
			Repository: Repository{Name: "docs"},
		},
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPullRequests sets specific pull requests to return
func WithPullRequests(prs []PullRequest) MockClientOption {
	return func(m *MockClient) {
		m.PullRequests = prs
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
