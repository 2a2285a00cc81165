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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
	"github.com/shippedhq/shipped/pkg/version"
)

// searchDocument is the GraphQL query document. The search expression and
// result limit travel as variables, never by interpolation into the
// document itself.
const searchDocument = `query($searchQuery: String!, $first: Int!) {
  search(query: $searchQuery, type: ISSUE, first: $first) {
    issueCount
    nodes {
      ... on PullRequest {
        title
        url
        mergedAt
        repository {
          name
        }
      }
    }
  }
}`

// graphqlRequest is the JSON body of a GraphQL POST.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// searchResponse mirrors the expected response shape. Data and Search are
// pointers so an absent level is distinguishable from an empty result.
type searchResponse struct {
	Data *struct {
		Search *struct {
			IssueCount int            `json:"issueCount"`
			Nodes      []searchPRNode `json:"nodes"`
		} `json:"search"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// searchPRNode is one pull request node within a search response.
type searchPRNode struct {
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	MergedAt   time.Time `json:"mergedAt"`
	Repository struct {
		Name string `json:"name"`
	} `json:"repository"`
}

// GraphQLClient implements the Client interface against GitHub's GraphQL
// search endpoint. Each fetch resolves a fresh bearer token through the
// configured TokenProvider, so concurrent fetches share nothing beyond
// the HTTP connection pool.
type GraphQLClient struct {
	httpClient *http.Client
	endpoint   string
	defaultOrg string
	tokens     TokenProvider
	inspector  Inspector
}

// NewGraphQLClient creates a GitHub GraphQL client for the given endpoint.
// The client is configured with:
//   - Per-call authentication via the provided TokenProvider
//   - A default organization applied when SearchOptions leaves it empty
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
//   - Connection pooling tuned for API traffic
func NewGraphQLClient(endpoint, defaultOrg string, tokens TokenProvider) *GraphQLClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &GraphQLClient{
		httpClient: &http.Client{
			Transport: &limitTransport{base: transport},
		},
		endpoint:   endpoint,
		defaultOrg: defaultOrg,
		tokens:     tokens,
		inspector:  NewInspector(),
	}
}

// FetchMergedPullRequests retrieves merged pull requests matching opts.
// Every failure inside the fetch, from credential resolution through
// response validation, surfaces as a *FetchError wrapping the cause.
func (c *GraphQLClient) FetchMergedPullRequests(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	result, err := c.search(ctx, opts)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return result, nil
}

// search performs the single request-response cycle of a fetch.
func (c *GraphQLClient) search(ctx context.Context, opts SearchOptions) (*SearchResult, error) {
	if opts.Organization == "" {
		opts.Organization = c.defaultOrg
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultSearchLimit
	}

	// A token is mandatory here; resolution failures propagate as-is.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	searchQuery, err := buildSearchQuery(opts)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(graphqlRequest{
		Query: searchDocument,
		Variables: map[string]any{
			"searchQuery": searchQuery,
			"first":       opts.Limit,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.inspector.IsNetworkError(err) {
			return nil, fmt.Errorf("network error connecting to GitHub API (%v): %w",
				err, shippederrors.ErrNetworkFailure)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RequestError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response (%v): %w", err, shippederrors.ErrBadResponse)
	}

	if parsed.Data == nil || parsed.Data.Search == nil {
		shapeErr := &ResponseShapeError{Missing: "data.search"}
		if len(parsed.Errors) > 0 {
			shapeErr.Detail = parsed.Errors[0].Message
			if c.inspector.IsAuthError(shapeErr) {
				return nil, fmt.Errorf("%v: %w", shapeErr, shippederrors.ErrInvalidToken)
			}
		}
		return nil, shapeErr
	}

	nodes := parsed.Data.Search.Nodes
	result := &SearchResult{
		PullRequests: make([]PullRequest, 0, len(nodes)),
		Matches:      parsed.Data.Search.IssueCount,
	}
	for _, node := range nodes {
		result.PullRequests = append(result.PullRequests, PullRequest{
			Title:      node.Title,
			URL:        node.URL,
			MergedAt:   node.MergedAt,
			Repository: Repository{Name: node.Repository.Name},
		})
	}
	result.TotalCount = len(result.PullRequests)

	return result, nil
}

// limitedReader wraps a ReadCloser with a size limit to prevent excessive memory usage.
type limitedReader struct {
	io.ReadCloser
	limit int64
	read  int64
}

// Read implements io.Reader with size limit enforcement.
func (lr *limitedReader) Read(p []byte) (n int, err error) {
	if lr.read >= lr.limit {
		return 0, fmt.Errorf("response size exceeded limit of %d bytes", lr.limit)
	}

	remaining := lr.limit - lr.read
	if int64(len(p)) > remaining {
		p = p[:remaining]
	}

	n, err = lr.ReadCloser.Read(p)
	lr.read += int64(n)

	return n, err
}

// limitTransport adds the User-Agent header and a response size limit to
// every request. Authorization is set per request because the token is
// resolved per call, not at client construction.
type limitTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *limitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("User-Agent", fmt.Sprintf("shipped/%s", version.Version))

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	// 10MB response cap
	if resp.Body != nil {
		resp.Body = &limitedReader{
			ReadCloser: resp.Body,
			limit:      10 * 1024 * 1024,
		}
	}

	return resp, nil
}
