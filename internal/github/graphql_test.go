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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
)

// staticTokens is a TokenProvider returning a fixed token or error.
type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token(context.Context) (string, error) {
	return s.token, s.err
}

// recordedRequest captures what the mock server saw.
type recordedRequest struct {
	Authorization string
	UserAgent     string
	Body          graphqlRequest
}

// newSearchServer returns a server answering with the given body and a
// pointer that records the last request.
func newSearchServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.Authorization = r.Header.Get("Authorization")
		recorded.UserAgent = r.Header.Get("User-Agent")
		if err := json.NewDecoder(r.Body).Decode(&recorded.Body); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

func successBody(issueCount int, nodes ...string) string {
	return fmt.Sprintf(`{"data":{"search":{"issueCount":%d,"nodes":[%s]}}}`,
		issueCount, strings.Join(nodes, ","))
}

func prNode(title, url, mergedAt, repo string) string {
	return fmt.Sprintf(`{"title":%q,"url":%q,"mergedAt":%q,"repository":{"name":%q}}`,
		title, url, mergedAt, repo)
}

func TestFetchMergedPullRequests(t *testing.T) {
	server, recorded := newSearchServer(t, http.StatusOK, successBody(57,
		prNode("Fix race in worker pool", "https://github.com/acme/workers/pull/12", "2024-03-01T10:00:00Z", "workers"),
		prNode("Add metrics endpoint", "https://github.com/acme/api/pull/345", "2024-03-05T16:30:00Z", "api"),
		prNode("Bump deps", "https://github.com/acme/api/pull/350", "2024-03-07T09:15:00Z", "api"),
	))

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok123"})

	result, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{
		Author:      "alice",
		MergedAfter: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Limit:       50,
	})
	if err != nil {
		t.Fatalf("FetchMergedPullRequests failed: %v", err)
	}

	// Nodes come back verbatim, in order, with TotalCount equal to the
	// page length and Matches carrying the server count.
	if result.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", result.TotalCount)
	}
	if len(result.PullRequests) != result.TotalCount {
		t.Errorf("len(PullRequests) = %d, want TotalCount %d", len(result.PullRequests), result.TotalCount)
	}
	if result.Matches != 57 {
		t.Errorf("Matches = %d, want 57", result.Matches)
	}

	wantTitles := []string{"Fix race in worker pool", "Add metrics endpoint", "Bump deps"}
	for i, want := range wantTitles {
		if result.PullRequests[i].Title != want {
			t.Errorf("PullRequests[%d].Title = %q, want %q", i, result.PullRequests[i].Title, want)
		}
	}
	if result.PullRequests[0].Repository.Name != "workers" {
		t.Errorf("Repository.Name = %q, want %q", result.PullRequests[0].Repository.Name, "workers")
	}
	if result.PullRequests[0].MergedAt != time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) {
		t.Errorf("MergedAt = %v, want 2024-03-01T10:00:00Z", result.PullRequests[0].MergedAt)
	}

	// Request assertions: bearer auth, user agent, parameterized query.
	if recorded.Authorization != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", recorded.Authorization, "Bearer tok123")
	}
	if !strings.HasPrefix(recorded.UserAgent, "shipped/") {
		t.Errorf("User-Agent = %q, want shipped/... prefix", recorded.UserAgent)
	}
	if !strings.Contains(recorded.Body.Query, "$searchQuery") {
		t.Errorf("query document %q should reference $searchQuery", recorded.Body.Query)
	}
	if got := recorded.Body.Variables["searchQuery"]; got != "author:alice org:acme is:pr is:merged merged:>=2024-03-01" {
		t.Errorf("searchQuery variable = %q", got)
	}
	if got := recorded.Body.Variables["first"]; got != float64(50) {
		t.Errorf("first variable = %v, want 50", got)
	}
}

func TestFetchDefaultsApplied(t *testing.T) {
	server, recorded := newSearchServer(t, http.StatusOK, successBody(0))

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok"})

	result, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err != nil {
		t.Fatalf("FetchMergedPullRequests failed: %v", err)
	}

	if result.TotalCount != 0 || len(result.PullRequests) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
	if got := recorded.Body.Variables["searchQuery"]; got != "author:alice org:acme is:pr is:merged" {
		t.Errorf("searchQuery variable = %q, want default org applied", got)
	}
	if got := recorded.Body.Variables["first"]; got != float64(defaultSearchLimit) {
		t.Errorf("first variable = %v, want default %d", got, defaultSearchLimit)
	}
}

func TestFetchUnauthorized(t *testing.T) {
	server, _ := newSearchServer(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`)

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "bad"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should fail on 401")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %T, want *FetchError", err)
	}
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error chain should contain *RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", reqErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("message %q should include the status code", err.Error())
	}
	if !errors.Is(err, shippederrors.ErrInvalidToken) {
		t.Error("401 should map to ErrInvalidToken")
	}
}

func TestFetchServerError(t *testing.T) {
	server, _ := newSearchServer(t, http.StatusBadGateway, "Bad Gateway")

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should fail on 502")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("message %q should include the status code", err.Error())
	}
	if !errors.Is(err, shippederrors.ErrRequestFailed) {
		t.Error("502 should map to ErrRequestFailed")
	}
}

func TestFetchMissingSearchShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty object", body: `{}`},
		{name: "data without search", body: `{"data":{}}`},
		{name: "null data", body: `{"data":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newSearchServer(t, http.StatusOK, tt.body)
			client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok"})

			_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
			if err == nil {
				t.Fatal("FetchMergedPullRequests should fail on missing data.search")
			}

			var shapeErr *ResponseShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("error chain should contain *ResponseShapeError, got %v", err)
			}
			if !strings.Contains(err.Error(), "invalid response structure") {
				t.Errorf("message %q should indicate invalid structure", err.Error())
			}
			if !errors.Is(err, shippederrors.ErrBadResponse) {
				t.Error("shape error should map to ErrBadResponse")
			}
		})
	}
}

func TestFetchGraphQLAuthError(t *testing.T) {
	body := `{"data":null,"errors":[{"message":"Bad credentials"}]}`
	server, _ := newSearchServer(t, http.StatusOK, body)

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "expired"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should fail")
	}
	if !errors.Is(err, shippederrors.ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken in chain", err)
	}
	if !strings.Contains(err.Error(), "Bad credentials") {
		t.Errorf("message %q should carry the server detail", err.Error())
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	server, _ := newSearchServer(t, http.StatusOK, `{"data": not json`)

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if !errors.Is(err, shippederrors.ErrBadResponse) {
		t.Errorf("error = %v, want ErrBadResponse", err)
	}
}

func TestFetchTokenFailurePropagates(t *testing.T) {
	server, recorded := newSearchServer(t, http.StatusOK, successBody(0))

	client := NewGraphQLClient(server.URL, "acme", staticTokens{
		err: fmt.Errorf("no GitHub token found: %w", shippederrors.ErrNoToken),
	})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should fail without a token")
	}
	if !errors.Is(err, shippederrors.ErrNoToken) {
		t.Errorf("error = %v, want ErrNoToken in chain", err)
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Errorf("error = %T, want *FetchError wrapper", err)
	}

	if recorded.Authorization != "" {
		t.Error("no request should be sent when token resolution fails")
	}
}

func TestFetchInvalidAuthorRejectedBeforeRequest(t *testing.T) {
	server, recorded := newSearchServer(t, http.StatusOK, successBody(0))

	client := NewGraphQLClient(server.URL, "acme", staticTokens{token: "tok"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice is:open"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should reject an invalid author")
	}
	if !strings.Contains(err.Error(), "not a valid GitHub login") {
		t.Errorf("message %q should explain the rejection", err.Error())
	}
	if recorded.Authorization != "" {
		t.Error("no request should be sent for an invalid author")
	}
}

func TestFetchNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewGraphQLClient(url, "acme", staticTokens{token: "tok"})

	_, err := client.FetchMergedPullRequests(context.Background(), SearchOptions{Author: "alice"})
	if err == nil {
		t.Fatal("FetchMergedPullRequests should fail when the endpoint is unreachable")
	}
	if !errors.Is(err, shippederrors.ErrNetworkFailure) {
		t.Errorf("error = %v, want ErrNetworkFailure in chain", err)
	}
}
