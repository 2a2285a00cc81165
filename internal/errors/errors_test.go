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

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		want     bool
	}{
		{
			name:     "direct no token error",
			err:      ErrNoToken,
			sentinel: ErrNoToken,
			want:     true,
		},
		{
			name:     "wrapped no token error",
			err:      fmt.Errorf("failed to resolve credential: %w", ErrNoToken),
			sentinel: ErrNoToken,
			want:     true,
		},
		{
			name:     "different error type",
			err:      ErrBadResponse,
			sentinel: ErrInvalidToken,
			want:     false,
		},
		{
			name:     "wrapped network error",
			err:      fmt.Errorf("connection failed: %w", ErrNetworkFailure),
			sentinel: ErrNetworkFailure,
			want:     true,
		},
		{
			name:     "nil error",
			err:      nil,
			sentinel: ErrInvalidToken,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.sentinel)
			if got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.sentinel, got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNoToken, "no github token available"},
		{ErrInvalidToken, "invalid github token"},
		{ErrRequestFailed, "github request failed"},
		{ErrBadResponse, "unexpected github response structure"},
		{ErrNetworkFailure, "network connection failed"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("error message = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
