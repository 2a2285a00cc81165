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

package credential

import (
	"context"
	"fmt"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
)

// NoTokenError is returned when no source yielded a token and the caller
// required one. Its message names both remediation paths.
type NoTokenError struct {
	// Binary is the GitHub CLI executable that was tried.
	Binary string

	// Variable is the environment variable that was consulted.
	Variable string
}

// Error implements the error interface.
func (e *NoTokenError) Error() string {
	return fmt.Sprintf(
		"no GitHub token found: run '%s auth login' to authenticate the GitHub CLI, or set the %s environment variable",
		e.Binary, e.Variable)
}

// Unwrap maps the error to the ErrNoToken sentinel for exit-code handling.
func (e *NoTokenError) Unwrap() error {
	return shippederrors.ErrNoToken
}

// Resolver resolves a credential by trying each configured Source in
// order. The default construction tries the GitHub CLI first and the
// environment second, matching the precedence the CLI tools document.
type Resolver struct {
	// Sources are consulted in order until one yields a token.
	Sources []Source

	// Binary and Variable feed the remediation message when every source
	// comes up empty.
	Binary   string
	Variable string
}

// NewResolver returns a Resolver that tries the gh CLI's cached token
// first and the named environment variable second.
func NewResolver(binary, variable string) *Resolver {
	return &Resolver{
		Sources: []Source{
			NewCLISource(binary),
			NewEnvSource(variable),
		},
		Binary:   binary,
		Variable: variable,
	}
}

// Resolve returns the first credential any source produces. When no
// source yields a token and require is true, it fails with *NoTokenError.
// With require false it returns an empty credential attributed to the CLI
// source, which callers treat as "anonymous".
func (r *Resolver) Resolve(ctx context.Context, require bool) (*Credential, error) {
	for _, source := range r.Sources {
		cred, err := source.Resolve(ctx)
		if err != nil {
			// Source unavailable; fall through to the next one.
			continue
		}
		if cred.Token != "" {
			return cred, nil
		}
	}

	if require {
		return nil, &NoTokenError{Binary: r.Binary, Variable: r.Variable}
	}

	return &Credential{Source: OriginCLI}, nil
}

// Token is the token-only variant of Resolve. A token is always required.
func (r *Resolver) Token(ctx context.Context) (string, error) {
	cred, err := r.Resolve(ctx, true)
	if err != nil {
		return "", err
	}
	return cred.Token, nil
}
