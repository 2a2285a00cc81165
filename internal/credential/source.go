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
	"os"
	"regexp"
	"strings"
)

// Source yields a credential from one specific mechanism. A Source that
// cannot produce a token returns an error; the Resolver treats that as
// recoverable and moves on to the next Source.
type Source interface {
	Resolve(ctx context.Context) (*Credential, error)
}

// CLISource resolves the cached token of the GitHub CLI by running
// `<binary> auth token`. When that succeeds it also runs
// `<binary> auth status` and extracts the account name and token scopes
// from the status text. Status parsing is best effort: any failure there
// leaves username and scopes empty without failing the resolution.
type CLISource struct {
	// Binary is the GitHub CLI executable, typically "gh".
	Binary string

	// Runner executes the CLI. Defaults to ExecRunner when nil.
	Runner Runner
}

// NewCLISource returns a CLISource that runs the named gh binary.
func NewCLISource(binary string) *CLISource {
	return &CLISource{Binary: binary, Runner: ExecRunner{}}
}

// Resolve runs the CLI token command and, on success, enriches the
// credential with account metadata from the status command.
func (s *CLISource) Resolve(ctx context.Context) (*Credential, error) {
	runner := s.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	out, err := runner.Run(ctx, s.Binary, "auth", "token")
	if err != nil {
		return nil, fmt.Errorf("%s auth token: %w", s.Binary, err)
	}

	token := strings.TrimSpace(string(out))
	if token == "" {
		return nil, fmt.Errorf("%s auth token returned empty output", s.Binary)
	}

	cred := &Credential{
		Token:  token,
		Source: OriginCLI,
	}

	// Best effort only. Unauthenticated or reformatted status output must
	// not fail a resolution that already has a token.
	if status, statusErr := runner.Run(ctx, s.Binary, "auth", "status"); statusErr == nil {
		cred.Username, cred.Scopes = parseAuthStatus(string(status))
	}

	return cred, nil
}

// EnvSource resolves the token from a named environment variable.
// Account metadata is not derivable from an environment variable without
// an extra API call, so username and scopes carry the "unknown" sentinel.
type EnvSource struct {
	// Variable is the environment variable holding the token.
	Variable string

	// Lookup reads an environment variable. Defaults to os.Getenv when nil.
	Lookup func(key string) string
}

// NewEnvSource returns an EnvSource reading the named variable.
func NewEnvSource(variable string) *EnvSource {
	return &EnvSource{Variable: variable}
}

// Resolve reads the configured environment variable.
func (s *EnvSource) Resolve(_ context.Context) (*Credential, error) {
	lookup := s.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}

	token := lookup(s.Variable)
	if token == "" {
		return nil, fmt.Errorf("environment variable %s is not set", s.Variable)
	}

	return &Credential{
		Token:    token,
		Username: UnknownValue,
		Scopes:   []string{UnknownValue},
		Source:   OriginEnvironment,
	}, nil
}

// The status text of `gh auth status` identifies the account after the
// literal marker "account " and lists scopes as a comma-separated list in
// single quotes after "Token scopes: ".
var (
	accountPattern = regexp.MustCompile(`account (\S+)`)
	scopesPattern  = regexp.MustCompile(`Token scopes: '([^']*)'`)
)

// parseAuthStatus extracts the account name and scope list from gh status
// text. Missing markers yield empty results, never an error.
func parseAuthStatus(status string) (username string, scopes []string) {
	if m := accountPattern.FindStringSubmatch(status); m != nil {
		username = m[1]
	}

	if m := scopesPattern.FindStringSubmatch(status); m != nil && m[1] != "" {
		for _, scope := range strings.Split(m[1], ",") {
			scope = strings.TrimSpace(scope)
			if scope != "" {
				scopes = append(scopes, scope)
			}
		}
	}

	return username, scopes
}
