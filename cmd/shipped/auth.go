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

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shippedhq/shipped/internal/config"
	"github.com/shippedhq/shipped/internal/credential"
)

func newAuthCommand() *cobra.Command {
	var (
		configPath string
		optional   bool
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Show the resolved GitHub credential",
		Long: `Resolve a GitHub credential and show where it came from.

The gh CLI's cached token is tried first; the GITHUB_TOKEN environment
variable is the fallback. The token itself is masked in the output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			return runAuth(ctx, cmd.OutOrStdout(), configPath, !optional)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to config file (default: standard locations)")
	cmd.Flags().BoolVar(&optional, "optional", false, "Exit successfully even when no token is found")

	return cmd
}

// runAuth executes the auth command
func runAuth(ctx context.Context, out io.Writer, configPath string, require bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	resolver := credential.NewResolver(cfg.Auth.GhBinary, cfg.Auth.TokenEnv)

	cred, err := resolver.Resolve(ctx, require)
	if err != nil {
		return err
	}

	printCredential(out, cred)
	return nil
}

// printCredential renders a resolved credential with the token masked.
func printCredential(out io.Writer, cred *credential.Credential) {
	if cred.Token == "" {
		fmt.Fprintln(out, "No GitHub token found")
		return
	}

	fmt.Fprintf(out, "Token:   %s (source: %s)\n", maskToken(cred.Token), cred.Source)
	if cred.Username != "" {
		fmt.Fprintf(out, "Account: %s\n", cred.Username)
	}
	if len(cred.Scopes) > 0 {
		fmt.Fprintf(out, "Scopes:  %s\n", strings.Join(cred.Scopes, ", "))
	}
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
