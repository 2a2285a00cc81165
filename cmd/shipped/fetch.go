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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shippedhq/shipped/internal/config"
	"github.com/shippedhq/shipped/internal/credential"
	"github.com/shippedhq/shipped/internal/github"
	"github.com/shippedhq/shipped/internal/output"
)

// fetchFlags holds the flag values of the fetch command.
type fetchFlags struct {
	configPath  string
	org         string
	mergedAfter string
	limit       int
	outputFile  string
}

func newFetchCommand() *cobra.Command {
	var flags fetchFlags

	cmd := &cobra.Command{
		Use:   "fetch <author>",
		Short: "Fetch merged pull requests authored by a GitHub user",
		Long: `Fetch merged pull requests authored by a GitHub user within an
organization and output them in NDJSON format.

The search covers a single page of results; use --limit to control how
many pull requests are requested.

Authentication is resolved automatically:
  - The gh CLI's cached token is used when available
  - Otherwise the GITHUB_TOKEN environment variable is consulted`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			return runFetch(ctx, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to config file (default: standard locations)")
	cmd.Flags().StringVar(&flags.org, "org", "", "Organization to search (default: from config)")
	cmd.Flags().StringVar(&flags.mergedAfter, "merged-after", "", "Only include PRs merged on or after this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "Maximum number of results to request (default: from config)")
	cmd.Flags().StringVar(&flags.outputFile, "output", "", "Output file path (default: stdout)")

	return cmd
}

// runFetch executes the fetch command
func runFetch(ctx context.Context, author string, flags fetchFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mergedAfter, err := parseMergedAfter(flags.mergedAfter)
	if err != nil {
		return err
	}

	limit := flags.limit
	if limit <= 0 {
		limit = cfg.Defaults.SearchLimit
	}

	// Create output writer
	var writer output.Writer
	if flags.outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, fErr := output.NewFileWriter(flags.outputFile)
		if fErr != nil {
			return fmt.Errorf("failed to create output file: %w", fErr)
		}
		writer = fileWriter
	}
	defer writer.Close()

	resolver := credential.NewResolver(cfg.Auth.GhBinary, cfg.Auth.TokenEnv)
	client := github.NewGraphQLClient(cfg.GitHub.GraphQLEndpoint, cfg.GitHub.DefaultOrg, resolver)

	opts := github.SearchOptions{
		Author:       author,
		Organization: flags.org,
		MergedAfter:  mergedAfter,
		Limit:        limit,
	}

	return fetchAndWrite(ctx, client, opts, writer)
}

// fetchAndWrite performs the search and streams the results to the writer.
func fetchAndWrite(ctx context.Context, client github.Client, opts github.SearchOptions, writer output.Writer) error {
	fmt.Fprintf(os.Stderr, "Searching merged pull requests by %s...", opts.Author)

	result, err := client.FetchMergedPullRequests(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line
		return err
	}

	for _, pr := range result.PullRequests {
		if err := writer.Write(pr); err != nil {
			return fmt.Errorf("failed to write pull request: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "\r\033[K") // Clear progress line

	switch {
	case result.TotalCount == 0:
		fmt.Fprintf(os.Stderr, "No merged pull requests found for %s\n", opts.Author)
	case result.Matches > result.TotalCount:
		fmt.Fprintf(os.Stderr, "Fetched %d merged pull requests (%d total matches)\n",
			result.TotalCount, result.Matches)
	default:
		fmt.Fprintf(os.Stderr, "Fetched %d merged pull requests\n", result.TotalCount)
	}

	return nil
}

// parseMergedAfter parses the --merged-after flag. Only a calendar date is
// accepted; an empty value disables the filter.
func parseMergedAfter(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --merged-after date %q. Expected format: YYYY-MM-DD", value)
	}

	return t, nil
}
