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
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	shippederrors "github.com/shippedhq/shipped/internal/errors"
	"github.com/shippedhq/shipped/pkg/version"
)

func main() {
	// Best effort; running without a .env file is the normal case.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "shipped",
		Short: "Report merged GitHub pull requests for an author",
		Long: `Shipped reports the pull requests a GitHub user has merged within an
organization. It resolves credentials from the gh CLI or the environment
and outputs one NDJSON record per pull request.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newFetchCommand())
	rootCmd.AddCommand(newAuthCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, shippederrors.ErrNoToken) ||
		errors.Is(err, shippederrors.ErrInvalidToken) {
		return 2 // Authentication/authorization errors
	}

	if errors.Is(err, shippederrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}
