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
	"fmt"
	"regexp"
	"strings"
)

// loginPattern matches valid GitHub user and organization names:
// alphanumeric with interior hyphens, at most 39 characters. Anything
// outside this alphabet could smuggle extra qualifiers into the search
// expression, so it is rejected rather than escaped.
var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*$`)

// maxLoginLength is GitHub's limit on user and organization names.
const maxLoginLength = 39

// validateLogin rejects identifiers that are not valid GitHub logins.
func validateLogin(field, value string) error {
	if value == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	if len(value) > maxLoginLength || !loginPattern.MatchString(value) || strings.HasSuffix(value, "-") {
		return fmt.Errorf("%s %q is not a valid GitHub login", field, value)
	}
	return nil
}

// buildSearchQuery constructs the GitHub search expression for merged
// pull requests by the given author within the given organization. The
// author and organization are validated before interpolation, and the
// merge-date filter uses only the calendar date as an inclusive lower
// bound.
func buildSearchQuery(opts SearchOptions) (string, error) {
	if err := validateLogin("author", opts.Author); err != nil {
		return "", err
	}
	if err := validateLogin("organization", opts.Organization); err != nil {
		return "", err
	}

	parts := []string{
		"author:" + opts.Author,
		"org:" + opts.Organization,
		"is:pr",
		"is:merged",
	}

	if !opts.MergedAfter.IsZero() {
		parts = append(parts, "merged:>="+opts.MergedAfter.Format("2006-01-02"))
	}

	return strings.Join(parts, " "), nil
}
