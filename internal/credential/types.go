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

// Origin identifies which mechanism supplied the active token.
type Origin string

// Credential origins, in resolution order.
const (
	OriginCLI         Origin = "cli"
	OriginEnvironment Origin = "environment"
)

// UnknownValue is the sentinel used for username and scopes when the token
// comes from the environment. Deriving the real values would require an
// extra API call, which this package deliberately does not make.
const UnknownValue = "unknown"

// Credential holds a resolved GitHub token together with whatever account
// metadata the source could provide. It is created fresh on every
// resolution and never persisted.
type Credential struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Scopes   []string `json:"scopes"`
	Source   Origin   `json:"source"`
}
