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

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/shippedhq/shipped/internal/github"
)

// Writer defines the interface for writing pull request records.
// The abstraction keeps the CLI independent of the output format.
type Writer interface {
	// Write writes a single pull request to the output.
	Write(pr github.PullRequest) error

	// Close closes the underlying writer and releases any resources.
	Close() error
}

// NDJSONWriter streams pull requests as NDJSON to an io.Writer.
type NDJSONWriter struct {
	mu        sync.Mutex
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter returns an NDJSONWriter writing to w. The caller retains
// ownership of w; Close is a no-op.
func NewWriter(w io.Writer) *NDJSONWriter {
	return &NDJSONWriter{
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter returns an NDJSONWriter writing to the named file.
// The caller must call Close() when done.
func NewFileWriter(filename string) (*NDJSONWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &NDJSONWriter{
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write writes one pull request as a single NDJSON line.
func (w *NDJSONWriter) Write(pr github.PullRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(pr); err != nil {
		return fmt.Errorf("failed to write pull request: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of pull requests written.
func (w *NDJSONWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying writer if it owns one.
func (w *NDJSONWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
