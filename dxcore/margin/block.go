/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package margin

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dirpx.dev/dxmargin/dxcore/errors"
	"dirpx.dev/dxmargin/dxcore/model"
	"gopkg.in/yaml.v3"
)

// BlockMaxBytes is the maximum size of a Block in bytes.
const BlockMaxBytes = 64 * 1024

// Block is a piece of multi-line text whose margin has already been removed.
//
// Blocks exist for configuration documents that embed indented text, for
// example help messages or templates kept in YAML. When decoded, a Block
// accepts margined input and stores the trimmed text; when encoded, it writes
// the margin back with DefaultPrefix so that a round trip is lossless:
//
//	help: |
//	  |Usage: deploy [flags]
//	  |
//	  |  --dry-run  print the plan only
//
// decodes to "Usage: deploy [flags]\n\n  --dry-run  print the plan only".
// Single-line values are stored and written unchanged.
//
// A Block MUST NOT contain CR characters (line endings are normalized to LF
// while parsing) and MUST NOT exceed BlockMaxBytes. The zero value is an
// empty, valid Block.
type Block string

// ParseBlock normalizes line endings in s, removes the margin marked by
// prefix (DefaultPrefix if prefix is zero) and validates the result.
//
// If s does not follow the margin convention the returned error wraps the
// *errors.MarginError of the first offending line.
func ParseBlock(s string, prefix Prefix) (Block, error) {
	if err := prefix.Validate(); err != nil {
		return "", fmt.Errorf("invalid Block prefix: %w", err)
	}

	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "")

	p := prefix.OrDefault()
	trimmed, ok := TrimMarginWith(normalized, p)
	if !ok {
		return "", fmt.Errorf("invalid Block: %w", Violations(normalized, p)[0])
	}

	b := Block(trimmed)
	if err := b.Validate(); err != nil {
		return "", err
	}
	return b, nil
}

// Margined returns the block with prefix written back in front of every line
// (DefaultPrefix if prefix is zero). Single-line blocks are returned
// unchanged.
func (b Block) Margined(prefix Prefix) string {
	return AddMargin(string(b), prefix.OrDefault())
}

// LineCount returns the number of lines in the block, 0 for the zero value.
func (b Block) LineCount() int {
	if b.IsZero() {
		return 0
	}
	return strings.Count(string(b), "\n") + 1
}

// String returns the trimmed text.
func (b Block) String() string {
	return string(b)
}

// Redacted summarizes the block by size. Blocks hold arbitrary user text and
// can be large, so their content is kept out of production logs.
func (b Block) Redacted() string {
	return "Block{lines:" + strconv.Itoa(b.LineCount()) + ", bytes:" + strconv.Itoa(len(b)) + "}"
}

// TypeName returns "Block".
func (b Block) TypeName() string {
	return "Block"
}

// IsZero reports whether b is empty.
func (b Block) IsZero() bool {
	return b == ""
}

// Validate returns a *errors.ValidationError if b contains CR characters or
// exceeds BlockMaxBytes.
func (b Block) Validate() error {
	if strings.Contains(string(b), "\r") {
		return &errors.ValidationError{Type: b.TypeName(), Reason: "contains raw CR characters (line endings must be normalized to LF)"}
	}
	if len(b) > BlockMaxBytes {
		return &errors.ValidationError{
			Type:   b.TypeName(),
			Reason: "too large: " + strconv.Itoa(len(b)) + " bytes (maximum: " + strconv.Itoa(BlockMaxBytes) + " bytes)",
		}
	}
	return nil
}

// MarshalJSON encodes the block as a JSON string with its margin restored.
func (b Block) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: b.TypeName(), Reason: err.Error()}
	}
	return json.Marshal(b.Margined(""))
}

// UnmarshalJSON decodes a JSON string, removing its DefaultPrefix margin.
func (b *Block) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: b.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParseBlock(s, "")
	if err != nil {
		return &errors.UnmarshalError{Type: b.TypeName(), Data: data, Reason: err.Error()}
	}

	*b = parsed
	return nil
}

// MarshalYAML encodes the block as a YAML scalar with its margin restored.
func (b Block) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, &errors.MarshalError{Type: b.TypeName(), Reason: err.Error()}
	}
	return b.Margined(""), nil
}

// UnmarshalYAML decodes a YAML scalar, removing its DefaultPrefix margin.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: b.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseBlock(s, "")
	if err != nil {
		return &errors.UnmarshalError{Type: b.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}

	*b = parsed
	return nil
}

// Compile-time verification that Block implements model.Model.
var _ model.Model = (*Block)(nil)
