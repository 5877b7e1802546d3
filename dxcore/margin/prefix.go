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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/dxmargin/dxcore/errors"
	"dirpx.dev/dxmargin/dxcore/model"
	"gopkg.in/yaml.v3"
)

// PrefixMaxBytes is the maximum length of a Prefix in bytes. Margin markers
// are short by nature; the limit catches configuration mistakes such as a
// whole line pasted into the prefix field.
const PrefixMaxBytes = 16

// Prefix is a margin marker that can be validated and stored in JSON or YAML
// configuration.
//
// The package functions accept any string as a prefix and simply report
// failure when it does not match. Prefix adds the rules that make a marker
// usable at all: it MUST NOT contain line breaks and MUST NOT start with
// whitespace, because lines are split on '\n' and left-trimmed before they
// are compared, so such a prefix could never match a multi-line text. It MUST
// be valid UTF-8 and at most PrefixMaxBytes long.
//
// The zero value is valid and stands for DefaultPrefix.
//
// Example:
//
//	p, err := margin.ParsePrefix("#")
//	if err != nil {
//	    return err
//	}
//	help, ok := p.Trim(raw)
type Prefix string

// ParsePrefix validates s and returns it as a Prefix. On failure it returns a
// *errors.ParseError whose Reason names the broken rule.
func ParsePrefix(s string) (Prefix, error) {
	p := Prefix(s)
	if reason := p.problem(); reason != "" {
		return "", &errors.ParseError{Type: p.TypeName(), Value: s, Reason: reason}
	}
	return p, nil
}

// OrDefault returns the prefix as a string, or DefaultPrefix for the zero
// value.
func (p Prefix) OrDefault() string {
	if p.IsZero() {
		return DefaultPrefix
	}
	return string(p)
}

// Trim removes the margin marked by p.OrDefault() from text.
func (p Prefix) Trim(text string) (string, bool) {
	return TrimMarginWith(text, p.OrDefault())
}

// Check reports the lines of text that do not carry p.OrDefault(). See the
// package function Check.
func (p Prefix) Check(text string) error {
	return Check(text, p.OrDefault())
}

// String returns the prefix as written, which is "" for the zero value.
func (p Prefix) String() string {
	return string(p)
}

// Redacted returns the quoted prefix. Margin markers carry no sensitive data;
// quoting keeps unusual markers readable in logs.
func (p Prefix) Redacted() string {
	return strconv.Quote(string(p))
}

// TypeName returns "Prefix".
func (p Prefix) TypeName() string {
	return "Prefix"
}

// IsZero reports whether p is the empty prefix, meaning "use DefaultPrefix".
func (p Prefix) IsZero() bool {
	return p == ""
}

// Validate returns a *errors.ValidationError if p breaks one of the rules
// described on Prefix.
func (p Prefix) Validate() error {
	if reason := p.problem(); reason != "" {
		return &errors.ValidationError{Type: p.TypeName(), Reason: reason}
	}
	return nil
}

// MarshalJSON encodes a valid prefix as a JSON string.
func (p Prefix) MarshalJSON() ([]byte, error) {
	if reason := p.problem(); reason != "" {
		return nil, &errors.MarshalError{Type: p.TypeName(), Reason: reason}
	}
	return json.Marshal(string(p))
}

// UnmarshalJSON decodes a JSON string into p and validates it.
func (p *Prefix) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}

	parsed, err := ParsePrefix(s)
	if err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: data, Reason: err.Error()}
	}

	*p = parsed
	return nil
}

// MarshalYAML encodes a valid prefix as a YAML scalar.
func (p Prefix) MarshalYAML() (interface{}, error) {
	if reason := p.problem(); reason != "" {
		return nil, &errors.MarshalError{Type: p.TypeName(), Reason: reason}
	}
	return string(p), nil
}

// UnmarshalYAML decodes a YAML scalar into p and validates it.
func (p *Prefix) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParsePrefix(s)
	if err != nil {
		return &errors.UnmarshalError{Type: p.TypeName(), Data: []byte(node.Value), Reason: err.Error()}
	}

	*p = parsed
	return nil
}

// problem returns the first rule p breaks, or "" if it is valid.
func (p Prefix) problem() string {
	s := string(p)
	switch {
	case s == "":
		return ""
	case len(s) > PrefixMaxBytes:
		return "longer than " + strconv.Itoa(PrefixMaxBytes) + " bytes"
	case !utf8.ValidString(s):
		return "not valid UTF-8"
	case strings.ContainsAny(s, "\r\n"):
		return "contains a line break"
	}

	if r, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(r) {
		return "starts with whitespace"
	}
	return ""
}

// Compile-time verification that Prefix implements model.Model.
var _ model.Model = (*Prefix)(nil)
