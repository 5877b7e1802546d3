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

// Package margin removes layout margins from multi-line string literals.
//
// Go raw string literals keep every byte between the backquotes, including
// the indentation that makes the surrounding code readable:
//
//	func usage() string {
//		return `
//			Usage: deploy plan
//			Prints the rollout steps.
//		`
//	}
//
// The returned string starts with a line break and every line carries two
// tabs the reader never intended. With a margin marker at the start of each
// line the layout can stay indented while the value stays clean:
//
//	var usage = margin.MustTrimMargin(`
//		|Usage: deploy plan
//		|
//		|  Prints the rollout steps.
//	`)
//
// TrimMargin removes a blank first line and a blank last line, the
// whitespace in front of every remaining line and the marker itself. The
// result above is "Usage: deploy plan\n\n  Prints the rollout steps.".
//
// # Rules
//
// A text without any line break is returned unchanged and its margin is never
// checked. Otherwise the text is split on '\n' and:
//
//   - leading whitespace (as classified by unicode.IsSpace) is removed from
//     every line, trailing whitespace is kept;
//   - the first line is dropped if it is now empty;
//   - the last line is dropped if it is now empty;
//   - every other line, blank interior lines included, MUST start with the
//     margin prefix, which is then removed.
//
// If any line breaks the last rule the whole operation fails and no partial
// result is produced. Failure is reported through the boolean result, not
// through an error: a missing margin is an expected outcome that callers
// branch on. Check and Violations describe which lines are at fault when that
// is needed.
//
// Prefix matching and removal work on bytes, so multi-byte prefixes such as
// "»" are matched and removed as a whole.
//
// All functions in this package are pure and safe for concurrent use.
package margin

import (
	"strings"
	"unicode"

	"dirpx.dev/dxmargin/dxcore/errors"
)

// DefaultPrefix is the margin prefix used by TrimMargin and by the zero
// Prefix.
const DefaultPrefix = "|"

// StringLike is the set of types the trimming functions accept: strings,
// byte slices and any named type built on them.
type StringLike interface {
	~string | ~[]byte
}

// TrimMarginWith removes the margin marked by prefix from text.
//
// It returns the trimmed text and true on success. It returns "" and false if
// a line that must carry the margin does not start with prefix after its
// leading whitespace is removed. Input without a line break is returned
// unchanged with true, whatever the prefix.
//
// An empty prefix matches every line, which reduces the operation to dropping
// blank boundary lines and left-trimming the others.
//
// text is never modified; when it is a byte slice the result does not alias
// it.
func TrimMarginWith[S StringLike](text S, prefix string) (string, bool) {
	s := string(text)
	if !strings.Contains(s, "\n") {
		return s, true
	}

	lines, _ := marginLines(s)
	for i, line := range lines {
		rest, ok := strings.CutPrefix(line, prefix)
		if !ok {
			return "", false
		}
		lines[i] = rest
	}

	return strings.Join(lines, "\n"), true
}

// TrimMargin is shorthand for TrimMarginWith(text, DefaultPrefix).
func TrimMargin[S StringLike](text S) (string, bool) {
	return TrimMarginWith(text, DefaultPrefix)
}

// MustTrimMarginWith is like TrimMarginWith but panics with the first
// *errors.MarginError if text does not follow the margin convention. It is
// meant for package-level literals whose shape is fixed at compile time.
func MustTrimMarginWith[S StringLike](text S, prefix string) string {
	trimmed, ok := TrimMarginWith(text, prefix)
	if !ok {
		panic(Violations(text, prefix)[0])
	}
	return trimmed
}

// MustTrimMargin is shorthand for MustTrimMarginWith(text, DefaultPrefix).
func MustTrimMargin[S StringLike](text S) string {
	return MustTrimMarginWith(text, DefaultPrefix)
}

// AddMargin is the inverse of TrimMarginWith: it puts prefix in front of
// every line of a multi-line text. Text without a line break is returned
// unchanged, matching the pass-through rule of TrimMarginWith.
//
// For any prefix that passes Prefix.Validate and is not empty,
// TrimMarginWith(AddMargin(s, prefix), prefix) returns s.
func AddMargin(text, prefix string) string {
	if !strings.Contains(text, "\n") {
		return text
	}
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

// Violations returns one *errors.MarginError per line of text that does not
// start with prefix, in input order. It returns nil exactly when
// TrimMarginWith succeeds.
func Violations[S StringLike](text S, prefix string) []*errors.MarginError {
	s := string(text)
	if !strings.Contains(s, "\n") {
		return nil
	}

	var out []*errors.MarginError
	lines, first := marginLines(s)
	for i, line := range lines {
		if !strings.HasPrefix(line, prefix) {
			out = append(out, &errors.MarginError{Line: first + i, Prefix: prefix, Text: line})
		}
	}
	return out
}

// marginLines splits a multi-line s, left-trims every line and drops the
// blank boundary lines. The remaining lines are the ones that must carry the
// margin; first is the 1-based number of the first of them in s.
func marginLines(s string) (lines []string, first int) {
	lines = strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimLeftFunc(line, unicode.IsSpace)
	}

	first = 1
	if lines[0] == "" {
		lines = lines[1:]
		first = 2
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines, first
}
