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

// Package errors provides the error types shared by the dxmargin packages.
//
// The margin trimming operations themselves never return errors: a text that
// does not follow the margin convention is reported through a boolean "ok"
// result so that callers can branch on it cheaply. The types in this package
// cover everything around that core, namely diagnostics for callers that want
// to know which line broke the convention, and failures while parsing,
// validating or (un)marshaling the value types built on top of it.
//
// All types are plain value carriers with stable message formats prefixed by
// "dxmargin:". They are returned by pointer and are meant to be recognized
// with errors.As.
//
// # Error Types
//
//   - MarginError
//     A single line that must carry the margin prefix does not.
//
//   - ParseError
//     A textual value could not be parsed into a typed value (for example,
//     a Prefix containing a line break).
//
//   - MarshalError
//     An invalid value was about to be serialized.
//
//   - UnmarshalError
//     A JSON or YAML payload could not be turned into a valid value.
//
//   - ValidationError
//     A value violates one of the constraints of its type.
package errors

import "strconv"

// MarginError describes one line of a multi-line text that does not start
// with the expected margin prefix once its leading whitespace is removed.
//
// Line is the 1-based number of the offending line in the original input,
// counting every line including blank boundary lines. Text holds that line
// after leading whitespace removal, which is the exact string that was
// compared against Prefix.
//
// # Example
//
//	violations := margin.Violations("|ok\nnot-prefixed\n|ok2", "|")
//	fmt.Println(violations[0])
//	// dxmargin: line 2 does not start with margin prefix "|": "not-prefixed"
type MarginError struct {
	// Line is the 1-based line number within the original text.
	Line int

	// Prefix is the margin prefix the line was expected to start with.
	Prefix string

	// Text is the offending line with its leading whitespace removed.
	Text string
}

// Error implements the error interface for MarginError.
//
// The error message format is:
//
//	"dxmargin: line {Line} does not start with margin prefix {Prefix}: {Text}"
//
// where Prefix and Text are rendered as quoted Go strings so that blank and
// whitespace-only lines remain visible in logs.
func (e *MarginError) Error() string {
	return "dxmargin: line " + strconv.Itoa(e.Line) +
		" does not start with margin prefix " + strconv.Quote(e.Prefix) +
		": " + strconv.Quote(e.Text)
}

// ParseError is returned when parsing a string into a typed value fails.
//
// Type identifies the logical type being parsed (for example, "Prefix") and
// Value contains the exact string that could not be interpreted. Reason is
// optional and, when set, explains which rule the value broke.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Prefix").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason optionally explains why Value was rejected.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxmargin: invalid {Type} value: {Value}"
//	"dxmargin: invalid {Type} value {Value}: {Reason}" (when Reason is set)
//
// Value is quoted because margin prefixes and text blocks frequently contain
// whitespace or control characters.
func (e *ParseError) Error() string {
	if e.Reason != "" {
		return "dxmargin: invalid " + e.Type + " value " + strconv.Quote(e.Value) + ": " + e.Reason
	}
	return "dxmargin: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
}

// MarshalError is returned when serializing a value fails because the value
// does not satisfy the constraints of its type. In most cases this indicates
// a programming error, such as a value built by conversion that was never
// validated.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Reason describes why the value cannot be marshaled.
	Reason string
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxmargin: cannot marshal invalid {Type}: {Reason}"
func (e *MarshalError) Error() string {
	return "dxmargin: cannot marshal invalid " + e.Type + ": " + e.Reason
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the raw
// payload and Reason provides a short human-readable description of what went
// wrong. Data is intentionally left out of the formatted message because text
// blocks can be large; callers MAY log it separately.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxmargin: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxmargin: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned by Validate methods when a value violates a
// constraint of its type.
//
// Field is empty when the error applies to the whole value, which is the
// common case for the string-backed types of this module.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation, if any.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxmargin: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxmargin: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxmargin: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxmargin: invalid " + e.Type + ": " + e.Reason
}
