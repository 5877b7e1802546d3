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

// Package model defines the contract shared by the value types of dxmargin,
// such as margin.Prefix and margin.Block.
//
// A value type that implements Model can be validated, serialized to and from
// JSON and YAML, rendered safely into logs and identified by name. The generic
// helpers in this package (ValidateAll, FilterZero, ToJSON, FromYAML and so
// on) rely on that contract and refuse at compile time to operate on types
// that do not implement it.
//
// Model types are expected to be immutable values. Reading them concurrently
// is safe; unmarshaling into a value mutates it and MUST NOT race with reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining every contract a dxmargin value type
// MUST satisfy.
//
// Implementations SHOULD add a compile-time assertion next to the type:
//
//	var _ model.Model = (*Prefix)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
type Validatable interface {
	// Validate returns nil if the instance satisfies all invariants of its
	// type, or an error describing the first violated constraint.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects
	// and MUST be deterministic.
	Validate() error
}

// Serializable is implemented by types with JSON and YAML round-trip support.
//
// Marshal methods MUST refuse to encode invalid values and unmarshal methods
// MUST validate what they decoded, so that invalid data never crosses a
// serialization boundary in either direction.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types that know how to render themselves into
// logs.
//
// The library never logs on its own. Callers that log dxmargin values SHOULD
// use Redacted (or SafeString with unsafe set to false): text blocks are
// arbitrary user content and may be large, so Redacted is expected to
// summarize rather than reproduce them.
type Loggable interface {
	// Redacted returns a representation that is safe and compact enough for
	// production logs.
	Redacted() string

	// String returns the full representation of the value. It MAY include
	// arbitrary user content.
	String() string
}

// Identifiable is implemented by types that report their canonical name.
type Identifiable interface {
	// TypeName returns the CamelCase name of the type without package prefix,
	// for example "Prefix". The result MUST be a constant.
	TypeName() string
}

// ZeroCheckable is implemented by types with a meaningful zero value.
type ZeroCheckable interface {
	// IsZero reports whether the instance is the zero value of its type.
	IsZero() bool
}
