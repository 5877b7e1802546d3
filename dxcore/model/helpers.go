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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates every model in models and returns the combined
// failures, or nil when all of them are valid.
//
// Unlike a loop that stops at the first problem, ValidateAll always visits
// the whole slice so that a configuration holding several margin prefixes or
// text blocks reports every broken entry at once. Each failure is wrapped with
// the index of the model and its TypeName, for example
// "model[2] (Prefix): dxmargin: invalid Prefix: ...".
//
// Empty and nil slices are valid.
func ValidateAll[T interface {
	Validatable
	Identifiable
}](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice holding only the models whose IsZero method
// reports false. The result never shares its backing array with models and is
// never nil.
func FilterZero[T ZeroCheckable](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate returns m unchanged if it is valid and panics otherwise.
//
// It is intended for package-level variables and tests where an invalid value
// is a programming error:
//
//	var shell = model.MustValidate(margin.Prefix("$ "))
//
// MustValidate MUST NOT be used on values that come from user input.
func MustValidate[T interface {
	Validatable
	Identifiable
}](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns m.Redacted() unless unsafe is true, in which case it
// returns m.String(). Keeping the choice in a single call makes it visible in
// review whenever full user content is about to be logged.
//
//	log.Info("loaded block", "block", model.SafeString(block, false))
func SafeString[T Loggable](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON validates m and encodes it as JSON. Invalid models are rejected
// before the encoder runs.
func ToJSON[T interface {
	Validatable
	Identifiable
}](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML validates m and encodes it as YAML. Invalid models are rejected
// before the encoder runs.
func ToYAML[T interface {
	Validatable
	Identifiable
}](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON decodes data into m and validates the result.
//
// If FromJSON returns an error the content of m is undefined and MUST NOT be
// used.
func FromJSON[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML decodes data into m and validates the result. It is the usual way
// to load margin prefixes and text blocks from configuration documents:
//
//	var help margin.Block
//	if err := model.FromYAML(data, &help); err != nil {
//	    return err
//	}
//
// If FromYAML returns an error the content of m is undefined and MUST NOT be
// used.
func FromYAML[T any, PT interface {
	*T
	Model
}](data []byte, m PT) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
