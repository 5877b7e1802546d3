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

package model_test

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"dirpx.dev/dxmargin/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Snippet is a minimal Model: a named piece of user text.
type Snippet struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

func (s Snippet) Validate() error {
	if s.Name == "" {
		return errors.New("name required")
	}
	if strings.Contains(s.Text, "\r") {
		return errors.New("text contains CR")
	}
	return nil
}

func (s Snippet) TypeName() string {
	return "Snippet"
}

func (s Snippet) IsZero() bool {
	return s.Name == "" && s.Text == ""
}

// Redacted hides the text, which is arbitrary user content.
func (s Snippet) Redacted() string {
	return "Snippet{Name:" + s.Name + ", Text:<" + strconv.Itoa(len(s.Text)) + " bytes>}"
}

func (s Snippet) String() string {
	return "Snippet{Name:" + s.Name + ", Text:" + s.Text + "}"
}

func (s Snippet) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Snippet
	return json.Marshal((alias)(s))
}

func (s *Snippet) UnmarshalJSON(data []byte) error {
	type alias Snippet
	return json.Unmarshal(data, (*alias)(s))
}

func (s Snippet) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	type alias Snippet
	return (alias)(s), nil
}

func (s *Snippet) UnmarshalYAML(node *yaml.Node) error {
	type alias Snippet
	return node.Decode((*alias)(s))
}

var _ model.Model = (*Snippet)(nil)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name     string
		snippets []Snippet
		wantErr  bool
	}{
		{"nil slice", nil, false},
		{"all valid", []Snippet{{Name: "a"}, {Name: "b", Text: "x\ny"}}, false},
		{"one invalid", []Snippet{{Name: "a"}, {Text: "orphan"}}, true},
		{"all invalid", []Snippet{{}, {Name: "c", Text: "\r"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.snippets)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll_MentionsIndexAndType(t *testing.T) {
	err := model.ValidateAll([]Snippet{{Name: "ok"}, {Text: "no name"}})
	if err == nil {
		t.Fatal("ValidateAll() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "model[1] (Snippet)") {
		t.Errorf("ValidateAll() error = %q, want it to mention model[1] (Snippet)", err.Error())
	}
}

func TestFilterZero(t *testing.T) {
	in := []Snippet{{}, {Name: "a"}, {}, {Text: "b"}}

	got := model.FilterZero(in)
	if len(got) != 2 {
		t.Fatalf("FilterZero() returned %d models, want 2", len(got))
	}
	if got[0].Name != "a" || got[1].Text != "b" {
		t.Errorf("FilterZero() = %+v", got)
	}

	if empty := model.FilterZero[Snippet](nil); empty == nil || len(empty) != 0 {
		t.Errorf("FilterZero(nil) = %#v, want empty non-nil slice", empty)
	}
}

func TestMustValidate(t *testing.T) {
	valid := Snippet{Name: "usage"}
	if got := model.MustValidate(valid); got != valid {
		t.Errorf("MustValidate() = %+v, want %+v", got, valid)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustValidate() did not panic on invalid model")
		}
		if msg, _ := r.(string); !strings.Contains(msg, "Snippet") {
			t.Errorf("panic message = %v, want it to name the type", r)
		}
	}()
	model.MustValidate(Snippet{})
}

func TestSafeString(t *testing.T) {
	s := Snippet{Name: "motd", Text: "hello"}

	if got := model.SafeString(s, false); got != "Snippet{Name:motd, Text:<5 bytes>}" {
		t.Errorf("SafeString(safe) = %q", got)
	}
	if got := model.SafeString(s, true); got != "Snippet{Name:motd, Text:hello}" {
		t.Errorf("SafeString(unsafe) = %q", got)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	original := Snippet{Name: "motd", Text: "line 1\nline 2"}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded Snippet
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if decoded != original {
		t.Errorf("JSON round-trip = %+v, want %+v", decoded, original)
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	original := Snippet{Name: "motd", Text: "line 1\nline 2"}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded Snippet
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if decoded != original {
		t.Errorf("YAML round-trip = %+v, want %+v", decoded, original)
	}
}

func TestTo_RejectsInvalid(t *testing.T) {
	if _, err := model.ToJSON(Snippet{}); err == nil {
		t.Error("ToJSON() should fail on invalid model")
	}
	if _, err := model.ToYAML(Snippet{}); err == nil {
		t.Error("ToYAML() should fail on invalid model")
	}
}

func TestFrom_RejectsInvalid(t *testing.T) {
	var fromJSON Snippet
	if err := model.FromJSON([]byte(`{"text":"no name"}`), &fromJSON); err == nil {
		t.Error("FromJSON() should fail when validation fails")
	}

	var fromYAML Snippet
	if err := model.FromYAML([]byte("text: no name\n"), &fromYAML); err == nil {
		t.Error("FromYAML() should fail when validation fails")
	}

	var malformed Snippet
	if err := model.FromJSON([]byte(`{`), &malformed); err == nil {
		t.Error("FromJSON() should fail on malformed input")
	}
}
