/*
   Copyright 2026 The GPN Authors

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
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/model"
)

// ExampleModel demonstrates a complete Model implementation: a one-letter
// tag with the same shape as the notation types in the sub-packages.
type ExampleModel struct {
	Letter string
}

// Validate implements Validatable
func (e ExampleModel) Validate() error {
	if e.Letter == "" {
		return errors.New("letter required")
	}
	if len(e.Letter) != 1 || e.Letter[0] < 'A' || e.Letter[0] > 'Z' {
		return errors.New("letter must be a single uppercase ASCII letter")
	}
	return nil
}

// TypeName implements Identifiable
func (e ExampleModel) TypeName() string {
	return "ExampleModel"
}

// IsZero implements ZeroCheckable
func (e ExampleModel) IsZero() bool {
	return e.Letter == ""
}

// Redacted implements Loggable
func (e ExampleModel) Redacted() string {
	return e.String()
}

// String implements Loggable
func (e ExampleModel) String() string {
	return "ExampleModel{Letter:" + e.Letter + "}"
}

// MarshalJSON implements Serializable
func (e ExampleModel) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleModel
	return json.Marshal((alias)(e))
}

// UnmarshalJSON implements Serializable
func (e *ExampleModel) UnmarshalJSON(data []byte) error {
	type alias ExampleModel
	if err := json.Unmarshal(data, (*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// MarshalYAML implements Serializable
func (e ExampleModel) MarshalYAML() (interface{}, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias ExampleModel
	return (alias)(e), nil
}

// UnmarshalYAML implements Serializable
func (e *ExampleModel) UnmarshalYAML(node *yaml.Node) error {
	type alias ExampleModel
	if err := node.Decode((*alias)(e)); err != nil {
		return err
	}
	return e.Validate()
}

// Verify ExampleModel implements Model at compile time
var _ model.Model = (*ExampleModel)(nil)

func TestModel_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       ExampleModel
		wantErr bool
	}{
		{"valid", ExampleModel{Letter: "K"}, false},
		{"empty", ExampleModel{}, true},
		{"lowercase", ExampleModel{Letter: "k"}, true},
		{"multi letter", ExampleModel{Letter: "KK"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModel_JSON_RoundTrip(t *testing.T) {
	original := ExampleModel{Letter: "Q"}

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded ExampleModel
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if decoded != original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_YAML_RoundTrip(t *testing.T) {
	original := ExampleModel{Letter: "R"}

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded ExampleModel
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	if decoded != original {
		t.Errorf("round trip = %+v, want %+v", decoded, original)
	}
}

func TestModel_Marshal_FailsOnInvalid(t *testing.T) {
	invalid := ExampleModel{Letter: "kk"}

	if _, err := model.ToJSON(invalid); err == nil {
		t.Error("ToJSON() expected error for invalid model, got nil")
	}
	if _, err := model.ToYAML(invalid); err == nil {
		t.Error("ToYAML() expected error for invalid model, got nil")
	}
}

func TestModel_Unmarshal_FailsOnInvalid(t *testing.T) {
	var m ExampleModel
	if err := model.FromJSON([]byte(`{"Letter":"kk"}`), &m); err == nil {
		t.Error("FromJSON() expected error for invalid payload, got nil")
	}
	if err := model.FromYAML([]byte("letter: kk\n"), &m); err == nil {
		t.Error("FromYAML() expected error for invalid payload, got nil")
	}
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name    string
		models  []ExampleModel
		wantErr bool
	}{
		{"empty slice", nil, false},
		{"all valid", []ExampleModel{{Letter: "K"}, {Letter: "Q"}}, false},
		{"one invalid", []ExampleModel{{Letter: "K"}, {Letter: "kk"}}, true},
		{"all invalid", []ExampleModel{{}, {Letter: "kk"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAll_ReportsAllFailures(t *testing.T) {
	models := []ExampleModel{{Letter: "K"}, {}, {Letter: "kk"}}

	err := model.ValidateAll(models)
	if err == nil {
		t.Fatal("ValidateAll() expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "model[1]") || !strings.Contains(msg, "model[2]") {
		t.Errorf("ValidateAll() error should name both failing entries, got %q", msg)
	}
}

func TestFilterZero(t *testing.T) {
	models := []ExampleModel{{Letter: "K"}, {}, {Letter: "Q"}, {}}

	got := model.FilterZero(models)
	if len(got) != 2 {
		t.Fatalf("FilterZero() returned %d models, want 2", len(got))
	}
	if got[0].Letter != "K" || got[1].Letter != "Q" {
		t.Errorf("FilterZero() = %+v, want [K Q]", got)
	}
}

func TestMustValidate(t *testing.T) {
	t.Run("valid returns unchanged", func(t *testing.T) {
		m := model.MustValidate(ExampleModel{Letter: "K"})
		if m.Letter != "K" {
			t.Errorf("MustValidate() = %+v, want Letter K", m)
		}
	})

	t.Run("invalid panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustValidate() expected panic for invalid model")
			}
		}()
		model.MustValidate(ExampleModel{})
	})
}

func TestSafeString(t *testing.T) {
	m := ExampleModel{Letter: "K"}

	if got := model.SafeString(m, false); got != m.Redacted() {
		t.Errorf("SafeString(false) = %q, want %q", got, m.Redacted())
	}
	if got := model.SafeString(m, true); got != m.String() {
		t.Errorf("SafeString(true) = %q, want %q", got, m.String())
	}
}
