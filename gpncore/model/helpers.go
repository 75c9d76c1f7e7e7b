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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered, not just the first one. This is the batch entry point used
// when checking a whole document of notation values (for example, a piece
// roster loaded from YAML) where the caller wants a complete report of every
// invalid entry in one pass.
//
// The function iterates through each model in the provided slice and invokes
// its Validate method. When a model fails validation, the error is wrapped
// with contextual information: the model's position in the slice
// (zero-indexed) and its type name obtained from TypeName. This allows
// callers to identify exactly which entries failed and why.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error that aggregates all individual failures using
// rxmerr.Collector. If all models pass, the function returns nil. The
// function never panics and always processes the entire slice even when
// early elements fail, ensuring complete error reporting.
//
// Empty slices are considered valid and return nil.
//
// Example usage:
//
//	ids := []identifier.Identifier{a, b, c}
//	if err := model.ValidateAll(ids); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models by removing
// all instances where IsZero returns true. This is used to clean slices of
// empty placeholder values before serialization or batch processing.
//
// The returned slice is always a new allocation and never shares backing
// array storage with the input slice. If all models in the input are zero,
// or the input is empty or nil, the function returns an empty non-nil slice.
//
// FilterZero does not validate models; it only checks for zero values using
// IsZero.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It is a
// convenience for contexts where an invalid model represents a programming
// error rather than a recoverable runtime error: test setup, package
// initialization, and hardcoded constants.
//
// If validation succeeds, MustValidate returns the model unchanged, allowing
// inline initialization patterns. If validation fails, the function panics
// with a message that includes the model's type name and the validation
// error.
//
// Callers MUST NOT use MustValidate on values derived from external input;
// use Validate (or the parsing constructors, which validate internally) and
// handle the error instead.
//
// Example usage in test setup:
//
//	func TestSomething(t *testing.T) {
//	    p := model.MustValidate(piece.Piece{Type: 'K', Side: side.FirstPlayer})
//	    // Use p knowing it's valid
//	}
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when explicitly
// requested. It provides a single call site for logging decisions, making
// the choice between the safe and full representations explicit and visible
// in the code.
//
// When the unsafe parameter is false (the recommended value for production
// logging), SafeString invokes the model's Redacted method. When unsafe is
// true, it invokes String. For current gpn types the two are identical, but
// callers SHOULD still pass false outside controlled debugging scenarios so
// that the distinction holds if a sensitive type is ever added.
//
// Example usage:
//
//	log.Printf("parsed %s", model.SafeString(id, false))
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent and valid state. It is a safe convenience wrapper around
// json.Marshal that enforces the contract that only valid notation can be
// serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToJSON returns an error wrapping the failure with the model's type
// name, and no marshaling is attempted. If validation succeeds, ToJSON
// invokes json.Marshal, which dispatches to the model's MarshalJSON method.
//
// Example usage:
//
//	data, err := model.ToJSON(id)
//	if err != nil {
//	    return err
//	}
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent and valid state. It is the YAML counterpart of ToJSON and
// follows the same validate-then-marshal contract.
//
// Example usage:
//
//	data, err := model.ToYAML(id)
//	if err != nil {
//	    return err
//	}
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result, so
// malformed notation from external sources is rejected at the boundary
// rather than causing downstream errors.
//
// The function first invokes json.Unmarshal to decode into the provided
// model pointer. If unmarshaling fails, FromJSON returns the unmarshaling
// error without attempting validation. If unmarshaling succeeds, FromJSON
// invokes the model's Validate method and returns an error if the decoded
// value violates its grammar or invariants.
//
// If FromJSON returns an error, the model variable's state is undefined and
// MUST NOT be used.
//
// Example usage:
//
//	var id identifier.Identifier
//	if err := model.FromJSON(data, &id); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result. It is
// the YAML counterpart of FromJSON and follows the same
// unmarshal-then-validate contract.
//
// Example usage:
//
//	var id identifier.Identifier
//	if err := model.FromYAML(data, &id); err != nil {
//	    return err
//	}
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
