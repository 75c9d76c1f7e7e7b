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

// Package side defines which of the two players a notation component
// belongs to.
//
// Side is the one concept shared by every gpn micro-grammar: in textual
// form it is never spelled out, it is encoded through letter casing.
// Uppercase letters belong to the first player, lowercase letters to the
// second. The style and piece packages derive a Side while parsing and
// consult it again while rendering, and the identifier package compares the
// two derived sides to enforce the cross-component consistency rule.
package side

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model"
)

// Side identifies one of the two players in an abstract strategy board
// game. In notation text a Side is expressed implicitly through letter
// casing: uppercase for the first player, lowercase for the second.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value of Side (0) corresponds to
// FirstPlayer, making the type usable with default initialization.
//
// Side is a closed enumeration: there are exactly two players, so any value
// other than FirstPlayer or SecondPlayer (obtainable only through numeric
// casts or corrupted deserialization) is invalid and is rejected by Valid
// and Validate.
type Side uint8

const (
	// FirstPlayer identifies the player whose components are written in
	// uppercase. In chess terms this is conventionally White; in shogi,
	// sente. The notation itself carries no game-specific meaning beyond
	// "the first of the two players".
	//
	// Canonical string: "first"
	FirstPlayer Side = iota

	// SecondPlayer identifies the player whose components are written in
	// lowercase. In chess terms this is conventionally Black; in shogi,
	// gote.
	//
	// Canonical string: "second"
	SecondPlayer

	// maxSide is an internal sentinel value representing the upper bound of
	// valid Side values. It is not a valid Side and MUST NOT be used in
	// user code.
	maxSide
)

// String constants for Side values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of Side and MAY be
// used in CLI flags and JSON/YAML documents. Changing them is a breaking
// change for any consumer that relies on textual configuration.
const (
	FirstPlayerStr  = "first"
	SecondPlayerStr = "second"
)

// ParseSide converts a textual representation into a Side value.
//
// The function accepts a small, case-insensitive vocabulary of strings and
// maps them to the corresponding constants:
//
//	"first",  "First",  "FIRST"  -> FirstPlayer
//	"second", "Second", "SECOND" -> SecondPlayer
//
// Any other input is treated as invalid, and ParseSide returns a
// *errors.ParseError. The returned error includes the original string
// value, which can be surfaced back to the user.
func ParseSide(s string) (Side, error) {
	switch s {
	case FirstPlayerStr, "First", "FIRST":
		return FirstPlayer, nil
	case SecondPlayerStr, "Second", "SECOND":
		return SecondPlayer, nil
	default:
		return FirstPlayer, &errors.ParseError{Type: "Side", Value: s}
	}
}

// Opposite returns the other player.
//
// Opposite is an involution: s.Opposite().Opposite() == s for every valid
// Side. It is the primitive behind the Flip operation on composite
// identifiers. Calling Opposite on an invalid Side returns FirstPlayer.
func (s Side) Opposite() Side {
	if s == SecondPlayer {
		return FirstPlayer
	}
	return SecondPlayer
}

// String returns the canonical string representation of the Side value.
//
// The returned value is always lowercase and suitable for use in CLI flags,
// logs, and API responses. The mapping is:
//
//	FirstPlayer  -> "first"
//	SecondPlayer -> "second"
//
// If the Side value is not one of the defined constants, String returns
// "unknown". Callers that need to ensure only valid values are emitted
// SHOULD call Valid before invoking String.
func (s Side) String() string {
	switch s {
	case FirstPlayer:
		return FirstPlayerStr
	case SecondPlayer:
		return SecondPlayerStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Side value is one of the defined constants.
//
// This method is primarily useful when Side values may have been created
// via deserialization or numeric casts. Code that relies on Side being
// well-formed SHOULD call Valid before using the value in logic that
// assumes a known semantic meaning.
func (s Side) Valid() bool {
	return s == FirstPlayer || s == SecondPlayer
}

// TypeName returns "Side", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface, allowing Side
// values to be used consistently with other notation types in error
// messages and logs.
func (s Side) TypeName() string {
	return "Side"
}

// Redacted returns the same string representation as String().
//
// Side values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string form.
// This method implements part of the model.Model interface.
func (s Side) Redacted() string {
	return s.String()
}

// IsZero reports whether the Side has its zero value.
//
// For Side (an enum type), the zero value is FirstPlayer (constant 0).
// This method implements part of the model.Model interface.
//
// Note: The zero value (FirstPlayer) is a valid Side, so IsZero returning
// true does not indicate an error condition.
func (s Side) IsZero() bool {
	return s == FirstPlayer
}

// Equal reports whether this Side is equal to another value.
//
// The method accepts any type for other and uses type assertion to check if
// it is a Side or *Side. Two Side values are equal if they represent the
// same enum constant.
func (s Side) Equal(other any) bool {
	switch v := other.(type) {
	case Side:
		return s == v
	case *Side:
		if v == nil {
			return false
		}
		return s == *v
	default:
		return false
	}
}

// Validate checks whether the Side value is one of the defined constants.
//
// This method returns nil if the Side is valid (FirstPlayer or
// SecondPlayer), and a *errors.ValidationError if the value is outside the
// valid range. It implements part of the model.Model interface and is
// typically called after deserialization or numeric casts.
func (s Side) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "Side",
			Field:  "",
			Reason: "invalid Side value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Side.
//
// A valid Side is serialized as its lowercase string representation
// ("first" or "second"). If the value is not valid, MarshalJSON returns a
// *errors.MarshalError and does not produce any JSON output.
func (s Side) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Side", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Side.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "first", "second" (case-insensitive variants accepted via
//     ParseSide).
//
//   - Number: 0 (FirstPlayer), 1 (SecondPlayer).
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with documents that store enum values as
// integers. If the input cannot be parsed as either, or if it resolves to
// an invalid Side, UnmarshalJSON returns a *errors.UnmarshalError.
func (s *Side) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Side", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Side", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseSide(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Side", Data: data, Reason: err.Error()}
	}
	*s = Side(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Side", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Side.
//
// A valid Side is serialized as its canonical string representation. If the
// value is not valid, MarshalYAML returns a *errors.MarshalError.
func (s Side) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Side", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Side.
//
// The method accepts string representations of Side values ("first",
// "second") and resolves them via ParseSide. On failure, it returns the
// underlying *errors.ParseError.
func (s *Side) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Side", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Side.
//
// Textual form is the same lowercase string representation as used by
// String(). If the Side value is invalid, MarshalText returns a
// *errors.MarshalError.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Side", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Side.
//
// The method accepts the same textual vocabulary as ParseSide, using it as
// the single source of truth for mapping strings to Side values. On
// failure, UnmarshalText returns the underlying *errors.ParseError.
func (s *Side) UnmarshalText(text []byte) error {
	parsed, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Compile-time check that Side implements model.Model interface.
var _ model.Model = (*Side)(nil)
