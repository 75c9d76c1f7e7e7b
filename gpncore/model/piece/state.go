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

package piece

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model"
)

// State represents the modifier state of a piece: whether it is in its
// normal form, an enhanced form, or a diminished form.
//
// In textual notation the state appears as an optional single-character
// prefix before the piece letter: no prefix for normal, "+" for enhanced,
// "-" for diminished. The classic example of enhancement is shogi
// promotion ("+p" is a promoted pawn); diminishment covers traditions where
// a piece can lose capabilities.
//
// This type implements the model.Model interface. The zero value of State
// (0) corresponds to StateNormal, making the type usable with default
// initialization: an unadorned piece letter is a normal piece.
//
// State is a closed enumeration; any value outside the three constants
// (obtainable only through numeric casts or corrupted deserialization) is
// invalid and is rejected by Valid and Validate.
type State uint8

const (
	// StateNormal is the default state of a piece: no modifier prefix in
	// textual form.
	//
	// Canonical string: "normal". Prefix: "".
	StateNormal State = iota

	// StateEnhanced marks a piece whose capabilities have been extended,
	// written with a "+" prefix (for example "+P", a promoted shogi pawn).
	//
	// Canonical string: "enhanced". Prefix: "+".
	StateEnhanced

	// StateDiminished marks a piece whose capabilities have been reduced,
	// written with a "-" prefix.
	//
	// Canonical string: "diminished". Prefix: "-".
	StateDiminished

	// maxState is an internal sentinel value representing the upper bound
	// of valid State values. It is not a valid State and MUST NOT be used
	// in user code.
	maxState
)

// String constants for State values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of State and MAY be
// used in CLI flags and JSON/YAML documents. The single-character prefixes
// used inside notation strings are separate (see Prefix).
const (
	StateNormalStr     = "normal"
	StateEnhancedStr   = "enhanced"
	StateDiminishedStr = "diminished"
)

// Prefix constants: the textual form each state takes inside a notation
// string, before the piece letter.
const (
	StateNormalPrefix     = ""
	StateEnhancedPrefix   = "+"
	StateDiminishedPrefix = "-"
)

// ParseState converts a textual representation into a State value.
//
// The function accepts a small, case-insensitive vocabulary of strings and
// maps them to the corresponding constants:
//
//	"normal",     "Normal",     "NORMAL"     -> StateNormal
//	"enhanced",   "Enhanced",   "ENHANCED"   -> StateEnhanced
//	"diminished", "Diminished", "DIMINISHED" -> StateDiminished
//
// Any other input is treated as invalid, and ParseState returns a
// *errors.ParseError. Note that ParseState works on the spelled-out state
// names used in flags and documents, not on the "+"/"-" prefixes of the
// notation grammar; the prefixes are handled by ParsePiece.
func ParseState(s string) (State, error) {
	switch s {
	case StateNormalStr, "Normal", "NORMAL":
		return StateNormal, nil
	case StateEnhancedStr, "Enhanced", "ENHANCED":
		return StateEnhanced, nil
	case StateDiminishedStr, "Diminished", "DIMINISHED":
		return StateDiminished, nil
	default:
		return StateNormal, &errors.ParseError{Type: "State", Value: s}
	}
}

// Prefix returns the notation prefix for the state: "" for normal, "+" for
// enhanced, "-" for diminished. An invalid State yields "".
func (st State) Prefix() string {
	switch st {
	case StateEnhanced:
		return StateEnhancedPrefix
	case StateDiminished:
		return StateDiminishedPrefix
	default:
		return StateNormalPrefix
	}
}

// String returns the canonical string representation of the State value.
//
// The returned value is always lowercase. The mapping is:
//
//	StateNormal     -> "normal"
//	StateEnhanced   -> "enhanced"
//	StateDiminished -> "diminished"
//
// If the State value is not one of the defined constants, String returns
// "unknown".
func (st State) String() string {
	switch st {
	case StateNormal:
		return StateNormalStr
	case StateEnhanced:
		return StateEnhancedStr
	case StateDiminished:
		return StateDiminishedStr
	default:
		return "unknown"
	}
}

// Valid reports whether the State value is one of the defined constants.
//
// This method is primarily useful when State values may have been created
// via deserialization or numeric casts.
func (st State) Valid() bool {
	return st == StateNormal || st == StateEnhanced || st == StateDiminished
}

// TypeName returns "State", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (st State) TypeName() string {
	return "State"
}

// Redacted returns the same string representation as String().
//
// State values contain no sensitive information, so the redacted form is
// identical to the regular string form. This method implements part of the
// model.Model interface.
func (st State) Redacted() string {
	return st.String()
}

// IsZero reports whether the State has its zero value.
//
// For State (an enum type), the zero value is StateNormal (constant 0).
//
// Note: The zero value (StateNormal) is a valid State, so IsZero returning
// true does not indicate an error condition.
func (st State) IsZero() bool {
	return st == StateNormal
}

// Equal reports whether this State is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a State or *State.
func (st State) Equal(other any) bool {
	switch v := other.(type) {
	case State:
		return st == v
	case *State:
		if v == nil {
			return false
		}
		return st == *v
	default:
		return false
	}
}

// Validate checks whether the State value is one of the defined constants.
//
// This method returns nil if the State is valid, and a
// *errors.ValidationError if the value is outside the valid range.
func (st State) Validate() error {
	if !st.Valid() {
		return &errors.ValidationError{
			Type:   "State",
			Field:  "",
			Reason: "invalid State value",
			Value:  int(st),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for State.
//
// A valid State is serialized as its lowercase string representation (for
// example, "enhanced"). If the value is not valid, MarshalJSON returns a
// *errors.MarshalError.
func (st State) MarshalJSON() ([]byte, error) {
	if !st.Valid() {
		return nil, &errors.MarshalError{Type: "State", Value: int(st)}
	}
	return []byte(`"` + st.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for State.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: "normal", "enhanced", "diminished" (case-insensitive
//     variants accepted via ParseState).
//
//   - Number: 0 (StateNormal), 1 (StateEnhanced), 2 (StateDiminished).
//
// If the input cannot be parsed as either, or if it resolves to an invalid
// State, UnmarshalJSON returns a *errors.UnmarshalError.
func (st *State) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "State", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "State", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseState(s)
		if err != nil {
			return err
		}
		*st = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "State", Data: data, Reason: err.Error()}
	}
	*st = State(i)
	if !st.Valid() {
		return &errors.UnmarshalError{Type: "State", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for State.
//
// A valid State is serialized as its canonical string representation. If
// the value is not valid, MarshalYAML returns a *errors.MarshalError.
func (st State) MarshalYAML() (any, error) {
	if !st.Valid() {
		return nil, &errors.MarshalError{Type: "State", Value: int(st)}
	}
	return st.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for State.
//
// The method accepts string representations of State values and resolves
// them via ParseState. On failure, it returns the underlying
// *errors.ParseError.
func (st *State) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "State", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseState(s)
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for State.
//
// Textual form is the same lowercase string representation as used by
// String(). If the State value is invalid, MarshalText returns a
// *errors.MarshalError.
func (st State) MarshalText() ([]byte, error) {
	if !st.Valid() {
		return nil, &errors.MarshalError{Type: "State", Value: int(st)}
	}
	return []byte(st.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for State, accepting
// the same textual vocabulary as ParseState.
func (st *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// Compile-time check that State implements model.Model interface.
var _ model.Model = (*State)(nil)
