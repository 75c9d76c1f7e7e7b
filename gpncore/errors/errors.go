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

// Package errors provides reusable error types for gpn notation types.
//
// This package defines the common error values used across the gpncore
// packages (side, style, piece, identifier) when parsing, constructing,
// marshaling and unmarshaling notation values. By centralizing these types,
// the package eliminates code duplication and provides a consistent error
// handling story across the entire gpn surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a notation value fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, from CLI arguments, configuration files or documents).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a notation value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a notation value fails.
//     Use this in Validate() methods and parameterized constructors to
//     report constraint violations or invalid field values.
//
//   - SideMismatchError
//     Returned when the two halves of a composite identifier belong to
//     different players. This is the one error that describes a relationship
//     between two otherwise independently valid values rather than a defect
//     of either value alone, so it carries both observed sides.
//
// # Usage
//
// Each package that defines notation types can use these error types
// directly or create type aliases for better API clarity:
//
//	import "tablut.dev/gpn/gpncore/errors"
//
//	func ParseState(s string) (State, error) {
//	    switch s {
//	    case "normal":
//	        return StateNormal, nil
//	    case "enhanced":
//	        return StateEnhanced, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "State", Value: s}
//	    }
//	}
package errors

import "strconv"

// ParseError is returned when parsing a string into a notation value fails.
//
// Type identifies the logical type being parsed (for example, "Style",
// "Piece", "Identifier", "Side", "State"), and Value contains the exact
// string that could not be interpreted. Reason optionally narrows down which
// grammar rule was violated. Callers MAY pattern-match on Type to translate
// errors into friendlier messages.
//
// # Example
//
//	func ParseSide(s string) (Side, error) {
//	    switch s {
//	    case "first":
//	        return FirstPlayer, nil
//	    case "second":
//	        return SecondPlayer, nil
//	    default:
//	        // Returned error will format as:
//	        // "gpn: invalid Side value: <value>"
//	        return 0, &errors.ParseError{
//	            Type:  "Side",
//	            Value: s,
//	        }
//	    }
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Piece").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason optionally identifies the grammar rule that was violated
	// (for example, "missing separator" or "mixed case"). May be empty
	// when the value simply does not match the grammar at all.
	Reason string
}

// Error implements the error interface for ParseError.
//
// The error message formats are:
//
//	"gpn: invalid {Type} value: {Value}"
//	"gpn: invalid {Type} value: {Value}: {Reason}" (when Reason is set)
//
// For example:
//
//	"gpn: invalid Piece value: ++K: multiple state modifiers"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	msg := "gpn: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Side"), and
// Value contains the underlying numeric value that was deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid enum-like
// values from being silently emitted into JSON, YAML or other serialized
// forms. In most cases a MarshalError indicates a programming error (for
// example, an unchecked numeric cast).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "State").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"gpn: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "gpn: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated (for example, "Identifier"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong.
//
// This struct is intended to be surfaced directly in diagnostics so that
// users can understand why their document or payload could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data")
	// rather than repeating the type name; the type name is already
	// available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"gpn: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose output; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "gpn: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a notation value fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Piece", "Style"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the failure,
// and Value optionally contains the problematic value.
//
// This error is used by Validate() methods and by parameterized constructors
// (NewStyle, NewPiece, NewFromParams) to report invalid field values, so a
// caller can tell exactly which parameter was rejected and why.
//
// # Example
//
//	func NewPiece(letter rune, sd side.Side, st State) (Piece, error) {
//	    if !st.Valid() {
//	        return Piece{}, &errors.ValidationError{
//	            Type:   "Piece",
//	            Field:  "State",
//	            Reason: "unknown state",
//	            Value:  int(st),
//	        }
//	    }
//	    ...
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message formats are:
//
//	"gpn: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"gpn: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"gpn: invalid Piece.Type: must be a single ASCII letter"
//	"gpn: invalid Style: mixed case"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "gpn: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "gpn: invalid " + e.Type + ": " + e.Reason
}

// SideMismatchError is returned when constructing or parsing a composite
// identifier whose style half and piece half belong to different players.
//
// Both halves may be individually well-formed; the defect is the
// relationship between them. The error therefore carries both observed
// sides, rendered in their canonical textual form ("first", "second"), so
// diagnostics can show exactly which half pointed where.
//
// A SideMismatchError is produced by identifier.Parse when the two halves of
// the input disagree on casing, and by identifier.New when pre-built
// components with different sides are combined. It is never produced by the
// style or piece packages on their own.
type SideMismatchError struct {
	// StyleSide is the textual form of the side derived from the style half.
	StyleSide string

	// PieceSide is the textual form of the side derived from the piece half.
	PieceSide string
}

// Error implements the error interface for SideMismatchError.
//
// The error message format is:
//
//	"gpn: side mismatch: style belongs to {StyleSide}, piece belongs to {PieceSide}"
//
// For example:
//
//	"gpn: side mismatch: style belongs to first, piece belongs to second"
func (e *SideMismatchError) Error() string {
	return "gpn: side mismatch: style belongs to " + e.StyleSide +
		", piece belongs to " + e.PieceSide
}
