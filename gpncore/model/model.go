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

// Package model defines the core contracts that all gpn notation types MUST
// implement to ensure consistency, type safety, and proper behavior across
// the whole library.
//
// Every type representing a piece of notation (Side, State, Style, Piece,
// Identifier) implements the Model interface or its constituent parts
// (Validatable, Serializable, Loggable, Identifiable, ZeroCheckable). These
// interfaces establish a common contract for validation, serialization,
// logging, and identity that enables generic operations and guarantees
// safety at compile time.
//
// The contracts defined in this package prioritize data integrity and
// debuggability. Validation ensures that invalid notation cannot be
// constructed or serialized. Serialization provides round-trip guarantees
// for documents and API payloads: every notation value marshals to its
// canonical textual form and unmarshals back to an equal value. Loggable
// provides both a full and a production-safe string form. Identifiable
// enables reflection-free structured logging. ZeroCheckable supports
// optional field detection.
//
// All gpn notation types are immutable value types: their methods never
// mutate the receiver (except the Unmarshal* family, which by contract
// writes through a pointer receiver), and every transformation returns a new
// value. This makes them naturally safe for concurrent read access without
// synchronization.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, MustValidate,
// SafeString, ToJSON, ToYAML, FromJSON, and FromYAML. These helpers rely on
// the Model contract and fail at compile time when applied to types that do
// not implement it.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for gpn notation types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking the grammar and invariants of the value;
// Serializable provides round-trip JSON and YAML encoding of the canonical
// textual form; Loggable offers both safe (redacted) and full string
// representations; Identifiable supplies a canonical type name; and
// ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are immutable value types. Methods defined on Model MUST
// NOT mutate the receiver unless explicitly documented (unmarshaling).
// Concurrent reads are always safe.
//
// Example implementation sketch:
//
//	type MyNotation struct {
//	    Letter rune
//	}
//
//	func (n MyNotation) Validate() error { ... }
//	func (n MyNotation) TypeName() string { return "MyNotation" }
//	func (n MyNotation) IsZero() bool { return n.Letter == 0 }
//	func (n MyNotation) Redacted() string { return n.String() }
//	func (n MyNotation) String() string { ... }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyNotation)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
// Every notation type MUST implement Validate to verify that all grammar
// rules and invariants hold and that the instance can be rendered back to a
// valid notation string.
//
// The Validate method MUST check every field against its micro-grammar (for
// example, that a piece letter is a single ASCII letter, or that a style
// name starts with a letter and contains only alphanumerics), verify
// cross-field consistency where applicable (the side-consistency invariant
// of a composite identifier), recursively validate any nested notation
// values, and return nil if and only if the instance is fully valid. When
// validation fails, the returned error MUST describe what is invalid in a
// way that helps callers diagnose the problem; prefer specific messages like
// "Piece.Type: must be a single ASCII letter" over generic ones.
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on external
// mutable state. For notation values validation is a bounded computation
// over a short fixed-length string; no I/O is ever involved.
//
// Callers SHOULD invoke Validate at boundaries: after unmarshaling from JSON
// or YAML, after constructing instances from struct literals, and before
// emitting notation into documents. Values produced by the Parse* and New*
// constructors are always valid by construction.
type Validatable interface {
	// Validate checks that the instance satisfies all grammar rules and
	// invariants. It returns nil if the instance is valid, or a descriptive
	// error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML. All notation types MUST support both
// formats so that identifiers can appear in configuration files (typically
// YAML) and API payloads (typically JSON) as plain strings.
//
// Implementations MUST call Validate before marshaling so that only valid
// notation is serialized, and MUST validate after unmarshaling so that
// malformed notation from external sources is rejected at the boundary. If
// either check fails, the marshal or unmarshal method MUST return the error
// rather than producing or accepting invalid data.
//
// Notation types serialize to their canonical textual form (for example, an
// identifier serializes to the JSON string "CHESS:K"), so a value serialized
// and then deserialized MUST equal the original value in both formats.
//
// Marshal methods are safe for concurrent use because the receivers are
// immutable values. Unmarshal methods mutate the receiver and require
// exclusive access for the duration of the call.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. Notation values carry no credentials or personal data, so for
// every gpn type Redacted is identical to String; the method exists so that
// notation values compose with logging helpers that require an explicitly
// safe form, and so that any future type that does carry sensitive fields
// has a place to mask them.
//
// The String method returns the canonical human-readable representation.
// For notation values this is the notation string itself (for example,
// "shogi:+p"), which doubles as the serialization form.
//
// Both methods MUST be fast, MUST NOT mutate the receiver, MUST NOT have
// side effects, and MUST be safe to call concurrently.
type Loggable interface {
	// Redacted returns a string representation safe for production logs.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	Redacted() string

	// String returns the canonical human-readable representation of the
	// value. For notation types this is the notation string itself.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side effects,
	// and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type and
// unique within gpn. It SHOULD follow CamelCase convention (for example,
// "Style", "Piece", "Identifier") and MUST NOT include a package prefix.
// The name identifies the type, not the instance.
//
// Type names appear in error messages (the errors package embeds them in
// ParseError and ValidationError), in logs, and in test diagnostics.
//
// TypeName MUST be fast, MUST NOT allocate, MUST NOT have side effects, and
// MUST be safe to call concurrently. It SHOULD return a string constant.
type Identifiable interface {
	// TypeName returns the canonical name of this notation type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection and
// filtering of unset values before serialization.
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful notation is present. Whether the zero value
// is also *valid* varies by type: enum types whose zero value names a real
// constant (FirstPlayer, StateNormal) are valid when zero, while structured
// types (Style, Piece, Identifier) are not, because an empty name or letter
// violates their grammar.
//
// IsZero MUST be fast, deterministic, and side-effect free, and MUST be
// safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether the instance is in a zero or empty state.
	IsZero() bool
}
