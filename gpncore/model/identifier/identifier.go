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

// Package identifier implements the composite piece identifier: a style
// half and a piece half joined by ":" under one cross-component rule.
//
// Each half has its own micro-grammar (see the style and piece packages)
// and independently derives the owning player from its letter casing. The
// composite adds the one property neither half carries alone: both halves
// MUST belong to the same player. "CHESS:K" and "shogi:+p" are valid;
// "CHESS:k" is not, even though both of its halves are, because the style
// says first player and the piece says second.
//
// Identifier is an immutable value type. Every construction path — Parse,
// New, NewFromParams — checks the side-consistency invariant before a
// value exists, and every transformation either preserves it trivially
// (state and type changes never touch sides) or re-establishes it
// atomically (Flip and WithSide rebuild both halves together). There is no
// partially-constructed observable state.
package identifier

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model"
	"tablut.dev/gpn/gpncore/model/piece"
	"tablut.dev/gpn/gpncore/model/side"
	"tablut.dev/gpn/gpncore/model/style"
)

// Identifier represents a composite piece identifier as an immutable
// value: one Style and one Piece belonging to the same player.
//
// This type implements the model.Model interface. The zero value of
// Identifier is not valid (both halves are zero); IsZero detects it and
// Validate rejects it.
//
// Identifier is comparable: two identifiers are equal under == exactly
// when their styles and pieces are field-wise equal, and equal identifiers
// may be used interchangeably as map keys. All methods use value
// receivers, so identifiers can be shared freely across goroutines.
type Identifier struct {
	// Style is the style half. Its side always equals the piece's side.
	Style style.Style

	// Piece is the piece half. Its side always equals the style's side.
	Piece piece.Piece
}

// New constructs an Identifier from pre-built component values.
//
// Both components are validated and the side-consistency invariant is
// re-checked even when the inputs were produced by the component parsers:
// the invariant is a relationship between the two values, not a property
// of either one, so no component can vouch for it alone. A violation
// fails with a *errors.SideMismatchError carrying both observed sides;
// an invalid component fails with its own validation error.
func New(st style.Style, pc piece.Piece) (Identifier, error) {
	if err := st.Validate(); err != nil {
		return Identifier{}, err
	}
	if err := pc.Validate(); err != nil {
		return Identifier{}, err
	}
	if st.Side != pc.Side {
		return Identifier{}, &errors.SideMismatchError{
			StyleSide: st.Side.String(),
			PieceSide: pc.Side.String(),
		}
	}
	return Identifier{Style: st, Piece: pc}, nil
}

// NewFromParams constructs an Identifier from raw parameters, building
// both components internally. The single sd parameter fixes the side of
// both halves, so a side mismatch cannot arise through this path; name and
// letter are case-insensitive identities as in style.NewStyle and
// piece.NewPiece, and invalid parameters fail with the component's error.
//
// Example usage:
//
//	id, err := identifier.NewFromParams("Shogi", side.SecondPlayer, 'p', piece.StateEnhanced)
//	// id.String() = "shogi:+p"
func NewFromParams(name string, sd side.Side, letter rune, st piece.State) (Identifier, error) {
	sty, err := style.NewStyle(name, sd)
	if err != nil {
		return Identifier{}, err
	}
	pc, err := piece.NewPiece(letter, sd, st)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Style: sty, Piece: pc}, nil
}

// String returns the textual form of the identifier: the style half, the
// separator, and the piece half. For every valid identifier,
// Parse-ing the result (under the variant that produced it) yields an
// equal value.
func (i Identifier) String() string {
	return i.Style.String() + Separator + i.Piece.String()
}

// Side returns the player owning the identifier. The side-consistency
// invariant guarantees both halves agree, so a single accessor suffices.
func (i Identifier) Side() side.Side {
	return i.Style.Side
}

// Type returns the canonical (uppercase) piece type letter.
func (i Identifier) Type() rune {
	return i.Piece.Type
}

// State returns the piece's modifier state.
func (i Identifier) State() piece.State {
	return i.Piece.State
}

// StyleName returns the canonical (uppercase) style name.
func (i Identifier) StyleName() string {
	return i.Style.Name
}

// Terminal reports whether the piece carries the terminal marker of the
// extended format variant.
func (i Identifier) Terminal() bool {
	return i.Piece.Terminal
}

// FirstPlayer reports whether the identifier belongs to the first player.
func (i Identifier) FirstPlayer() bool {
	return i.Side() == side.FirstPlayer
}

// SecondPlayer reports whether the identifier belongs to the second
// player.
func (i Identifier) SecondPlayer() bool {
	return i.Side() == side.SecondPlayer
}

// Enhance returns an identifier whose piece is in the enhanced state. The
// style half is untouched, so the side-consistency invariant is preserved
// trivially. If the piece is already enhanced, Enhance returns the
// receiver unchanged; this no-op identity holds for every transformation
// on Identifier and is part of the contract.
func (i Identifier) Enhance() Identifier {
	return i.WithState(piece.StateEnhanced)
}

// Diminish returns an identifier whose piece is in the diminished state,
// or the receiver unchanged if it already is.
func (i Identifier) Diminish() Identifier {
	return i.WithState(piece.StateDiminished)
}

// Normalize returns an identifier whose piece is in the normal state, or
// the receiver unchanged if it already is. Normalize is idempotent.
func (i Identifier) Normalize() Identifier {
	return i.WithState(piece.StateNormal)
}

// WithState returns an identifier whose piece has the given state and is
// otherwise unchanged. If st equals the current state, WithState returns
// the receiver unchanged.
func (i Identifier) WithState(st piece.State) Identifier {
	np := i.Piece.WithState(st)
	if np == i.Piece {
		return i
	}
	return Identifier{Style: i.Style, Piece: np}
}

// WithType returns an identifier whose piece has the given type letter
// and is otherwise unchanged. The letter is case-insensitive; a
// non-letter fails with a *errors.ValidationError. If the canonical
// letter equals the current type, WithType returns the receiver
// unchanged.
func (i Identifier) WithType(letter rune) (Identifier, error) {
	np, err := i.Piece.WithType(letter)
	if err != nil {
		return Identifier{}, err
	}
	if np == i.Piece {
		return i, nil
	}
	return Identifier{Style: i.Style, Piece: np}, nil
}

// WithTerminal returns an identifier whose piece has the terminal marker
// set or cleared, or the receiver unchanged if the marker already has the
// requested value.
func (i Identifier) WithTerminal(terminal bool) Identifier {
	np := i.Piece.WithTerminal(terminal)
	if np == i.Piece {
		return i
	}
	return Identifier{Style: i.Style, Piece: np}
}

// WithName returns an identifier whose style has the given canonical name
// on the current side, with the piece unchanged. The name is
// case-insensitive and MUST satisfy the style grammar. If the canonical
// name equals the current one, WithName returns the receiver unchanged.
func (i Identifier) WithName(name string) (Identifier, error) {
	ns, err := style.NewStyle(name, i.Style.Side)
	if err != nil {
		return Identifier{}, err
	}
	if ns == i.Style {
		return i, nil
	}
	return Identifier{Style: ns, Piece: i.Piece}, nil
}

// WithStyle returns an identifier holding the given style with the piece
// unchanged. The style is validated and MUST belong to the same player as
// the piece; a different side fails with a *errors.SideMismatchError,
// because replacing one half alone must never break the invariant. To
// change sides, use WithSide or Flip, which move both halves together.
// If st equals the current style, WithStyle returns the receiver
// unchanged.
func (i Identifier) WithStyle(st style.Style) (Identifier, error) {
	if err := st.Validate(); err != nil {
		return Identifier{}, err
	}
	if st.Side != i.Piece.Side {
		return Identifier{}, &errors.SideMismatchError{
			StyleSide: st.Side.String(),
			PieceSide: i.Piece.Side.String(),
		}
	}
	if st == i.Style {
		return i, nil
	}
	return Identifier{Style: st, Piece: i.Piece}, nil
}

// WithSide returns an identifier owned by the given player. Both halves
// are rebuilt with the new side in one step — name, type, state and
// terminal marker are preserved — because moving either half alone would
// break the side-consistency invariant. If sd equals the current side,
// WithSide returns the receiver unchanged.
//
// WithSide does not validate sd; combining an Identifier with an
// out-of-range side produces a value that fails Validate, exactly like
// hand-building the struct.
func (i Identifier) WithSide(sd side.Side) Identifier {
	if sd == i.Side() {
		return i
	}
	return Identifier{
		Style: i.Style.WithSide(sd),
		Piece: i.Piece.WithSide(sd),
	}
}

// Flip returns the same piece in the other player's hands. Flip is an
// involution: i.Flip().Flip() == i for every valid identifier.
//
// Example:
//
//	id, _ := identifier.Parse("CHESS:K")
//	id.Flip().String() // "chess:k"
func (i Identifier) Flip() Identifier {
	return i.WithSide(i.Side().Opposite())
}

// TypeName returns "Identifier", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (i Identifier) TypeName() string {
	return "Identifier"
}

// Redacted returns the same string representation as String().
//
// Identifier values contain no sensitive information, so the redacted
// form is identical to the regular string form. This method implements
// part of the model.Model interface.
func (i Identifier) Redacted() string {
	return i.String()
}

// IsZero reports whether both halves have their zero values. The zero
// value is not a valid identifier; use Validate to check validity.
func (i Identifier) IsZero() bool {
	return i.Style.IsZero() && i.Piece.IsZero()
}

// Equal reports whether this Identifier is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is an Identifier or *Identifier. Two identifiers are equal if
// their styles and pieces are field-wise equal.
func (i Identifier) Equal(other any) bool {
	switch v := other.(type) {
	case Identifier:
		return i == v
	case *Identifier:
		if v == nil {
			return false
		}
		return i == *v
	default:
		return false
	}
}

// Validate checks both components and the side-consistency invariant.
//
// This method returns nil for every value produced by Parse, New,
// NewFromParams or the transformation methods. Hand-built struct literals
// that violate a component grammar fail with that component's
// *errors.ValidationError; literals pairing halves of different players
// fail with a *errors.SideMismatchError.
func (i Identifier) Validate() error {
	if err := i.Style.Validate(); err != nil {
		return err
	}
	if err := i.Piece.Validate(); err != nil {
		return err
	}
	if i.Style.Side != i.Piece.Side {
		return &errors.SideMismatchError{
			StyleSide: i.Style.Side.String(),
			PieceSide: i.Piece.Side.String(),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Identifier.
//
// A valid identifier is serialized as its textual notation form (for
// example, "CHESS:K" or "shogi:+p"). An invalid identifier fails with its
// validation error.
func (i Identifier) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + i.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Identifier.
//
// The method accepts a JSON string holding the textual notation form.
// Deserialization accepts the terminal-marker variant so that any
// identifier produced by MarshalJSON round-trips. On failure it returns a
// *errors.UnmarshalError or the underlying typed parse error.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: data, Reason: err.Error()}
	}
	parsed, err := Options{TerminalMarker: true}.Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Identifier.
//
// A valid identifier is serialized as its textual notation form. An
// invalid identifier fails with its validation error.
func (i Identifier) MarshalYAML() (any, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Identifier.
//
// The method accepts a YAML scalar holding the textual notation form,
// using the same terminal-marker-tolerant grammar as UnmarshalJSON.
func (i *Identifier) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Identifier", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := Options{TerminalMarker: true}.Parse(s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Identifier. Textual
// form is the same notation string as used by String(). An invalid
// identifier fails with its validation error.
func (i Identifier) MarshalText() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Identifier,
// accepting the same terminal-marker-tolerant grammar as UnmarshalJSON.
func (i *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Options{TerminalMarker: true}.Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Compile-time check that Identifier implements model.Model interface.
var _ model.Model = (*Identifier)(nil)
