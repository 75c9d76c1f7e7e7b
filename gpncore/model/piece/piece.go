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

// Package piece implements the piece half of a composite identifier: the
// sub-notation naming a piece's type, its modifier state, and — through
// letter casing — the player owning it.
//
// The canonical grammar is an optional "+" or "-" state prefix followed by
// exactly one ASCII letter: "K", "+p", "-R". Uppercase letters belong to
// the first player, lowercase to the second. A format variant additionally
// allows a trailing "'" terminal marker; that variant is reachable through
// the identifier package's Options and through deserialization, never
// through the canonical ParsePiece.
package piece

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model"
	"tablut.dev/gpn/gpncore/model/side"
)

// piecePattern is the canonical piece grammar: an optional single state
// modifier followed by exactly one ASCII letter.
const piecePattern = `^[-+]?[A-Za-z]$`

// PieceRegexp is the compiled canonical piece grammar.
//
// It is safe for concurrent use by multiple goroutines. Callers SHOULD
// prefer ParsePiece or ValidPiece rather than using this regexp directly,
// so that side and state derivation and error reporting remain consistent
// across the codebase.
var PieceRegexp = regexp.MustCompile(piecePattern)

// Piece represents the piece half of a composite identifier as an
// immutable value: a piece type, the side owning it, a modifier state, and
// the optional terminal marker of the extended format variant.
//
// This type implements the model.Model interface. The zero value of Piece
// (Type 0) is not a valid piece because the grammar requires a letter;
// IsZero detects it and Validate rejects it.
//
// All methods use value receivers and every transformation returns a new
// value (or the receiver itself when nothing changes), so a Piece can be
// shared freely across goroutines.
type Piece struct {
	// Type is the canonical piece type: an uppercase ASCII letter
	// ('A'..'Z') regardless of side. The owning side decides how the
	// letter renders.
	Type rune

	// Side is the player owning this piece. It controls whether String
	// renders the letter in uppercase (FirstPlayer) or lowercase
	// (SecondPlayer).
	Side side.Side

	// State is the modifier state: normal, enhanced ("+" prefix), or
	// diminished ("-" prefix).
	State State

	// Terminal marks the piece with the trailing "'" of the extended
	// format variant. It is false for every piece parsed through the
	// canonical grammar.
	Terminal bool
}

// ParsePiece parses the canonical textual form of a piece into a Piece
// value.
//
// The input MUST match ^[-+]?[A-Za-z]$: at most one state modifier
// followed by exactly one ASCII letter. The letter's case determines the
// side; the letter is canonicalized to uppercase. Anything else — an empty
// string, a lone or doubled modifier, multiple letters, non-ASCII letters,
// or whitespace anywhere — fails with a *errors.ParseError naming the
// violated rule. No trimming is ever performed.
//
// Example usage:
//
//	p, err := piece.ParsePiece("+p")
//	// p = Piece{Type: 'P', Side: side.SecondPlayer, State: piece.StateEnhanced}
//
//	p, err := piece.ParsePiece("K")
//	// p = Piece{Type: 'K', Side: side.FirstPlayer, State: piece.StateNormal}
func ParsePiece(s string) (Piece, error) {
	return parsePiece(s, false)
}

// ValidPiece reports whether s is a well-formed canonical piece string.
//
// It answers exactly the question ParsePiece answers, without constructing
// a value or allocating an error.
func ValidPiece(s string) bool {
	return PieceRegexp.MatchString(s)
}

// parsePiece is the shared parsing path. When allowTerminal is true the
// extended variant grammar ^[-+]?[A-Za-z]'?$ is accepted and a trailing "'"
// sets the Terminal field; deserialization uses this so that constructed
// values round-trip.
func parsePiece(s string, allowTerminal bool) (Piece, error) {
	if s == "" {
		return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "empty string"}
	}

	body := s
	terminal := false
	if allowTerminal && strings.HasSuffix(body, "'") {
		body = body[:len(body)-1]
		terminal = true
	}

	st := StateNormal
	rest := body
	switch {
	case rest == "":
		return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "missing piece letter"}
	case rest[0] == '+':
		st = StateEnhanced
		rest = rest[1:]
	case rest[0] == '-':
		st = StateDiminished
		rest = rest[1:]
	}

	if rest == "" {
		return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "missing piece letter"}
	}
	if len(rest) > 1 {
		if rest[0] == '+' || rest[0] == '-' {
			return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "multiple state modifiers"}
		}
		return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "must contain exactly one letter"}
	}

	switch c := rest[0]; {
	case c >= 'A' && c <= 'Z':
		return Piece{Type: rune(c), Side: side.FirstPlayer, State: st, Terminal: terminal}, nil
	case c >= 'a' && c <= 'z':
		return Piece{Type: rune(c - 'a' + 'A'), Side: side.SecondPlayer, State: st, Terminal: terminal}, nil
	default:
		return Piece{}, &errors.ParseError{Type: "Piece", Value: s, Reason: "must be an ASCII letter"}
	}
}

// NewPiece constructs a Piece from explicit parameters.
//
// The letter is case-insensitive ('k' and 'K' denote the same type) and is
// canonicalized to uppercase; it MUST be an ASCII letter. The side and
// state MUST be defined constants of their enums. Each invalid parameter
// fails with a *errors.ValidationError naming the offending field and
// carrying the rejected value.
//
// Example usage:
//
//	p, err := piece.NewPiece('p', side.SecondPlayer, piece.StateEnhanced)
//	// p.String() = "+p"
func NewPiece(letter rune, sd side.Side, st State) (Piece, error) {
	canonical, ok := canonicalLetter(letter)
	if !ok {
		return Piece{}, &errors.ValidationError{
			Type:   "Piece",
			Field:  "Type",
			Reason: "must be a single ASCII letter",
			Value:  string(letter),
		}
	}
	if err := sd.Validate(); err != nil {
		return Piece{}, &errors.ValidationError{
			Type:   "Piece",
			Field:  "Side",
			Reason: "unknown side",
			Value:  int(sd),
		}
	}
	if err := st.Validate(); err != nil {
		return Piece{}, &errors.ValidationError{
			Type:   "Piece",
			Field:  "State",
			Reason: "unknown state",
			Value:  int(st),
		}
	}

	return Piece{Type: canonical, Side: sd, State: st}, nil
}

// canonicalLetter maps an ASCII letter of either case to its uppercase
// form. The second result is false for anything that is not an ASCII
// letter.
func canonicalLetter(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r, true
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	default:
		return 0, false
	}
}

// String returns the textual form of the piece: the state prefix, the type
// letter rendered in the case of the owning side, and the terminal marker
// when set. For every valid piece the canonical form (Terminal false)
// satisfies ParsePiece(p.String()) == p.
func (p Piece) String() string {
	letter := p.Type
	if p.Side == side.SecondPlayer {
		letter = letter + ('a' - 'A')
	}
	s := p.State.Prefix() + string(letter)
	if p.Terminal {
		s += "'"
	}
	return s
}

// Normal reports whether the piece is in its normal state.
func (p Piece) Normal() bool {
	return p.State == StateNormal
}

// Enhanced reports whether the piece is in its enhanced state.
func (p Piece) Enhanced() bool {
	return p.State == StateEnhanced
}

// Diminished reports whether the piece is in its diminished state.
func (p Piece) Diminished() bool {
	return p.State == StateDiminished
}

// FirstPlayer reports whether the piece belongs to the first player.
func (p Piece) FirstPlayer() bool {
	return p.Side == side.FirstPlayer
}

// SecondPlayer reports whether the piece belongs to the second player.
func (p Piece) SecondPlayer() bool {
	return p.Side == side.SecondPlayer
}

// Enhance returns a piece in the enhanced state.
//
// If the piece is already enhanced, Enhance returns the receiver
// unchanged; the result is then == to the original value. This no-op
// identity holds for every transformation on Piece and is part of the
// contract, not an implementation detail.
func (p Piece) Enhance() Piece {
	return p.WithState(StateEnhanced)
}

// Diminish returns a piece in the diminished state, or the receiver
// unchanged if it is already diminished.
func (p Piece) Diminish() Piece {
	return p.WithState(StateDiminished)
}

// Normalize returns a piece in the normal state, or the receiver unchanged
// if it is already normal. Normalize is idempotent:
// p.Normalize().Normalize() == p.Normalize().
func (p Piece) Normalize() Piece {
	return p.WithState(StateNormal)
}

// WithState returns a piece with the given state and all other fields
// unchanged. If st equals the current state, WithState returns the
// receiver unchanged.
//
// WithState does not validate st; combining a Piece with an out-of-range
// state produces a value that fails Validate, exactly like constructing
// the struct literal directly.
func (p Piece) WithState(st State) Piece {
	if st == p.State {
		return p
	}
	p.State = st
	return p
}

// WithSide returns a piece owned by the given side and all other fields
// unchanged. If sd equals the current side, WithSide returns the receiver
// unchanged.
func (p Piece) WithSide(sd side.Side) Piece {
	if sd == p.Side {
		return p
	}
	p.Side = sd
	return p
}

// WithTerminal returns a piece with the terminal marker set or cleared.
// If the marker already has the requested value, WithTerminal returns the
// receiver unchanged.
func (p Piece) WithTerminal(terminal bool) Piece {
	if terminal == p.Terminal {
		return p
	}
	p.Terminal = terminal
	return p
}

// WithType returns a piece of the given type and all other fields
// unchanged. The letter is case-insensitive and canonicalized to
// uppercase; a non-letter fails with a *errors.ValidationError. If the
// canonical letter equals the current type, WithType returns the receiver
// unchanged.
func (p Piece) WithType(letter rune) (Piece, error) {
	canonical, ok := canonicalLetter(letter)
	if !ok {
		return Piece{}, &errors.ValidationError{
			Type:   "Piece",
			Field:  "Type",
			Reason: "must be a single ASCII letter",
			Value:  string(letter),
		}
	}
	if canonical == p.Type {
		return p, nil
	}
	p.Type = canonical
	return p, nil
}

// TypeName returns "Piece", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (p Piece) TypeName() string {
	return "Piece"
}

// Redacted returns the same string representation as String().
//
// Piece values contain no sensitive information, so the redacted form is
// identical to the regular string form. This method implements part of the
// model.Model interface.
func (p Piece) Redacted() string {
	return p.String()
}

// IsZero reports whether the Piece has its zero value (no type letter,
// first-player side, normal state, no terminal marker). The zero value is
// not a valid piece; use Validate to check validity.
func (p Piece) IsZero() bool {
	return p == Piece{}
}

// Equal reports whether this Piece is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a Piece or *Piece. Two pieces are equal if all four fields
// match.
func (p Piece) Equal(other any) bool {
	switch v := other.(type) {
	case Piece:
		return p == v
	case *Piece:
		if v == nil {
			return false
		}
		return p == *v
	default:
		return false
	}
}

// Validate checks that the Piece satisfies the piece grammar: the type is
// an uppercase ASCII letter and the side and state are defined enum
// constants.
//
// This method returns nil for every value produced by ParsePiece, NewPiece
// or the transformation methods. It returns a *errors.ValidationError for
// hand-built struct literals that violate the grammar, including the zero
// value.
func (p Piece) Validate() error {
	if p.Type < 'A' || p.Type > 'Z' {
		return &errors.ValidationError{
			Type:   "Piece",
			Field:  "Type",
			Reason: "must be an uppercase ASCII letter",
			Value:  string(p.Type),
		}
	}
	if err := p.Side.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Piece",
			Field:  "Side",
			Reason: "unknown side",
			Value:  int(p.Side),
		}
	}
	if err := p.State.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Piece",
			Field:  "State",
			Reason: "unknown state",
			Value:  int(p.State),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Piece.
//
// A valid piece is serialized as its textual notation form (for example,
// "+p" or "K"), so documents carry the same compact spelling users write
// by hand. An invalid piece fails with its validation error.
func (p Piece) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Piece.
//
// The method accepts a JSON string holding the textual notation form.
// Deserialization accepts the extended variant grammar (trailing "'"
// allowed) so that any piece produced by MarshalJSON round-trips,
// including pieces carrying the terminal marker. On failure it returns a
// *errors.UnmarshalError or the underlying *errors.ParseError.
func (p *Piece) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Piece", Data: data, Reason: err.Error()}
	}
	parsed, err := parsePiece(s, true)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Piece.
//
// A valid piece is serialized as its textual notation form. An invalid
// piece fails with its validation error.
func (p Piece) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Piece.
//
// The method accepts a YAML scalar holding the textual notation form,
// using the same extended variant grammar as UnmarshalJSON. On failure it
// returns the underlying *errors.ParseError.
func (p *Piece) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Piece", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := parsePiece(s, true)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Piece. Textual form is
// the same notation string as used by String(). An invalid piece fails
// with its validation error.
func (p Piece) MarshalText() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Piece, accepting
// the same extended variant grammar as UnmarshalJSON.
func (p *Piece) UnmarshalText(text []byte) error {
	parsed, err := parsePiece(string(text), true)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Compile-time check that Piece implements model.Model interface.
var _ model.Model = (*Piece)(nil)
