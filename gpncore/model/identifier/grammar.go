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

package identifier

import (
	"strings"

	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model/piece"
	"tablut.dev/gpn/gpncore/model/side"
	"tablut.dev/gpn/gpncore/model/style"
)

// Separator joins the style half and the piece half of a composite
// identifier. Exactly one separator MUST appear in a valid identifier.
const Separator = ":"

// Options selects between the format variants of the composite grammar.
//
// The zero value is the canonical grammar and is what the package-level
// Valid and Parse use. Variants are opt-in per call site, never global
// state.
type Options struct {
	// TerminalMarker, when true, extends the piece half grammar to
	// ^[-+]?[A-Za-z]'?$: a trailing "'" is accepted and surfaced as the
	// piece's Terminal attribute. The canonical grammar (false) rejects
	// the marker.
	TerminalMarker bool
}

// Valid reports whether s is a valid composite identifier under the
// canonical grammar. It is equivalent to Options{}.Valid(s).
func Valid(s string) bool {
	return Options{}.Valid(s)
}

// Parse parses a composite identifier under the canonical grammar. It is
// equivalent to Options{}.Parse(s).
func Parse(s string) (Identifier, error) {
	return Options{}.Parse(s)
}

// Valid reports whether s is a valid composite identifier under the
// selected format variant.
//
// The check runs the same steps as Parse — structural split, per-half
// grammar, cross-half side consistency — but answers yes/no without
// constructing a value or allocating an error, using the halves' cheap
// validity predicates. Any failure, at any step, yields false; Valid never
// returns an error for malformed input. Callers needing to know why a
// string is invalid MUST use Parse instead.
//
// Whitespace anywhere in the input is invalid; no trimming is performed.
func (o Options) Valid(s string) bool {
	styleHalf, pieceHalf, ok := splitHalves(s)
	if !ok {
		return false
	}

	if !style.ValidStyle(styleHalf) {
		return false
	}

	body := pieceHalf
	if o.TerminalMarker && strings.HasSuffix(body, "'") {
		body = body[:len(body)-1]
	}
	if !piece.ValidPiece(body) {
		return false
	}

	// Both halves are well-formed; the one remaining question is whether
	// they belong to the same player.
	return styleHalfSide(styleHalf) == pieceHalfSide(body)
}

// Parse parses a composite identifier under the selected format variant.
//
// Parse performs, in order: the structural split on the separator, the
// style half grammar, the piece half grammar, and the cross-half side
// consistency check. It stops at the first failing step and returns a
// typed error naming it:
//
//   - *errors.ParseError with Type "Identifier" for structural failures
//     (empty input, missing separator, multiple separators, empty half);
//   - the style half's *errors.ParseError (Type "Style") or the piece
//     half's (Type "Piece") for grammar failures;
//   - *errors.SideMismatchError, carrying both observed sides, when the
//     halves belong to different players.
//
// On success the returned Identifier satisfies the side-consistency
// invariant by construction and Parse(s).String() == s.
func (o Options) Parse(s string) (Identifier, error) {
	if s == "" {
		return Identifier{}, &errors.ParseError{Type: "Identifier", Value: s, Reason: "empty string"}
	}

	sep := strings.Index(s, Separator)
	if sep < 0 {
		return Identifier{}, &errors.ParseError{Type: "Identifier", Value: s, Reason: "missing separator"}
	}
	if strings.Contains(s[sep+1:], Separator) {
		return Identifier{}, &errors.ParseError{Type: "Identifier", Value: s, Reason: "multiple separators"}
	}

	styleHalf, pieceHalf := s[:sep], s[sep+1:]
	if styleHalf == "" {
		return Identifier{}, &errors.ParseError{Type: "Identifier", Value: s, Reason: "empty style half"}
	}
	if pieceHalf == "" {
		return Identifier{}, &errors.ParseError{Type: "Identifier", Value: s, Reason: "empty piece half"}
	}

	st, err := style.ParseStyle(styleHalf)
	if err != nil {
		return Identifier{}, err
	}

	body := pieceHalf
	terminal := false
	if o.TerminalMarker && strings.HasSuffix(body, "'") {
		body = body[:len(body)-1]
		terminal = true
	}
	pc, err := piece.ParsePiece(body)
	if err != nil {
		return Identifier{}, err
	}
	pc = pc.WithTerminal(terminal)

	if st.Side != pc.Side {
		return Identifier{}, &errors.SideMismatchError{
			StyleSide: st.Side.String(),
			PieceSide: pc.Side.String(),
		}
	}

	return Identifier{Style: st, Piece: pc}, nil
}

// splitHalves splits s into its style and piece halves around a single
// separator. ok is false when s is empty, has no separator, has more than
// one, or either half is empty.
func splitHalves(s string) (styleHalf, pieceHalf string, ok bool) {
	sep := strings.Index(s, Separator)
	if sep < 0 || strings.Contains(s[sep+1:], Separator) {
		return "", "", false
	}
	styleHalf, pieceHalf = s[:sep], s[sep+1:]
	return styleHalf, pieceHalf, styleHalf != "" && pieceHalf != ""
}

// styleHalfSide derives the side of a well-formed style half from its
// leading letter.
func styleHalfSide(s string) side.Side {
	if s[0] >= 'a' && s[0] <= 'z' {
		return side.SecondPlayer
	}
	return side.FirstPlayer
}

// pieceHalfSide derives the side of a well-formed piece body from its
// trailing letter.
func pieceHalfSide(s string) side.Side {
	c := s[len(s)-1]
	if c >= 'a' && c <= 'z' {
		return side.SecondPlayer
	}
	return side.FirstPlayer
}
