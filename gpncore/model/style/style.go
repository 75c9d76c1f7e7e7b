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

// Package style implements the style half of a composite identifier: the
// sub-notation naming the game or tradition a piece belongs to (chess,
// shogi, xiangqi, ...).
//
// In textual form a style is a run of ASCII alphanumerics starting with a
// letter, written either entirely in uppercase or entirely in lowercase.
// The casing is not decoration: it encodes which player the style belongs
// to ("CHESS" is the first player's chess tradition, "chess" the second
// player's). Mixed casing is therefore meaningless and always rejected.
package style

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
	"tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model"
	"tablut.dev/gpn/gpncore/model/side"
)

const (
	// upperStylePattern matches a first-player style: an uppercase ASCII
	// letter followed by uppercase letters and digits.
	upperStylePattern = `^[A-Z][A-Z0-9]*$`

	// lowerStylePattern matches a second-player style: a lowercase ASCII
	// letter followed by lowercase letters and digits.
	lowerStylePattern = `^[a-z][a-z0-9]*$`
)

var (
	// UpperStyleRegexp is the compiled grammar for first-player styles.
	//
	// It is safe for concurrent use by multiple goroutines. Callers SHOULD
	// prefer ParseStyle or ValidStyle rather than using this regexp
	// directly, so that side derivation and error reporting remain
	// consistent across the codebase.
	UpperStyleRegexp = regexp.MustCompile(upperStylePattern)

	// LowerStyleRegexp is the compiled grammar for second-player styles.
	//
	// It is safe for concurrent use by multiple goroutines.
	LowerStyleRegexp = regexp.MustCompile(lowerStylePattern)
)

// Style represents the style half of a composite identifier as an immutable
// value: a canonical name plus the side of the player owning it.
//
// Name is always stored in its canonical uppercase form regardless of how
// the style was written; the owning side decides how the style renders.
// Two styles with the same Name and different Side values are the same
// tradition in the hands of different players.
//
// This type implements the model.Model interface. The zero value of Style
// (empty Name, FirstPlayer side) is not a valid style because the grammar
// requires at least one letter; IsZero detects it and Validate rejects it.
//
// All methods use value receivers and transformations return new values, so
// a Style can be shared freely across goroutines.
type Style struct {
	// Name is the canonical, case-insensitive identity of the style,
	// stored uppercase. It MUST match ^[A-Z][A-Z0-9]*$ for the Style to
	// be valid.
	Name string

	// Side is the player owning this style. It controls whether String
	// renders the name in uppercase (FirstPlayer) or lowercase
	// (SecondPlayer).
	Side side.Side
}

// ParseStyle parses the textual form of a style into a Style value.
//
// The input MUST match either ^[A-Z][A-Z0-9]*$ (first player) or
// ^[a-z][a-z0-9]*$ (second player). The case family determines the side;
// the name is canonicalized to uppercase. Anything else — an empty string,
// mixed casing, a leading digit, non-ASCII letters, or whitespace anywhere
// — fails with a *errors.ParseError. No trimming is ever performed.
//
// Example usage:
//
//	st, err := style.ParseStyle("CHESS")
//	// st = Style{Name: "CHESS", Side: side.FirstPlayer}
//
//	st, err := style.ParseStyle("shogi")
//	// st = Style{Name: "SHOGI", Side: side.SecondPlayer}
//
//	_, err := style.ParseStyle("Chess")
//	// err = *errors.ParseError (mixed case)
func ParseStyle(s string) (Style, error) {
	switch {
	case UpperStyleRegexp.MatchString(s):
		return Style{Name: s, Side: side.FirstPlayer}, nil
	case LowerStyleRegexp.MatchString(s):
		return Style{Name: strings.ToUpper(s), Side: side.SecondPlayer}, nil
	case s == "":
		return Style{}, &errors.ParseError{Type: "Style", Value: s, Reason: "empty string"}
	default:
		return Style{}, &errors.ParseError{
			Type:   "Style",
			Value:  s,
			Reason: "must be uniformly cased ASCII alphanumerics starting with a letter",
		}
	}
}

// ValidStyle reports whether s is a well-formed style string.
//
// It answers exactly the question ParseStyle answers, without constructing
// a value or allocating an error. Use ValidStyle for cheap yes/no checks
// and ParseStyle when the reason for a rejection matters.
func ValidStyle(s string) bool {
	return UpperStyleRegexp.MatchString(s) || LowerStyleRegexp.MatchString(s)
}

// NewStyle constructs a Style from a canonical name and an explicit side.
//
// The name is case-insensitive: "Chess", "chess" and "CHESS" all denote the
// same style. It is canonicalized to uppercase and MUST satisfy the style
// grammar after canonicalization; otherwise NewStyle fails with a
// *errors.ParseError. An out-of-range side fails with a
// *errors.ValidationError naming the Side field.
//
// Example usage:
//
//	st, err := style.NewStyle("Chess", side.SecondPlayer)
//	// st.String() = "chess"
func NewStyle(name string, sd side.Side) (Style, error) {
	if err := sd.Validate(); err != nil {
		return Style{}, &errors.ValidationError{
			Type:   "Style",
			Field:  "Side",
			Reason: "unknown side",
			Value:  int(sd),
		}
	}

	canonical := strings.ToUpper(name)
	if !UpperStyleRegexp.MatchString(canonical) {
		return Style{}, &errors.ParseError{
			Type:   "Style",
			Value:  name,
			Reason: "must be ASCII alphanumerics starting with a letter",
		}
	}

	return Style{Name: canonical, Side: sd}, nil
}

// String returns the textual form of the style: the canonical name rendered
// in the case of the owning side. For every valid style,
// ParseStyle(st.String()) yields a value equal to st.
func (st Style) String() string {
	if st.Side == side.SecondPlayer {
		return strings.ToLower(st.Name)
	}
	return st.Name
}

// FirstPlayer reports whether the style belongs to the first player.
func (st Style) FirstPlayer() bool {
	return st.Side == side.FirstPlayer
}

// SecondPlayer reports whether the style belongs to the second player.
func (st Style) SecondPlayer() bool {
	return st.Side == side.SecondPlayer
}

// WithSide returns a style with the same name owned by the given side.
//
// If sd equals the current side, WithSide returns the receiver unchanged;
// the result is then == to the original value. This no-op identity is part
// of the contract, not an implementation detail.
//
// WithSide does not validate sd; combining a Style with an out-of-range
// side produces a value that fails Validate, exactly like constructing the
// struct literal directly.
func (st Style) WithSide(sd side.Side) Style {
	if sd == st.Side {
		return st
	}
	return Style{Name: st.Name, Side: sd}
}

// TypeName returns "Style", the name of the type for logging and debugging.
//
// This method implements part of the model.Model interface.
func (st Style) TypeName() string {
	return "Style"
}

// Redacted returns the same string representation as String().
//
// Style values contain no sensitive information, so the redacted form is
// identical to the regular string form. This method implements part of the
// model.Model interface.
func (st Style) Redacted() string {
	return st.String()
}

// IsZero reports whether the Style has its zero value (empty name,
// first-player side). The zero value is not a valid style; use Validate to
// check validity.
func (st Style) IsZero() bool {
	return st.Name == "" && st.Side == side.FirstPlayer
}

// Equal reports whether this Style is equal to another value.
//
// The method accepts any type for other and uses type assertion to check
// if it is a Style or *Style. Two styles are equal if they have the same
// canonical name and the same side.
func (st Style) Equal(other any) bool {
	switch v := other.(type) {
	case Style:
		return st == v
	case *Style:
		if v == nil {
			return false
		}
		return st == *v
	default:
		return false
	}
}

// Validate checks that the Style satisfies the style grammar: the side is
// one of the two defined constants and the canonical name is a non-empty
// uppercase alphanumeric run starting with a letter.
//
// This method returns nil for every value produced by ParseStyle or
// NewStyle. It returns a *errors.ValidationError for hand-built struct
// literals that violate the grammar, including the zero value.
func (st Style) Validate() error {
	if err := st.Side.Validate(); err != nil {
		return &errors.ValidationError{
			Type:   "Style",
			Field:  "Side",
			Reason: "unknown side",
			Value:  int(st.Side),
		}
	}
	if st.Name == "" {
		return &errors.ValidationError{
			Type:   "Style",
			Field:  "Name",
			Reason: "must not be empty",
		}
	}
	if !UpperStyleRegexp.MatchString(st.Name) {
		return &errors.ValidationError{
			Type:   "Style",
			Field:  "Name",
			Reason: "must be uppercase ASCII alphanumerics starting with a letter",
			Value:  st.Name,
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Style.
//
// A valid style is serialized as its textual notation form (for example,
// "CHESS" or "shogi"), so documents carry the same compact spelling users
// write by hand. An invalid style fails with its validation error.
func (st Style) MarshalJSON() ([]byte, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return []byte(`"` + st.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Style.
//
// The method accepts a JSON string holding the textual notation form and
// resolves it via ParseStyle, so malformed notation is rejected at the
// boundary. On failure it returns a *errors.UnmarshalError or the
// underlying *errors.ParseError.
func (st *Style) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Style", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseStyle(s)
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Style.
//
// A valid style is serialized as its textual notation form. An invalid
// style fails with its validation error.
func (st Style) MarshalYAML() (any, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return st.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Style.
//
// The method accepts a YAML scalar holding the textual notation form and
// resolves it via ParseStyle. On failure it returns the underlying
// *errors.ParseError.
func (st *Style) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Style", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseStyle(s)
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Style. Textual form is
// the same notation string as used by String(). An invalid style fails
// with its validation error.
func (st Style) MarshalText() ([]byte, error) {
	if err := st.Validate(); err != nil {
		return nil, err
	}
	return []byte(st.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Style, accepting
// the same grammar as ParseStyle.
func (st *Style) UnmarshalText(text []byte) error {
	parsed, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}

// Compile-time check that Style implements model.Model interface.
var _ model.Model = (*Style)(nil)
