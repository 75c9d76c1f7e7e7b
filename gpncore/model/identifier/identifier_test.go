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

package identifier_test

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
	gpnerrors "tablut.dev/gpn/gpncore/errors"
	"tablut.dev/gpn/gpncore/model/identifier"
	"tablut.dev/gpn/gpncore/model/piece"
	"tablut.dev/gpn/gpncore/model/side"
	"tablut.dev/gpn/gpncore/model/style"
)

func mustParse(t *testing.T, s string) identifier.Identifier {
	t.Helper()
	id, err := identifier.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", s, err)
	}
	return id
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		name  string
		sd    side.Side
		typ   rune
		state piece.State
	}{
		{"CHESS:K", "CHESS", side.FirstPlayer, 'K', piece.StateNormal},
		{"chess:k", "CHESS", side.SecondPlayer, 'K', piece.StateNormal},
		{"SHOGI:+P", "SHOGI", side.FirstPlayer, 'P', piece.StateEnhanced},
		{"shogi:+p", "SHOGI", side.SecondPlayer, 'P', piece.StateEnhanced},
		{"CHESS:-Q", "CHESS", side.FirstPlayer, 'Q', piece.StateDiminished},
		{"X1:R", "X1", side.FirstPlayer, 'R', piece.StateNormal},
		{"go9:b", "GO9", side.SecondPlayer, 'B', piece.StateNormal},
	}

	for _, tt := range tests {
		id, err := identifier.Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if id.StyleName() != tt.name {
			t.Errorf("Parse(%q).StyleName() = %q, want %q", tt.input, id.StyleName(), tt.name)
		}
		if id.Side() != tt.sd {
			t.Errorf("Parse(%q).Side() = %v, want %v", tt.input, id.Side(), tt.sd)
		}
		if id.Type() != tt.typ {
			t.Errorf("Parse(%q).Type() = %q, want %q", tt.input, id.Type(), tt.typ)
		}
		if id.State() != tt.state {
			t.Errorf("Parse(%q).State() = %v, want %v", tt.input, id.State(), tt.state)
		}
		if got := id.String(); got != tt.input {
			t.Errorf("Parse(%q).String() = %q, round-trip broken", tt.input, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
	}{
		{""},
		{"CHESS"},
		{"CHESS:"},
		{":K"},
		{"CHESS::K"},
		{"CHESS:K:R"},
		{"CHESS:KK"},
		{"CHESS:1"},
		{"Chess:K"},
		{"1CHESS:K"},
		{"CHESS:++K"},
		{"CHESS:K'"},
		{" CHESS:K"},
		{"CHESS :K"},
		{"CHESS: K"},
		{"CHESS:K "},
		{"ÉCHECS:K"},
		{"CHESS:Ñ"},
	}

	for _, tt := range tests {
		if _, err := identifier.Parse(tt.input); err == nil {
			t.Errorf("Parse(%q) = nil error, want failure", tt.input)
		}
		if identifier.Valid(tt.input) {
			t.Errorf("Valid(%q) = true, want false", tt.input)
		}
	}
}

func TestParseSideMismatch(t *testing.T) {
	for _, input := range []string{"CHESS:k", "chess:K", "shogi:+P", "SHOGI:+p"} {
		_, err := identifier.Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) = nil error, want side mismatch", input)
		}
		if _, ok := err.(*gpnerrors.SideMismatchError); !ok {
			t.Errorf("Parse(%q) error type = %T, want *SideMismatchError", input, err)
		}
	}
}

func TestParseErrorOrdering(t *testing.T) {
	// Structural errors are reported before component errors, and
	// component errors before the cross-component side check.
	tests := []struct {
		input  string
		reason string
	}{
		{"", "empty string"},
		{"CHESSK", "missing separator"},
		{"A:B:C", "multiple separators"},
		{":K", "empty style half"},
		{"CHESS:", "empty piece half"},
	}

	for _, tt := range tests {
		_, err := identifier.Parse(tt.input)
		pe, ok := err.(*gpnerrors.ParseError)
		if !ok {
			t.Errorf("Parse(%q) error type = %T, want *ParseError", tt.input, err)
			continue
		}
		if pe.Type != "Identifier" || pe.Reason != tt.reason {
			t.Errorf("Parse(%q) = %v, want Identifier error with reason %q", tt.input, err, tt.reason)
		}
	}
}

func TestValid(t *testing.T) {
	valid := []string{"CHESS:K", "chess:k", "shogi:+p", "SHOGI:-L", "X1:R"}
	for _, s := range valid {
		if !identifier.Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "CHESS", "CHESS::K", "CHESS:KK", "CHESS:k", "chess:K"}
	for _, s := range invalid {
		if identifier.Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestTerminalMarkerVariant(t *testing.T) {
	opts := identifier.Options{TerminalMarker: true}

	id, err := opts.Parse("CHESS:K'")
	if err != nil {
		t.Fatalf("Parse(CHESS:K') unexpected error: %v", err)
	}
	if !id.Terminal() {
		t.Error("Terminal() = false, want true")
	}
	if got := id.String(); got != "CHESS:K'" {
		t.Errorf("String() = %q, want %q", got, "CHESS:K'")
	}
	if !opts.Valid("shogi:+p'") {
		t.Error("Valid(shogi:+p') = false under terminal variant, want true")
	}
	if opts.Valid("CHESS:K''") {
		t.Error("Valid(CHESS:K'') = true, want false")
	}
	if opts.Valid("CHESS':K") {
		t.Error("Valid(CHESS':K) = true, want false")
	}

	// Canonical strings stay valid under the extended variant.
	canonical, err := opts.Parse("CHESS:K")
	if err != nil {
		t.Fatalf("Parse(CHESS:K) unexpected error: %v", err)
	}
	if canonical.Terminal() {
		t.Error("Terminal() = true for canonical input, want false")
	}
}

func TestNew(t *testing.T) {
	st, _ := style.ParseStyle("CHESS")
	pc, _ := piece.ParsePiece("K")

	id, err := identifier.New(st, pc)
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
	if got := id.String(); got != "CHESS:K" {
		t.Errorf("String() = %q, want %q", got, "CHESS:K")
	}

	// Mismatched sides fail even when both components are valid.
	lower, _ := piece.ParsePiece("k")
	if _, err := identifier.New(st, lower); err == nil {
		t.Fatal("New() with mismatched sides = nil error, want SideMismatchError")
	} else if _, ok := err.(*gpnerrors.SideMismatchError); !ok {
		t.Errorf("New() error type = %T, want *SideMismatchError", err)
	}

	// Invalid components are rejected before the side check.
	if _, err := identifier.New(style.Style{}, pc); err == nil {
		t.Error("New() with zero style = nil error, want failure")
	}
	if _, err := identifier.New(st, piece.Piece{}); err == nil {
		t.Error("New() with zero piece = nil error, want failure")
	}
}

func TestNewFromParams(t *testing.T) {
	id, err := identifier.NewFromParams("Shogi", side.SecondPlayer, 'p', piece.StateEnhanced)
	if err != nil {
		t.Fatalf("NewFromParams() unexpected error: %v", err)
	}
	if got := id.String(); got != "shogi:+p" {
		t.Errorf("String() = %q, want %q", got, "shogi:+p")
	}

	if _, err := identifier.NewFromParams("1bad", side.FirstPlayer, 'K', piece.StateNormal); err == nil {
		t.Error("NewFromParams() with bad name = nil error, want failure")
	}
	if _, err := identifier.NewFromParams("CHESS", side.FirstPlayer, '7', piece.StateNormal); err == nil {
		t.Error("NewFromParams() with bad letter = nil error, want failure")
	}
}

func TestFlip(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	flipped := id.Flip()
	if got := flipped.String(); got != "chess:k" {
		t.Errorf("Flip().String() = %q, want %q", got, "chess:k")
	}
	if err := flipped.Validate(); err != nil {
		t.Errorf("Flip() result fails validation: %v", err)
	}
	if back := flipped.Flip(); back != id {
		t.Errorf("double Flip() = %v, want original %v", back, id)
	}

	// State and terminal survive the flip.
	enh := mustParse(t, "shogi:+p").Flip()
	if got := enh.String(); got != "SHOGI:+P" {
		t.Errorf("Flip().String() = %q, want %q", got, "SHOGI:+P")
	}
}

func TestWithSide(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	if same := id.WithSide(side.FirstPlayer); same != id {
		t.Error("WithSide() with current side did not return the receiver")
	}

	moved := id.WithSide(side.SecondPlayer)
	if moved.Style.Side != side.SecondPlayer || moved.Piece.Side != side.SecondPlayer {
		t.Error("WithSide() did not move both halves")
	}
	if err := moved.Validate(); err != nil {
		t.Errorf("WithSide() result fails validation: %v", err)
	}
}

func TestStateTransforms(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	enh := id.Enhance()
	if got := enh.String(); got != "CHESS:+K" {
		t.Errorf("Enhance().String() = %q, want %q", got, "CHESS:+K")
	}
	if enh.Enhance() != enh {
		t.Error("Enhance() on enhanced identifier did not return the receiver")
	}

	dim := id.Diminish()
	if got := dim.String(); got != "CHESS:-K" {
		t.Errorf("Diminish().String() = %q, want %q", got, "CHESS:-K")
	}

	norm := enh.Normalize()
	if got := norm.String(); got != "CHESS:K" {
		t.Errorf("Normalize().String() = %q, want %q", got, "CHESS:K")
	}
	if norm != id {
		t.Error("Normalize() of enhanced identifier != original normal identifier")
	}
	if id.Normalize() != id {
		t.Error("Normalize() on normal identifier did not return the receiver")
	}
	if id.WithState(piece.StateNormal) != id {
		t.Error("WithState() with current state did not return the receiver")
	}
}

func TestWithType(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	q, err := id.WithType('q')
	if err != nil {
		t.Fatalf("WithType('q') unexpected error: %v", err)
	}
	if got := q.String(); got != "CHESS:Q" {
		t.Errorf("WithType('q').String() = %q, want %q", got, "CHESS:Q")
	}

	same, err := id.WithType('k')
	if err != nil {
		t.Fatalf("WithType('k') unexpected error: %v", err)
	}
	if same != id {
		t.Error("WithType() with current type did not return the receiver")
	}

	if _, err := id.WithType('!'); err == nil {
		t.Error("WithType('!') = nil error, want failure")
	}

	// Casing follows the side, not the argument.
	lower := mustParse(t, "chess:k")
	r, err := lower.WithType('R')
	if err != nil {
		t.Fatalf("WithType('R') unexpected error: %v", err)
	}
	if got := r.String(); got != "chess:r" {
		t.Errorf("WithType('R').String() = %q, want %q", got, "chess:r")
	}
}

func TestWithName(t *testing.T) {
	id := mustParse(t, "chess:k")

	shogi, err := id.WithName("shogi")
	if err != nil {
		t.Fatalf("WithName(shogi) unexpected error: %v", err)
	}
	if got := shogi.String(); got != "shogi:k" {
		t.Errorf("WithName(shogi).String() = %q, want %q", got, "shogi:k")
	}

	same, err := id.WithName("CHESS")
	if err != nil {
		t.Fatalf("WithName(CHESS) unexpected error: %v", err)
	}
	if same != id {
		t.Error("WithName() with current name did not return the receiver")
	}

	if _, err := id.WithName("9bad"); err == nil {
		t.Error("WithName(9bad) = nil error, want failure")
	}
}

func TestWithStyle(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	shogi, _ := style.ParseStyle("SHOGI")
	swapped, err := id.WithStyle(shogi)
	if err != nil {
		t.Fatalf("WithStyle() unexpected error: %v", err)
	}
	if got := swapped.String(); got != "SHOGI:K" {
		t.Errorf("WithStyle().String() = %q, want %q", got, "SHOGI:K")
	}

	same, err := id.WithStyle(id.Style)
	if err != nil {
		t.Fatalf("WithStyle() unexpected error: %v", err)
	}
	if same != id {
		t.Error("WithStyle() with current style did not return the receiver")
	}

	lower, _ := style.ParseStyle("shogi")
	if _, err := id.WithStyle(lower); err == nil {
		t.Fatal("WithStyle() with other side = nil error, want SideMismatchError")
	} else if _, ok := err.(*gpnerrors.SideMismatchError); !ok {
		t.Errorf("WithStyle() error type = %T, want *SideMismatchError", err)
	}

	if _, err := id.WithStyle(style.Style{}); err == nil {
		t.Error("WithStyle() with zero style = nil error, want failure")
	}
}

func TestWithTerminal(t *testing.T) {
	id := mustParse(t, "CHESS:K")

	term := id.WithTerminal(true)
	if got := term.String(); got != "CHESS:K'" {
		t.Errorf("WithTerminal(true).String() = %q, want %q", got, "CHESS:K'")
	}
	if term.WithTerminal(true) != term {
		t.Error("WithTerminal(true) on terminal identifier did not return the receiver")
	}
	if term.WithTerminal(false) != id {
		t.Error("WithTerminal(false) did not restore the original identifier")
	}
	if id.WithTerminal(false) != id {
		t.Error("WithTerminal(false) on plain identifier did not return the receiver")
	}
}

func TestValidate(t *testing.T) {
	if err := mustParse(t, "shogi:+p").Validate(); err != nil {
		t.Errorf("Validate() on parsed identifier: %v", err)
	}

	if err := (identifier.Identifier{}).Validate(); err == nil {
		t.Error("Validate() on zero identifier = nil, want failure")
	}

	// Hand-built literal pairing halves of different players.
	st, _ := style.ParseStyle("CHESS")
	pc, _ := piece.ParsePiece("k")
	bad := identifier.Identifier{Style: st, Piece: pc}
	if err := bad.Validate(); err == nil {
		t.Fatal("Validate() on mismatched literal = nil, want SideMismatchError")
	} else if _, ok := err.(*gpnerrors.SideMismatchError); !ok {
		t.Errorf("Validate() error type = %T, want *SideMismatchError", err)
	}
}

func TestIsZero(t *testing.T) {
	if !(identifier.Identifier{}).IsZero() {
		t.Error("IsZero() on zero value = false, want true")
	}
	if mustParse(t, "CHESS:K").IsZero() {
		t.Error("IsZero() on parsed identifier = true, want false")
	}
}

func TestEqual(t *testing.T) {
	a := mustParse(t, "CHESS:K")
	b := mustParse(t, "CHESS:K")
	c := mustParse(t, "chess:k")

	if !a.Equal(b) {
		t.Error("Equal() on identical identifiers = false, want true")
	}
	if !a.Equal(&b) {
		t.Error("Equal() on pointer to identical identifier = false, want true")
	}
	if a.Equal(c) {
		t.Error("Equal() on different sides = true, want false")
	}
	if a.Equal("CHESS:K") {
		t.Error("Equal() on string = true, want false")
	}
	if a.Equal(nil) {
		t.Error("Equal() on nil = true, want false")
	}
	var p *identifier.Identifier
	if a.Equal(p) {
		t.Error("Equal() on nil pointer = true, want false")
	}
}

func TestTypeNameAndRedacted(t *testing.T) {
	id := mustParse(t, "CHESS:K")
	if got := id.TypeName(); got != "Identifier" {
		t.Errorf("TypeName() = %q, want %q", got, "Identifier")
	}
	if id.Redacted() != id.String() {
		t.Error("Redacted() != String()")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for _, s := range []string{"CHESS:K", "shogi:+p", "CHESS:-Q"} {
		id := mustParse(t, s)

		data, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("Marshal(%q) unexpected error: %v", s, err)
		}
		if got := string(data); got != `"`+s+`"` {
			t.Errorf("Marshal(%q) = %s, want %q", s, got, s)
		}

		var back identifier.Identifier
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) unexpected error: %v", data, err)
		}
		if back != id {
			t.Errorf("round-trip of %q = %v, want %v", s, back, id)
		}
	}
}

func TestJSONTerminalRoundTrip(t *testing.T) {
	// Constructed terminal identifiers round-trip even though the
	// canonical parser rejects the marker.
	id := mustParse(t, "CHESS:K").WithTerminal(true)

	data, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if got := string(data); got != `"CHESS:K'"` {
		t.Errorf("Marshal() = %s, want %q", got, "CHESS:K'")
	}

	var back identifier.Identifier
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if back != id {
		t.Errorf("round-trip = %v, want %v", back, id)
	}
}

func TestJSONErrors(t *testing.T) {
	bad := identifier.Identifier{}
	if _, err := json.Marshal(bad); err == nil {
		t.Error("Marshal() on zero identifier = nil error, want failure")
	}

	var id identifier.Identifier
	if err := json.Unmarshal([]byte(`"CHESS:k"`), &id); err == nil {
		t.Error("Unmarshal() of mismatched sides = nil error, want failure")
	}
	if err := json.Unmarshal([]byte(`42`), &id); err == nil {
		t.Error("Unmarshal() of number = nil error, want failure")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	id := mustParse(t, "shogi:+p")

	data, err := yaml.Marshal(id)
	if err != nil {
		t.Fatalf("yaml.Marshal() unexpected error: %v", err)
	}

	var back identifier.Identifier
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("yaml.Unmarshal() unexpected error: %v", err)
	}
	if back != id {
		t.Errorf("YAML round-trip = %v, want %v", back, id)
	}
}

func TestTextRoundTrip(t *testing.T) {
	id := mustParse(t, "CHESS:+K")

	data, err := id.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if got := string(data); got != "CHESS:+K" {
		t.Errorf("MarshalText() = %q, want %q", got, "CHESS:+K")
	}

	var back identifier.Identifier
	if err := back.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText() unexpected error: %v", err)
	}
	if back != id {
		t.Errorf("text round-trip = %v, want %v", back, id)
	}
}

func TestMapKey(t *testing.T) {
	// Identifiers are comparable and usable as map keys.
	counts := map[identifier.Identifier]int{}
	counts[mustParse(t, "CHESS:K")]++
	counts[mustParse(t, "CHESS:K")]++
	counts[mustParse(t, "chess:k")]++

	if len(counts) != 2 {
		t.Errorf("map has %d keys, want 2", len(counts))
	}
	if counts[mustParse(t, "CHESS:K")] != 2 {
		t.Error("equal identifiers did not collide in map")
	}
}
