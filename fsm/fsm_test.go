package fsm

import (
	"testing"

	"github.com/andersk/greenery/symbol"
)

func alphabetOf(s string) []symbol.Symbol {
	var syms []symbol.Symbol
	for _, r := range s {
		syms = append(syms, symbol.Symbol(r))
	}
	return symbol.Alphabet(syms)
}

func single(alphabet []symbol.Symbol, want rune) *FSM {
	return FromAcceptFunc(alphabet, func(s symbol.Symbol) bool { return s == symbol.Symbol(want) })
}

func TestEpsilonAcceptsOnlyEmpty(t *testing.T) {
	alphabet := alphabetOf("ab")
	f := Epsilon(alphabet)
	if !f.Accepts("") {
		t.Error("Epsilon should accept empty string")
	}
	if f.Accepts("a") {
		t.Error("Epsilon should reject non-empty string")
	}
}

func TestNullAcceptsNothing(t *testing.T) {
	alphabet := alphabetOf("ab")
	f := Null(alphabet)
	if f.Accepts("") {
		t.Error("Null should reject empty string")
	}
	if f.Accepts("a") {
		t.Error("Null should reject any string")
	}
}

func TestConcat(t *testing.T) {
	alphabet := alphabetOf("ab")
	f := Concat(single(alphabet, 'a'), single(alphabet, 'b'))
	if !f.Accepts("ab") {
		t.Error(`Concat(a,b) should accept "ab"`)
	}
	for _, s := range []string{"", "a", "b", "ba", "abb"} {
		if f.Accepts(s) {
			t.Errorf("Concat(a,b) should reject %q", s)
		}
	}
}

func TestUnion(t *testing.T) {
	alphabet := alphabetOf("ab")
	f := Union(single(alphabet, 'a'), single(alphabet, 'b'))
	if !f.Accepts("a") || !f.Accepts("b") {
		t.Error("Union(a,b) should accept both a and b")
	}
	if f.Accepts("") || f.Accepts("ab") {
		t.Error("Union(a,b) should reject empty string and ab")
	}
}

func TestRepeatStar(t *testing.T) {
	alphabet := alphabetOf("a")
	f := Repeat(single(alphabet, 'a'), 0, Unbounded)
	for _, s := range []string{"", "a", "aa", "aaaaa"} {
		if !f.Accepts(s) {
			t.Errorf("a* should accept %q", s)
		}
	}
	if f.Accepts("b") {
		t.Error("a* should reject b")
	}
}

func TestRepeatBounded(t *testing.T) {
	alphabet := alphabetOf("a")
	f := Repeat(single(alphabet, 'a'), 2, 3)
	accept := map[string]bool{"": false, "a": false, "aa": true, "aaa": true, "aaaa": false}
	for s, want := range accept {
		if got := f.Accepts(s); got != want {
			t.Errorf("a{2,3}.Accepts(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestIntersection(t *testing.T) {
	alphabet := alphabetOf("ab")
	aStar := Repeat(single(alphabet, 'a'), 0, Unbounded)
	abStar := Repeat(Concat(single(alphabet, 'a'), single(alphabet, 'b')), 0, Unbounded)
	f := Intersection(aStar, abStar)
	if !f.Accepts("") {
		t.Error(`(a*) & (ab)* should accept ""`)
	}
	if f.Accepts("a") || f.Accepts("aa") || f.Accepts("ab") {
		t.Error(`(a*) & (ab)* should reject "a", "aa", "ab"`)
	}
}

func TestAnyOtherFoldsUnknownRunes(t *testing.T) {
	alphabet := symbol.Alphabet([]symbol.Symbol{'a'})
	f := FromAcceptFunc(alphabet, func(s symbol.Symbol) bool { return s == symbol.AnyOther })
	if f.Accepts("a") {
		t.Error("accept-AnyOther class should reject the explicitly alphabet-listed 'a'")
	}
	if !f.Accepts("z") {
		t.Error("accept-AnyOther class should accept any symbol outside the explicit alphabet")
	}
}
