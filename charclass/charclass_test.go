package charclass

import (
	"testing"

	"github.com/andersk/greenery/symbol"
)

func sym(r rune) symbol.Symbol { return symbol.Symbol(r) }

func TestUnionScenarioS2(t *testing.T) {
	ab := New(sym('a'), sym('b'))
	bc := New(sym('b'), sym('c'))
	got, err := Union(ab, bc).Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[abc]" {
		t.Errorf("[ab] | [bc] = %q, want [abc]", got)
	}
}

func TestUnionScenarioS3(t *testing.T) {
	notAB := NewNegated(sym('a'), sym('b'))
	bc := New(sym('b'), sym('c'))
	got, err := Union(notAB, bc).Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[^a]" {
		t.Errorf("¬[ab] | [bc] = %q, want [^a]", got)
	}
}

func TestDeMorgan(t *testing.T) {
	a := New(sym('a'), sym('b'))
	b := NewNegated(sym('b'), sym('c'))
	lhs := Complement(Union(a, b))
	rhs := Intersection(Complement(a), Complement(b))
	if !lhs.Equal(rhs) {
		t.Error("De Morgan: ¬(A ∪ B) != ¬A ∩ ¬B")
	}
}

func TestDifferenceIsIntersectWithComplement(t *testing.T) {
	a := New(sym('a'), sym('b'), sym('c'))
	b := New(sym('b'))
	lhs := Difference(a, b)
	rhs := Intersection(a, Complement(b))
	if !lhs.Equal(rhs) {
		t.Error("A - B != A ∩ ¬B")
	}
}

func TestDoubleNegation(t *testing.T) {
	a := New(sym('a'), sym('b'))
	if !Complement(Complement(a)).Equal(a) {
		t.Error("¬¬A != A")
	}
}

func TestUnionCommutativeAssociative(t *testing.T) {
	a := New(sym('a'))
	b := NewNegated(sym('b'))
	c := New(sym('c'), sym('d'))
	if !Union(a, b).Equal(Union(b, a)) {
		t.Error("union not commutative")
	}
	if !Union(Union(a, b), c).Equal(Union(a, Union(b, c))) {
		t.Error("union not associative")
	}
}

func TestIntersectionTruthTableAllNegationCombos(t *testing.T) {
	// Exercise all four negation-pair cases for union/intersection/
	// difference against a handful of overlapping generator sets, cross-
	// checking via membership over a small alphabet rather than via the
	// De Morgan identity (already covered above).
	alphabet := []symbol.Symbol{'a', 'b', 'c', 'd'}
	combos := []struct{ aSet, bSet []symbol.Symbol; aNeg, bNeg bool }{
		{[]symbol.Symbol{'a', 'b'}, []symbol.Symbol{'b', 'c'}, false, false},
		{[]symbol.Symbol{'a', 'b'}, []symbol.Symbol{'b', 'c'}, true, false},
		{[]symbol.Symbol{'a', 'b'}, []symbol.Symbol{'b', 'c'}, false, true},
		{[]symbol.Symbol{'a', 'b'}, []symbol.Symbol{'b', 'c'}, true, true},
	}
	denote := func(c CharClass, s symbol.Symbol) bool { return c.Has(s) }
	for _, combo := range combos {
		a := build(combo.aSet, combo.aNeg)
		b := build(combo.bSet, combo.bNeg)
		union := Union(a, b)
		inter := Intersection(a, b)
		diff := Difference(a, b)
		for _, s := range alphabet {
			wantUnion := denote(a, s) || denote(b, s)
			wantInter := denote(a, s) && denote(b, s)
			wantDiff := denote(a, s) && !denote(b, s)
			if denote(union, s) != wantUnion {
				t.Errorf("union(%v,%v).Has(%v) = %v, want %v", a, b, s, denote(union, s), wantUnion)
			}
			if denote(inter, s) != wantInter {
				t.Errorf("intersection(%v,%v).Has(%v) = %v, want %v", a, b, s, denote(inter, s), wantInter)
			}
			if denote(diff, s) != wantDiff {
				t.Errorf("difference(%v,%v).Has(%v) = %v, want %v", a, b, s, denote(diff, s), wantDiff)
			}
		}
	}
}

func TestIsSubsetTruthTable(t *testing.T) {
	// Exercises all four negation-pair cases of spec §4.1's issubset
	// (¬A ⊆ ¬B ⟺ B ⊆ A in the finite-set sense), matching the §8 truth
	// table this operation is total over.
	ab := New(sym('a'), sym('b'))
	abc := New(sym('a'), sym('b'), sym('c'))
	bc := New(sym('b'), sym('c'))
	notAB := NewNegated(sym('a'), sym('b'))
	notABC := NewNegated(sym('a'), sym('b'), sym('c'))
	notD := NewNegated(sym('d'))

	cases := []struct {
		name string
		a, b CharClass
		want bool
	}{
		{"positive subset of positive", ab, abc, true},
		{"positive not subset of positive", abc, ab, false},
		{"negated subset of negated (generators reversed)", notABC, notAB, true},
		{"negated not subset of negated", notAB, notABC, false},
		{"positive overlapping negated generator (b) not subset", bc, notAB, false},
		{"positive overlapping negated generator not subset", New(sym('d')), notD, false},
		{"positive disjoint from negated generator is a subset", ab, notD, true},
		{"negated never shown subset of positive", notAB, abc, false},
	}
	for _, c := range cases {
		got := IsSubset(c.a, c.b)
		if got != c.want {
			t.Errorf("%s: IsSubset(%v, %v) = %v, want %v", c.name, c.a, c.b, got, c.want)
		}
	}
}

func TestRenderShorthandW(t *testing.T) {
	// S9
	c := New(runes("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz")...)
	got, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != `\w` {
		t.Errorf("render(word class) = %q, want \\w", got)
	}
}

func TestRenderNoShortRunCollapse(t *testing.T) {
	// S10
	c := New(runes("\t\n\v\f\r A")...)
	got, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	want := "[\\t\\n\\v\\f\\r A]"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderRangeCollapseThreshold(t *testing.T) {
	three := New(sym('a'), sym('b'), sym('c'))
	got, err := three.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[abc]" {
		t.Errorf("3-run render = %q, want literal [abc] (below collapse threshold)", got)
	}

	four := New(sym('a'), sym('b'), sym('c'), sym('d'))
	got, err = four.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != "[a-d]" {
		t.Errorf("4-run render = %q, want collapsed [a-d]", got)
	}
}

func TestRenderSingleCharEscaped(t *testing.T) {
	plus := New(sym('+'))
	got, err := plus.Render()
	if err != nil {
		t.Fatal(err)
	}
	if got != `\+` {
		t.Errorf("render(+) = %q, want \\+", got)
	}
}

func TestRenderEmptyIsNotRenderable(t *testing.T) {
	if _, err := Empty.Render(); err == nil {
		t.Error("Render(Empty): expected NotRenderableError")
	}
}

func TestFSMSingletonAccepts(t *testing.T) {
	alphabet := symbol.Alphabet([]symbol.Symbol{'0', '1'})
	zero := New(sym('0'))
	f := zero.FSM(alphabet)
	if !f.Accepts("0") {
		t.Error("CharClass(0) FSM should accept \"0\"")
	}
	if f.Accepts("1") || f.Accepts("00") || f.Accepts("") {
		t.Error("CharClass(0) FSM should reject 1, 00, and empty string")
	}
}
