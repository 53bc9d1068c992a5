package term

import (
	"testing"

	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/multiplier"
	"github.com/andersk/greenery/symbol"
)

func cc(rs ...rune) charclass.CharClass {
	syms := make([]symbol.Symbol, len(rs))
	for i, r := range rs {
		syms[i] = symbol.Symbol(r)
	}
	return charclass.New(syms...)
}

func TestConcOrderedPatternUnordered(t *testing.T) {
	a := NewMult(cc('a'), multiplier.One)
	b := NewMult(cc('b'), multiplier.One)
	if NewConc(a, b).Equal(NewConc(b, a)) {
		t.Error("Conc(a,b) should not equal Conc(b,a)")
	}
	c1 := NewConc(a, b)
	c2 := NewConc(b, a)
	if !NewPattern(c1, c2).Equal(NewPattern(c2, c1)) {
		t.Error("Pattern(c1,c2) should equal Pattern(c2,c1) regardless of build order")
	}
}

func TestReduceMultZeroMultiplier(t *testing.T) {
	mu := NewMult(cc('a'), multiplier.Zero)
	r := mu.Reduce()
	want := NewMult(charclass.Empty, multiplier.One)
	if !r.Equal(want) {
		t.Errorf("reduce(a{0}) = %v, want empty CharClass", r)
	}
}

func TestReduceConcVacuous(t *testing.T) {
	c := NewConc(
		NewMult(cc('a'), multiplier.One),
		NewMult(charclass.Empty, multiplier.Plus),
	)
	r := c.Reduce()
	want := NewConc(NewMult(charclass.Empty, multiplier.One))
	if !r.Equal(want) {
		t.Errorf("reduce(a + empty+) = %v, want the vacuous conc collapsed", r)
	}
}

func TestReduceMergesCharClassBranches(t *testing.T) {
	// 0|[1-9], built directly as a Pattern of two single-CharClass Concs,
	// both under multiplier one: spec scenario S5.
	zero := NewConc(NewMult(cc('0'), multiplier.One))
	rest := NewConc(NewMult(cc('1', '2', '3', '4', '5', '6', '7', '8', '9'), multiplier.One))
	p := NewPattern(zero, rest)
	r := Reduce(p)
	if r.Len() != 1 {
		t.Fatalf("reduce(0|[1-9]) produced %d concs, want 1", r.Len())
	}
	text, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != `\d` {
		t.Errorf("reduce(0|[1-9]).Render() = %q, want \\d", text)
	}
}

func TestReduceCommonPrefixFactoring(t *testing.T) {
	// a{2}b|a+c, spec scenario S4: reduce to a(ab|a*c), which renders
	// with its alternatives sorted as a(a*c|ab).
	c1 := NewConc(
		NewMult(cc('a'), multiplier.MustNew(2, 2)),
		NewMult(cc('b'), multiplier.One),
	)
	c2 := NewConc(
		NewMult(cc('a'), multiplier.Plus),
		NewMult(cc('c'), multiplier.One),
	)
	r := Reduce(NewPattern(c1, c2))
	text, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "a(ab|a*c)" {
		t.Errorf("reduce(a{2}b|a+c).Render() = %q, want a(ab|a*c)", text)
	}
}

func TestReduceSingletonGroupInline(t *testing.T) {
	// ([ab])*, spec scenario S6: reduce to [ab]*.
	inner := AsPattern(cc('a', 'b'))
	outer := NewMult(inner, multiplier.Star)
	r := outer.Reduce()
	text, err := r.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "[ab]*" {
		t.Errorf("reduce(([ab])*).Render() = %q, want [ab]*", text)
	}
}

func TestMultSubtractScenarioS8(t *testing.T) {
	a := NewMult(cc('a'), multiplier.MustNew(4, 5))
	b := NewMult(cc('a'), multiplier.MustNew(3, 3))
	got, err := a.Subtract(b)
	if err != nil {
		t.Fatal(err)
	}
	want := NewMult(cc('a'), multiplier.MustNew(1, 2))
	if !got.Equal(want) {
		t.Errorf("a{4,5} - a{3} = %v, want a{1,2}", got)
	}
}

func TestMultSubtractRequiresEqualMultiplicand(t *testing.T) {
	a := NewMult(cc('a'), multiplier.One)
	b := NewMult(cc('b'), multiplier.One)
	if _, err := a.Subtract(b); err == nil {
		t.Error("subtract across differing multiplicands should fail")
	}
}

func TestReductionPreservesLanguage(t *testing.T) {
	// Reduction soundness (spec §8 property 3): an unreduced and a
	// reduced term accept the same strings.
	c1 := NewConc(
		NewMult(cc('a'), multiplier.MustNew(2, 2)),
		NewMult(cc('b'), multiplier.One),
	)
	c2 := NewConc(
		NewMult(cc('a'), multiplier.Plus),
		NewMult(cc('c'), multiplier.One),
	)
	raw := NewPattern(c1, c2)
	reduced := Reduce(raw)
	alphabet := symbol.Alphabet(Alphabet(raw))
	fRaw := raw.FSM(alphabet)
	fReduced := reduced.FSM(alphabet)
	cases := []string{"aab", "ac", "aac", "aaac", "ab", "b", ""}
	for _, s := range cases {
		if fRaw.Accepts(s) != fReduced.Accepts(s) {
			t.Errorf("Accepts(%q): raw=%v reduced=%v, want equal", s, fRaw.Accepts(s), fReduced.Accepts(s))
		}
	}
}

func TestReduceIdempotent(t *testing.T) {
	c1 := NewConc(NewMult(cc('a'), multiplier.MustNew(2, 2)), NewMult(cc('b'), multiplier.One))
	c2 := NewConc(NewMult(cc('a'), multiplier.Plus), NewMult(cc('c'), multiplier.One))
	p := NewPattern(c1, c2)
	once := Reduce(p)
	twice := Reduce(once)
	if !once.Equal(twice) {
		t.Error("reduce(reduce(P)) != reduce(P)")
	}
}

func TestFSMAcceptsScenarioS11(t *testing.T) {
	// 0\d built directly: concat(CharClass(0), digit class).
	digits := cc('0', '1', '2', '3', '4', '5', '6', '7', '8', '9')
	pat := Concat(cc('0'), digits)
	alphabet := symbol.Alphabet(Alphabet(pat))
	f := pat.FSM(alphabet)
	if !f.Accepts("01") {
		t.Error("0\\d should accept \"01\"")
	}
	if f.Accepts("10") {
		t.Error("0\\d should reject \"10\"")
	}
}

func TestIntersectViaFSMBridge(t *testing.T) {
	// [ab]+ & [bc]+ should intersect down to b+.
	ab := AsPattern(NewMult(cc('a', 'b'), multiplier.Plus))
	bc := AsPattern(NewMult(cc('b', 'c'), multiplier.Plus))
	got := Intersect(ab, bc)
	alphabet := symbol.Alphabet(append(Alphabet(ab), Alphabet(bc)...))
	want := AsPattern(NewMult(cc('b'), multiplier.Plus))
	fGot := got.FSM(alphabet)
	fWant := want.FSM(alphabet)
	for _, s := range []string{"", "b", "bb", "bbb", "a", "c", "ab", "ba"} {
		if fGot.Accepts(s) != fWant.Accepts(s) {
			t.Errorf("Accepts(%q): got=%v want=%v", s, fGot.Accepts(s), fWant.Accepts(s))
		}
	}
}
