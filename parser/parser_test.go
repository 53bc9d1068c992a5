package parser

import (
	"testing"

	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/term"
)

func mustParse(t *testing.T, text string) term.Pattern {
	t.Helper()
	p, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q): %v", text, err)
	}
	return p
}

func TestParseRenderRoundTripScenarioS1(t *testing.T) {
	p := mustParse(t, "abc|def(ghi|jkl)")
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "abc|def(ghi|jkl)" {
		t.Errorf("render(reduce(parse(...))) = %q, want abc|def(ghi|jkl)", text)
	}
}

func TestParseReduceScenarioS5(t *testing.T) {
	p := mustParse(t, `0|[1-9]`)
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != `\d` {
		t.Errorf("render(reduce(parse(\"0|[1-9]\"))) = %q, want \\d", text)
	}
}

func TestParseReduceScenarioS6(t *testing.T) {
	p := mustParse(t, "([ab])*")
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "[ab]*" {
		t.Errorf("render(reduce(parse(\"([ab])*\"))) = %q, want [ab]*", text)
	}
}

func TestParseReduceScenarioS4(t *testing.T) {
	p := mustParse(t, "a{2}b|a+c")
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != "a(ab|a*c)" {
		t.Errorf("render(reduce(parse(\"a{2}b|a+c\"))) = %q, want a(ab|a*c)", text)
	}
}

func TestParseShorthandClasses(t *testing.T) {
	for _, text := range []string{`\w`, `\W`, `\d`, `\D`, `\s`, `\S`, `.`} {
		if _, err := Parse(text); err != nil {
			t.Errorf("Parse(%q): %v", text, err)
		}
	}
}

func TestParseNamedEscapes(t *testing.T) {
	p := mustParse(t, `\t\n\v\f\r`)
	if p.Len() != 1 {
		t.Fatalf("Parse(named escapes) produced %d concs, want 1", p.Len())
	}
}

func TestParseMultiplierForms(t *testing.T) {
	cases := []string{"a?", "a*", "a+", "a{3}", "a{2,}", "a{2,5}", "a"}
	for _, text := range cases {
		if _, err := Parse(text); err != nil {
			t.Errorf("Parse(%q): %v", text, err)
		}
	}
}

func TestParseUnterminatedGroupFails(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("Parse(\"(ab\") should fail: unterminated group")
	}
	var pe *errs.ParseError
	if !asParseError(err, &pe) {
		t.Fatalf("error is %T, want *errs.ParseError", err)
	}
}

func TestParseTrailingInputFails(t *testing.T) {
	_, err := Parse("ab)")
	if err == nil {
		t.Fatal("Parse(\"ab)\") should fail: unmatched ')'")
	}
}

func TestParseMalformedQuantifierFails(t *testing.T) {
	if _, err := Parse("a{"); err == nil {
		t.Fatal(`Parse("a{") should fail: malformed quantifier`)
	}
}

func TestParseBracketEscapedDash(t *testing.T) {
	// An escaped dash inside a bracket is always a literal, never a range.
	p := mustParse(t, `[a\-c]`)
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if text != `[\-ac]` {
		t.Errorf(`render(reduce(parse("[a\-c]"))) = %q, want [\-ac]`, text)
	}
}

func TestParseBracketRangeFallback(t *testing.T) {
	// "9-5" is not a valid ascending same-range span, so the dash falls
	// back to a literal character: "9", "-", "5" parse as three separate
	// range items, not a collapsed range.
	p := mustParse(t, `[9-5]`)
	reduced := term.Reduce(p)
	text, err := reduced.Render()
	if err != nil {
		t.Fatal(err)
	}
	if len(text) != len(`[5\-9]`) {
		t.Errorf("render(reduce(parse(\"[9-5]\"))) = %q, want a 3-symbol literal bracket class", text)
	}
}

func TestParseBracketNegated(t *testing.T) {
	p := mustParse(t, "[^ab]")
	if p.Len() != 1 {
		t.Fatalf("Parse([^ab]) produced %d concs, want 1", p.Len())
	}
}

func asParseError(err error, target **errs.ParseError) bool {
	pe, ok := err.(*errs.ParseError)
	if ok {
		*target = pe
	}
	return ok
}
