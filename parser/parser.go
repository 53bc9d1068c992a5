// Package parser implements the recursive-descent parser spec §4.7
// describes, turning the textual regex grammar into a term.Pattern.
// Backtracking within a single bracketed range (fall back to a literal
// dash) is done by resetting the cursor's position; malformed input is
// signaled internally by panicking with a parseFail and recovered once,
// at Parse's entry point, into a position-bearing *errs.ParseError — no
// partial state or error value threads through the recursive-descent
// call chain itself.
package parser

import (
	"strconv"

	"github.com/andersk/greenery/charclass"
	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/multiplier"
	"github.com/andersk/greenery/symbol"
	"github.com/andersk/greenery/term"
)

type cursor struct {
	text []rune
	pos  int
}

// parseFail is the internal backtracking/failure signal; it never
// escapes Parse.
type parseFail struct {
	pos   int
	cause string
}

func (c *cursor) fail(cause string) {
	panic(parseFail{pos: c.pos, cause: cause})
}

func (c *cursor) eof() bool { return c.pos >= len(c.text) }

func (c *cursor) peek() (rune, bool) {
	if c.eof() {
		return 0, false
	}
	return c.text[c.pos], true
}

func (c *cursor) advance() rune {
	r := c.text[c.pos]
	c.pos++
	return r
}

func (c *cursor) accept(r rune) bool {
	if !c.eof() && c.text[c.pos] == r {
		c.pos++
		return true
	}
	return false
}

// Parse parses text as a regex and returns the resulting term.Pattern. It
// fails with a *errs.ParseError, carrying the offending rune position,
// if text is not a complete, valid regex (spec §4.7, §6).
func Parse(text string) (pat term.Pattern, err error) {
	defer func() {
		if r := recover(); r != nil {
			pf, ok := r.(parseFail)
			if !ok {
				panic(r)
			}
			pat = term.Pattern{}
			err = &errs.ParseError{Begin: pf.pos, End: pf.pos, Cause: pf.cause}
		}
	}()
	c := &cursor{text: []rune(text)}
	pat = parsePattern(c)
	if !c.eof() {
		return term.Pattern{}, &errs.ParseError{Begin: c.pos, End: c.pos, Cause: "trailing input after a complete pattern"}
	}
	return pat, nil
}

// MustParse is Parse but panics on malformed input; for module-level
// patterns that are known-good at compile time.
func MustParse(text string) term.Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func parsePattern(c *cursor) term.Pattern {
	concs := []term.Conc{parseConc(c)}
	for c.accept('|') {
		concs = append(concs, parseConc(c))
	}
	return term.NewPattern(concs...)
}

func parseConc(c *cursor) term.Conc {
	var mults []term.Mult
	for {
		r, ok := c.peek()
		if !ok || r == '|' || r == ')' {
			break
		}
		mults = append(mults, parseMult(c))
	}
	return term.NewConc(mults...)
}

func parseMult(c *cursor) term.Mult {
	x := parseMultiplicand(c)
	m := parseMultiplier(c)
	return term.NewMult(x, m)
}

func parseMultiplicand(c *cursor) term.Multiplicand {
	if c.accept('(') {
		p := parsePattern(c)
		if !c.accept(')') {
			c.fail("unterminated group: expected ')'")
		}
		return p
	}
	return parseCharClass(c)
}

func parseMultiplier(c *cursor) multiplier.Multiplier {
	switch {
	case c.accept('?'):
		return multiplier.QM
	case c.accept('*'):
		return multiplier.Star
	case c.accept('+'):
		return multiplier.Plus
	}
	if !c.accept('{') {
		return multiplier.One
	}
	n, ok := parseInt(c)
	if !ok {
		c.fail("malformed {n} quantifier: expected an integer")
	}
	if c.accept('}') {
		return multiplier.MustNew(multiplier.Bound(n), multiplier.Bound(n))
	}
	if !c.accept(',') {
		c.fail("malformed quantifier: expected ',' or '}'")
	}
	if c.accept('}') {
		return multiplier.MustNew(multiplier.Bound(n), multiplier.Unbounded)
	}
	m, ok := parseInt(c)
	if !ok {
		c.fail("malformed {n,m} quantifier: expected an integer")
	}
	if !c.accept('}') {
		c.fail("malformed {n,m} quantifier: expected '}'")
	}
	mu, err := multiplier.New(multiplier.Bound(n), multiplier.Bound(m))
	if err != nil {
		c.fail(err.Error())
	}
	return mu
}

func parseInt(c *cursor) (int, bool) {
	start := c.pos
	for {
		r, ok := c.peek()
		if !ok || r < '0' || r > '9' {
			break
		}
		c.advance()
	}
	if c.pos == start {
		return 0, false
	}
	n, err := strconv.Atoi(string(c.text[start:c.pos]))
	if err != nil {
		c.fail("malformed integer in quantifier")
	}
	return n, true
}

func parseCharClass(c *cursor) charclass.CharClass {
	r, ok := c.peek()
	if !ok {
		c.fail("expected a character class, got end of input")
	}
	switch r {
	case '.':
		c.advance()
		return charclass.Dot
	case '[':
		return parseBracket(c)
	case '\\':
		return parseEscape(c)
	case ')', '|':
		c.fail("expected a character class, got '" + string(r) + "'")
	}
	if charclass.IsOutsideMetachar(symbol.Symbol(r)) {
		c.fail("unescaped metacharacter '" + string(r) + "'")
	}
	c.advance()
	return charclass.New(symbol.Symbol(r))
}

func parseEscape(c *cursor) charclass.CharClass {
	c.advance() // consume '\'
	r, ok := c.peek()
	if !ok {
		c.fail("dangling escape at end of input")
	}
	spelling := "\\" + string(r)
	if cls, ok := charclass.ShorthandClass(spelling); ok {
		c.advance()
		return cls
	}
	if sym, ok := charclass.UnescapeNamed(spelling); ok {
		c.advance()
		return charclass.New(sym)
	}
	c.advance()
	return charclass.New(symbol.Symbol(r))
}

func parseBracket(c *cursor) charclass.CharClass {
	c.advance() // consume '['
	negated := c.accept('^')
	var syms []symbol.Symbol
	for {
		r, ok := c.peek()
		if !ok {
			c.fail("unterminated character class: expected ']'")
		}
		if r == ']' {
			c.advance()
			break
		}
		lo := parseRangeAtom(c)
		if next, ok2 := c.peek(); ok2 && next == '-' {
			c.advance() // consume '-'
			if after, ok3 := c.peek(); ok3 && after != ']' {
				hiPos := c.pos
				hi := parseRangeAtom(c)
				if charclass.SameAllowableRange(lo, hi) && lo < hi {
					for s := lo; s <= hi; s++ {
						syms = append(syms, s)
					}
					continue
				}
				// Not a valid same-range ascending span: the dash is
				// literal (spec §4.7); 'hi' is re-parsed as its own item
				// on the next loop iteration.
				c.pos = hiPos
			}
			syms = append(syms, lo, '-')
			continue
		}
		syms = append(syms, lo)
	}
	if negated {
		return charclass.NewNegated(syms...)
	}
	return charclass.New(syms...)
}

func parseRangeAtom(c *cursor) symbol.Symbol {
	r, ok := c.peek()
	if !ok {
		c.fail("unterminated character class: expected ']'")
	}
	if r == '\\' {
		c.advance()
		r2, ok2 := c.peek()
		if !ok2 {
			c.fail("dangling escape in character class")
		}
		spelling := "\\" + string(r2)
		if sym, ok3 := charclass.UnescapeNamed(spelling); ok3 {
			c.advance()
			return sym
		}
		c.advance()
		return symbol.Symbol(r2)
	}
	if charclass.IsInsideMetachar(symbol.Symbol(r)) {
		c.fail("unescaped metacharacter '" + string(r) + "' inside character class")
	}
	c.advance()
	return symbol.Symbol(r)
}
