// Package greenery is the root facade of a symbolic regex algebra: parse
// text into a term.Pattern, reduce it to a canonical-ish simplified form,
// render it back out, and combine patterns with the algebra's binary
// combinators. It mirrors the teacher's own root/leaf split (`regex`
// wrapping `regex/syntax`): this package wraps `parser`/`term` the same
// way `regex` wrapped `regex/syntax`, down to keeping a `Matcher`
// interface and a `CompileMatcher`-shaped entry point at the root.
package greenery

import (
	"github.com/andersk/greenery/errs"
	"github.com/andersk/greenery/parser"
	"github.com/andersk/greenery/symbol"
	"github.com/andersk/greenery/term"
)

// Pattern re-exports term.Pattern at the root so callers need not import
// the term package directly for the common case.
type Pattern = term.Pattern

// Parse parses text as a regex and returns the unreduced term.Pattern it
// denotes, or a *errs.ParseError if text is malformed (spec §4.7, §6).
func Parse(text string) (Pattern, error) {
	return parser.Parse(text)
}

// MustParse is Parse but panics on malformed input, for module-level
// patterns that are known-good at compile time.
func MustParse(text string) Pattern {
	return parser.MustParse(text)
}

// Reduce rewrites p to a fixed point of the Reducer rules (spec §4.6),
// never changing the language it denotes (spec §8 property 3).
func Reduce(p Pattern) Pattern {
	return term.Reduce(p)
}

// Render renders p back to regex syntax, or a *errs.NotRenderableError if
// p (or any sub-term) denotes the empty language with no finite spelling.
func Render(p Pattern) (string, error) {
	return p.Render()
}

// Simplify composes Parse, Reduce, and Render: greenery.Simplify("0|[1-9]")
// returns (`\d`, nil). Ported from lego.py's parse(s).reduce() chaining
// idiom (SPEC_FULL §4).
func Simplify(text string) (string, error) {
	p, err := Parse(text)
	if err != nil {
		return "", err
	}
	return Render(Reduce(p))
}

// Concat implements the `+` combinator: concatenation.
func Concat(a, b interface{}) Pattern {
	return term.Concat(a, b)
}

// Alternate implements the `|` combinator: union.
func Alternate(a, b interface{}) Pattern {
	return term.Alternate(a, b)
}

// Intersect implements the `&` combinator: intersection, via the fsm
// collaborator's state-elimination bridge (spec §4.5, §4.8).
func Intersect(a, b interface{}) Pattern {
	return term.Intersect(a, b)
}

// Subtract implements the `-` combinator, defined only over CharClass and
// Mult operands (spec §6); any other pairing is a *errs.StructuralError.
func Subtract(a, b interface{}) (interface{}, error) {
	return term.Subtract(a, b)
}

// Alphabet collects the symbols explicitly referenced anywhere in p,
// always including symbol.AnyOther (spec §4.8).
func Alphabet(p Pattern) []symbol.Symbol {
	return term.Alphabet(p)
}

// Matcher reflects string-acceptance operations over a compiled pattern.
// Grounded on the teacher's own root-level Matcher interface, repurposed
// to wrap this algebra's fsm-backed acceptor instead of Go's regexp
// engine: there is no backtracking runtime here to optimize around, so
// there is exactly one implementation rather than a suffix-literal fast
// path plus a regexp.Regexp fallback.
type Matcher interface {
	MatchString(s string) bool
}

type fsmMatcher struct {
	pattern   Pattern
	alphabet  []symbol.Symbol
	accepting func(string) bool
}

func (m *fsmMatcher) MatchString(s string) bool {
	return m.accepting(s)
}

// CompileMatcher parses and reduces expr, builds its fsm collaborator over
// its own referenced alphabet, and returns a Matcher backed by the
// resulting deterministic acceptor. Unlike the teacher's CompileMatcher,
// there is no fallback to Go's regexp package: this algebra's Non-goals
// (spec §6) exclude captures, anchors, backreferences, and lookaround, so
// expr must stay within the supported dialect or Parse returns a
// *errs.ParseError.
func CompileMatcher(expr string) (Matcher, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	reduced := Reduce(p)
	alphabet := Alphabet(reduced)
	f := reduced.FSM(alphabet)
	return &fsmMatcher{pattern: reduced, alphabet: alphabet, accepting: f.Accepts}, nil
}

// IsParseError reports whether err is the *errs.ParseError Parse returns
// for malformed input, and if so returns it.
func IsParseError(err error) (*errs.ParseError, bool) {
	pe, ok := err.(*errs.ParseError)
	return pe, ok
}
